package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allow_origins", []string{})

	v.SetDefault("logstash.enabled", false)
	v.SetDefault("logstash.address", "")
	v.SetDefault("logstash.index", "logstash-campaignlens")
	v.SetDefault("logstash.token", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "campaignlens")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.presign_minute", 60)
	v.SetDefault("minio.expire_days", 7)

	v.SetDefault("fixture.seed", 42)
	v.SetDefault("fixture.post_count", 200)
	v.SetDefault("fixture.order_rate", 0.7)
	v.SetDefault("fixture.conversion_rate", 0.01)
	v.SetDefault("fixture.max_orders_per_post", 25)
	v.SetDefault("fixture.lookback_days", 90)
	v.SetDefault("fixture.anchor_date", "")

	v.SetDefault("cron.warm_spec", "@daily")
	v.SetDefault("cache.ttl_seconds", 600)
}

// Load 读取 .env、配置文件与 CAMPAIGNLENS_ 前缀的环境变量，文件缺失时使用默认值
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("CAMPAIGNLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Warn("config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}
