package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Fixture  FixtureConfig  `mapstructure:"fixture"`
	Cron     CronConfig     `mapstructure:"cron"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置，导出归档使用
type MinIOConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PresignMinute int    `mapstructure:"presign_minute"`
	ExpireDays    int    `mapstructure:"expire_days"`
}

// FixtureConfig 样例数据生成参数
type FixtureConfig struct {
	Seed             uint64  `mapstructure:"seed"`
	PostCount        int     `mapstructure:"post_count"`
	OrderRate        float64 `mapstructure:"order_rate"`
	ConversionRate   float64 `mapstructure:"conversion_rate"`
	MaxOrdersPerPost int     `mapstructure:"max_orders_per_post"`
	LookbackDays     int     `mapstructure:"lookback_days"`
	AnchorDate       string  `mapstructure:"anchor_date"`
}

type CronConfig struct {
	WarmSpec string `mapstructure:"warm_spec"`
}

// CacheConfig 看板快照缓存
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}
