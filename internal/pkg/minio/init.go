package minio

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/pkg/consts"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// Bucket 导出归档存储桶
	Bucket string
)

// Init 初始化 MinIO 客户端并确保归档桶与过期策略存在
func Init(cfg config.MinIOConfig) error {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info("已创建导出存储桶", "bucket", cfg.Bucket)
	}

	Client = client
	Bucket = cfg.Bucket
	return EnsureExportLifecycle(ctx, cfg.ExpireDays)
}

// EnsureExportLifecycle 为 exports/ 前缀补全过期策略
func EnsureExportLifecycle(ctx context.Context, days int) error {
	if days <= 0 {
		return nil
	}
	lcConfig, err := Client.GetBucketLifecycle(ctx, Bucket)
	if err != nil {
		lcConfig = lifecycle.NewConfiguration()
	}

	for _, rule := range lcConfig.Rules {
		if rule.Status == "Enabled" &&
			rule.RuleFilter.Prefix == consts.ExportObjectPrefix &&
			int(rule.Expiration.Days) == days {
			log.Info("检测到已存在兼容的过期策略", "ruleID", rule.ID)
			return nil
		}
	}

	lcConfig.Rules = append(lcConfig.Rules, lifecycle.Rule{
		ID:     "ExportAutoDeleteRule",
		Status: "Enabled",
		RuleFilter: lifecycle.Filter{
			Prefix: consts.ExportObjectPrefix,
		},
		Expiration: lifecycle.Expiration{
			Days: lifecycle.ExpirationDays(days),
		},
	})
	if err = Client.SetBucketLifecycle(ctx, Bucket, lcConfig); err != nil {
		return fmt.Errorf("设置生命周期失败: %w", err)
	}
	log.Info("已补全导出文件过期策略", "days", days)
	return nil
}
