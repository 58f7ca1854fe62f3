package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// ArchiveSink 上传导出文件并生成临时下载链接
type ArchiveSink struct {
	expiry time.Duration
}

func NewArchiveSink(expiry time.Duration) *ArchiveSink {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &ArchiveSink{expiry: expiry}
}

// Upload 上传对象并返回预签名 GET 地址
func (s *ArchiveSink) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	_, err := Client.PutObject(ctx, Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	u, err := Client.PresignedGetObject(ctx, Bucket, objectName, s.expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", objectName, err)
	}
	return u.String(), nil
}
