package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// SnapshotStore 以 JSON 形式缓存看板快照
type SnapshotStore struct{}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Get 命中时反序列化到 dst 并返回 true
func (s *SnapshotStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := GetValue(ctx, key)
	if err != nil {
		return false, err
	}
	if val == "" {
		return false, nil
	}
	if err = json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

func (s *SnapshotStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	return SetWithExpiration(ctx, key, data, ttl)
}
