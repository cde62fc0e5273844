package cartstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage Redis 存储实现
type RedisStorage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorage 创建 Redis 存储，ttl <= 0 表示不过期
func NewRedisStorage(client *redis.Client, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		prefix: strings.TrimSpace(prefix),
		ttl:    ttl,
	}
}

// Save 写入
func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	var ttl time.Duration
	if s.ttl > 0 {
		ttl = s.ttl
	}
	return s.client.Set(ctx, s.buildKey(key), data, ttl).Err()
}

// Load 读取
func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Delete 删除
func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.buildKey(key)).Err()
}

func (s *RedisStorage) buildKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}
