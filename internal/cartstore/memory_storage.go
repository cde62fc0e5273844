package cartstore

import (
	"context"
	"sync"
)

// MemoryStorage 进程内存储，用于测试与未启用 Redis 的部署
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage 创建内存存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Save 写入
func (s *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.data[key] = buf
	return nil
}

// Load 读取
func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, true, nil
}

// Delete 删除
func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
