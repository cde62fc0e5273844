package cartstore

import "context"

// Storage 购物车持久化接口
type Storage interface {
	// Save 写入序列化后的购物车
	Save(ctx context.Context, key string, data []byte) error
	// Load 读取购物车，第二个返回值表示键是否存在
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Delete 删除购物车
	Delete(ctx context.Context, key string) error
}
