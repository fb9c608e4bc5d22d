package quote

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/quote"
)

// Transactor 事务边界
// 设计说明:应用层只依赖这个小接口而不是*mysql.TxManager,
// 用例测试可以用"直接执行fn"的假实现,不需要真数据库
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ViewCache 引文聚合读缓存
// 由infrastructure/persistence/redis.ViewCache实现
type ViewCache interface {
	// Get 读取缓存,未命中返回(nil, nil)
	Get(ctx context.Context) ([]quote.View, error)

	// Set 写入缓存
	Set(ctx context.Context, views []quote.View) error

	// Invalidate 失效缓存(写操作成功后调用)
	Invalidate(ctx context.Context) error
}

// uniqueIDs id去重(保持首次出现的顺序)
// 请求里重复的id会撞join表的复合主键,写入前先压平
func uniqueIDs(ids []uint) []uint {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
