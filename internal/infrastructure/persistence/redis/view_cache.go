package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/quotelib/internal/domain/quote"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// viewCacheKey 引文聚合列表的缓存Key
const viewCacheKey = "quotes:views"

// viewCacheTTL 缓存过期时间
// 写路径会主动失效缓存,TTL只是兜底(绕过服务直接改库的场景)
const viewCacheTTL = 5 * time.Minute

// ViewCache 引文聚合读缓存
// 设计说明:
// 1. 聚合读要装载5张join表+4张词表,是全站最重的查询,值得缓存
// 2. 只缓存全量列表这一个Key;按ID读走数据库(命中率低,不值得单独缓存)
// 3. 所有引文写操作(创建/更新/删除)成功后调用Invalidate,
//    下一次列表读重建缓存
type ViewCache struct {
	client *redis.Client
}

// NewViewCache 创建引文聚合读缓存
func NewViewCache(client *redis.Client) *ViewCache {
	return &ViewCache{client: client}
}

// Get 读取缓存的聚合列表
// 未命中返回(nil, nil),调用方回源数据库
func (c *ViewCache) Get(ctx context.Context) ([]quote.View, error) {
	data, err := c.client.Get(ctx, viewCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 缓存未命中不是错误
		}
		return nil, apperrors.Wrap(err, "读取引文缓存失败")
	}

	var views []quote.View
	if err := json.Unmarshal(data, &views); err != nil {
		// 缓存内容损坏:当作未命中,回源后会覆盖
		return nil, nil
	}

	return views, nil
}

// Set 写入聚合列表缓存
func (c *ViewCache) Set(ctx context.Context, views []quote.View) error {
	data, err := json.Marshal(views)
	if err != nil {
		return apperrors.Wrap(err, "序列化引文缓存失败")
	}

	if err := c.client.Set(ctx, viewCacheKey, data, viewCacheTTL).Err(); err != nil {
		return apperrors.Wrap(err, "写入引文缓存失败")
	}

	return nil
}

// Invalidate 失效缓存(引文写操作成功后调用)
func (c *ViewCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, viewCacheKey).Err(); err != nil {
		return apperrors.Wrap(err, "失效引文缓存失败")
	}
	return nil
}
