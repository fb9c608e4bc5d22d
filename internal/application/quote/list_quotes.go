package quote

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/quotelib/internal/domain/quote"
	"github.com/xiebiao/quotelib/pkg/metrics"
)

// ListQuotesUseCase 引文聚合读用例
// 设计说明:这是整个项目最核心的读路径
// 一次调用返回展示一条引文所需的全部信息(标量+书目+作者+词表名称),
// 调用方不需要再做任何join
type ListQuotesUseCase struct {
	quoteRepo quote.Repository
	viewCache ViewCache
}

// NewListQuotesUseCase 创建引文聚合读用例
func NewListQuotesUseCase(quoteRepo quote.Repository, viewCache ViewCache) *ListQuotesUseCase {
	return &ListQuotesUseCase{
		quoteRepo: quoteRepo,
		viewCache: viewCache,
	}
}

// Execute 全量聚合读(按插入顺序)
// 读路径:缓存 → (未命中)联查+装载+内存装配 → 回填缓存
// 教学要点:装载是固定次数的批量查询,不随引文数量产生N+1问题
func (uc *ListQuotesUseCase) Execute(ctx context.Context) ([]quote.View, error) {
	// 1. 先查缓存(缓存故障降级为回源,不阻塞读路径)
	cached, err := uc.viewCache.Get(ctx)
	if err != nil {
		log.Printf("读取引文缓存失败: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	// 2. 回源:联查 + 装载 + 装配
	start := time.Now()
	views, err := uc.load(ctx)
	metrics.ObserveHistogram(metrics.QuoteAggregationDuration, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if err := uc.viewCache.Set(ctx, views); err != nil {
		log.Printf("写入引文缓存失败: %v", err)
	}

	return views, nil
}

// ExecuteByID 按ID聚合读
// 返回0或1个元素的切片:引文不存在返回空列表而不是错误,
// 调用方(和前端)统一按列表处理
func (uc *ListQuotesUseCase) ExecuteByID(ctx context.Context, quoteID uint) ([]quote.View, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveHistogram(metrics.QuoteAggregationDuration, time.Since(start).Seconds())
	}()

	rows, err := uc.quoteRepo.FindWithBookByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []quote.View{}, nil
	}

	assoc, err := uc.quoteRepo.LoadAssociations(ctx,
		[]uint{rows[0].ID}, []uint{rows[0].BookID})
	if err != nil {
		return nil, err
	}

	return quote.BuildViews(rows, assoc), nil
}

// load 全量回源
func (uc *ListQuotesUseCase) load(ctx context.Context) ([]quote.View, error) {
	rows, err := uc.quoteRepo.ListWithBook(ctx)
	if err != nil {
		return nil, err
	}

	// 全量读:quoteIDs/bookIDs传nil表示装载全部关联
	assoc, err := uc.quoteRepo.LoadAssociations(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	return quote.BuildViews(rows, assoc), nil
}
