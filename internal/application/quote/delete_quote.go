package quote

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/quotelib/internal/domain/quote"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
	"github.com/xiebiao/quotelib/pkg/metrics"
)

// DeleteQuoteUseCase 删除引文用例
type DeleteQuoteUseCase struct {
	quoteRepo quote.Repository
	txManager Transactor
	viewCache ViewCache
}

// NewDeleteQuoteUseCase 创建引文删除用例
func NewDeleteQuoteUseCase(
	quoteRepo quote.Repository,
	txManager Transactor,
	viewCache ViewCache,
) *DeleteQuoteUseCase {
	return &DeleteQuoteUseCase{
		quoteRepo: quoteRepo,
		txManager: txManager,
		viewCache: viewCache,
	}
}

// Execute 执行删除引文用例
// 教学要点:删除级联的顺序
// 1. 先删全部四个关联族的join行,再删引文行本身
// 2. 整个过程在一个事务内——不能留下指向已删引文的孤儿join行,
//    也不能留下删了一半关联的引文
// 3. 以引文行的删除结果判断存在性(0行→ErrQuoteNotFound,事务回滚)
func (uc *DeleteQuoteUseCase) Execute(ctx context.Context, userID, quoteID uint) error {
	// 1. 认证校验
	if userID == 0 {
		return apperrors.ErrUnauthorized
	}

	// 2. 事务:关联清理 + 引文行删除
	start := time.Now()
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.quoteRepo.RemoveAllAssociations(txCtx, quoteID); err != nil {
			return err
		}
		return uc.quoteRepo.Delete(txCtx, quoteID)
	})
	metrics.ObserveHistogram(metrics.QuoteWriteDuration, time.Since(start).Seconds())

	if err != nil {
		metrics.IncCounter(metrics.QuoteWritesFailedTotal)
		return err
	}
	metrics.IncCounter(metrics.QuotesDeletedTotal)

	// 3. 失效聚合读缓存
	if err := uc.viewCache.Invalidate(ctx); err != nil {
		log.Printf("失效引文缓存失败: %v", err)
	}

	return nil
}
