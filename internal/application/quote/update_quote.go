package quote

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/quotelib/internal/domain/book"
	"github.com/xiebiao/quotelib/internal/domain/quote"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
	"github.com/xiebiao/quotelib/pkg/metrics"
)

// UpdateQuoteUseCase 更新引文用例
// 设计说明:
// 1. 标量字段是PATCH语义:nil不更新,非nil更新
// 2. 关联族是替换语义:nil不动,非nil(含空集合)整体替换为给定集合
// 3. 与创建不同,更新允许显式指定AuthorIDs——创建时从书目播种的
//    署名,在这里可以人工修正(例如合集里某条引文只属于其中一位作者)
type UpdateQuoteUseCase struct {
	quoteRepo quote.Repository
	bookRepo  book.Repository
	txManager Transactor
	viewCache ViewCache
}

// NewUpdateQuoteUseCase 创建引文更新用例
func NewUpdateQuoteUseCase(
	quoteRepo quote.Repository,
	bookRepo book.Repository,
	txManager Transactor,
	viewCache ViewCache,
) *UpdateQuoteUseCase {
	return &UpdateQuoteUseCase{
		quoteRepo: quoteRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		viewCache: viewCache,
	}
}

// UpdateQuoteRequest 更新引文请求DTO
// 教学要点:区分"没传"与"传了空集合"
// - 关联族字段为nil:该族保持不变
// - 关联族字段为空切片:清空该族的全部join行
// JSON反序列化天然保持这个区分(字段缺席→nil,"[]"→空切片)
type UpdateQuoteRequest struct {
	UserID  uint // 操作者用户ID(从JWT中提取)
	QuoteID uint // 目标引文ID

	// 标量字段(PATCH语义)
	Text        *string
	BookID      *uint
	Context     *string
	PageNumber  *string
	QuotedBy    *uint
	IsImportant *bool
	IsPrivate   *bool

	// 关联族(替换语义)
	AuthorIDs []uint
	TopicIDs  []uint
	TagIDs    []uint
	TypeIDs   []uint
}

// hasAssociationChanges 是否有任何关联族需要替换
func (req UpdateQuoteRequest) hasAssociationChanges() bool {
	return req.AuthorIDs != nil || req.TopicIDs != nil ||
		req.TagIDs != nil || req.TypeIDs != nil
}

// UpdateQuoteResponse 更新引文响应DTO
type UpdateQuoteResponse struct {
	QuoteID uint `json:"quote_id"`
}

// Execute 执行更新引文用例
// 一致性要求:标量更新与各族替换在同一事务内,要么全部生效要么全部回滚
// 幂等性:关联替换走集合调和(只删被移除的、只插新增的),
// 用同一请求重放不会报错也不会改变最终状态
func (uc *UpdateQuoteUseCase) Execute(ctx context.Context, req UpdateQuoteRequest) (*UpdateQuoteResponse, error) {
	// 1. 认证校验
	if req.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	// 2. 引文必须存在
	if _, err := uc.quoteRepo.FindByID(ctx, req.QuoteID); err != nil {
		return nil, err
	}

	// 3. 组装标量变更并校验
	changes := quote.ScalarChanges{
		Text:        req.Text,
		BookID:      req.BookID,
		Context:     req.Context,
		PageNumber:  req.PageNumber,
		QuotedBy:    req.QuotedBy,
		IsImportant: req.IsImportant,
		IsPrivate:   req.IsPrivate,
	}
	if changes.IsEmpty() && !req.hasAssociationChanges() {
		return nil, quote.ErrNothingToUpdate
	}
	if changes.Text != nil {
		if *changes.Text == "" {
			return nil, quote.ErrTextRequired
		}
		if len(*changes.Text) > quote.MaxTextLength {
			return nil, quote.ErrTextTooLong
		}
	}

	// 4. 换书目时目标书目必须存在
	// 注意:换书目只改外键,不会重新播种作者关联——署名调整
	// 由调用方通过AuthorIDs显式表达
	if changes.BookID != nil {
		if _, err := uc.bookRepo.FindByID(ctx, *changes.BookID); err != nil {
			return nil, err
		}
	}

	// 5. 事务:标量更新 + 关联族替换
	start := time.Now()
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if !changes.IsEmpty() {
			if err := uc.quoteRepo.UpdateScalars(txCtx, req.QuoteID, changes); err != nil {
				return err
			}
		}

		if req.AuthorIDs != nil {
			if err := uc.quoteRepo.ReplaceAssociations(txCtx, req.QuoteID, quote.FamilyAuthor, req.AuthorIDs); err != nil {
				return err
			}
		}
		if req.TopicIDs != nil {
			if err := uc.quoteRepo.ReplaceAssociations(txCtx, req.QuoteID, quote.FamilyTopic, req.TopicIDs); err != nil {
				return err
			}
		}
		if req.TagIDs != nil {
			if err := uc.quoteRepo.ReplaceAssociations(txCtx, req.QuoteID, quote.FamilyTag, req.TagIDs); err != nil {
				return err
			}
		}
		if req.TypeIDs != nil {
			if err := uc.quoteRepo.ReplaceAssociations(txCtx, req.QuoteID, quote.FamilyType, req.TypeIDs); err != nil {
				return err
			}
		}
		return nil
	})
	metrics.ObserveHistogram(metrics.QuoteWriteDuration, time.Since(start).Seconds())

	if err != nil {
		metrics.IncCounter(metrics.QuoteWritesFailedTotal)
		return nil, err
	}

	// 6. 失效聚合读缓存
	if err := uc.viewCache.Invalidate(ctx); err != nil {
		log.Printf("失效引文缓存失败: %v", err)
	}

	return &UpdateQuoteResponse{QuoteID: req.QuoteID}, nil
}
