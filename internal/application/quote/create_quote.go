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

// CreateQuoteUseCase 创建引文用例
// 教学要点:这是整个项目最核心的写路径
// 涉及:事务处理、作者集合播种、多张join表的一致性写入
type CreateQuoteUseCase struct {
	quoteRepo quote.Repository
	bookRepo  book.Repository
	txManager Transactor
	viewCache ViewCache
}

// NewCreateQuoteUseCase 创建引文创建用例
func NewCreateQuoteUseCase(
	quoteRepo quote.Repository,
	bookRepo book.Repository,
	txManager Transactor,
	viewCache ViewCache,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		quoteRepo: quoteRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		viewCache: viewCache,
	}
}

// CreateQuoteRequest 创建引文请求DTO
// 注意:没有AuthorIDs字段——创建时引文的作者关联一律复制
// 所属书目当前的作者集合,调用方无法指定(见Execute)
type CreateQuoteRequest struct {
	UserID      uint   // 录入者用户ID(从JWT中提取)
	Text        string // 引文正文
	BookID      uint   // 所属书目ID
	Context     string // 上下文说明(可选)
	PageNumber  string // 页码(可选)
	QuotedBy    *uint  // 被引作者ID(可选)
	IsImportant bool
	IsPrivate   bool
	TopicIDs    []uint // 主题ID集合(可选)
	TagIDs      []uint // 标签ID集合(可选)
	TypeIDs     []uint // 类型ID集合(可选)
}

// CreateQuoteResponse 创建引文响应DTO
type CreateQuoteResponse struct {
	QuoteID   uint   `json:"quote_id"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行创建引文用例
// 核心规则:引文的作者关联在创建时从书目播种
// 即:读取book_to_author当前的作者集合,原样复制为quote_to_author行
// 这保证新引文的署名永远与其书目一致,后续可通过更新单独调整
//
// 一致性要求:引文行+各族join行要么全部写入,要么全部不写
// (失败时不能留下无主的join行或没有关联的"半成品"引文)
func (uc *CreateQuoteUseCase) Execute(ctx context.Context, req CreateQuoteRequest) (*CreateQuoteResponse, error) {
	// 1. 认证校验:匿名请求直接拒绝,不开启事务
	if req.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	// 2. 构造并校验领域实体
	q := quote.NewQuote(req.UserID, req.Text, req.BookID, req.Context,
		req.PageNumber, req.QuotedBy, req.IsImportant, req.IsPrivate)
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// 3. 书目必须存在(不存在返回ErrBookNotFound)
	if _, err := uc.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 4. 事务:引文行 + 四个关联族
	start := time.Now()
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 4.1 插入引文行(回填ID)
		if err := uc.quoteRepo.Create(txCtx, q); err != nil {
			return err
		}

		// 4.2 播种作者关联:复制书目当前的作者集合
		// 教学要点:必须在事务内读取,避免与并发的书目写操作交错
		authorIDs, err := uc.bookRepo.ListAuthorIDs(txCtx, q.BookID)
		if err != nil {
			return err
		}
		if err := uc.quoteRepo.AddAssociations(txCtx, q.ID, quote.FamilyAuthor, authorIDs); err != nil {
			return err
		}

		// 4.3 写入调用方指定的主题/标签/类型关联
		if err := uc.quoteRepo.AddAssociations(txCtx, q.ID, quote.FamilyTopic, uniqueIDs(req.TopicIDs)); err != nil {
			return err
		}
		if err := uc.quoteRepo.AddAssociations(txCtx, q.ID, quote.FamilyTag, uniqueIDs(req.TagIDs)); err != nil {
			return err
		}
		return uc.quoteRepo.AddAssociations(txCtx, q.ID, quote.FamilyType, uniqueIDs(req.TypeIDs))
	})
	metrics.ObserveHistogram(metrics.QuoteWriteDuration, time.Since(start).Seconds())

	if err != nil {
		metrics.IncCounter(metrics.QuoteWritesFailedTotal)
		return nil, err
	}
	metrics.IncCounter(metrics.QuotesCreatedTotal)

	// 5. 失效聚合读缓存(失败不影响写结果,只记录日志)
	if err := uc.viewCache.Invalidate(ctx); err != nil {
		log.Printf("失效引文缓存失败: %v", err)
	}

	return &CreateQuoteResponse{
		QuoteID:   q.ID,
		CreatedAt: q.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
