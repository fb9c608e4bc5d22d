package book

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/book"
	"github.com/xiebiao/quotelib/internal/domain/publisher"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Transactor 事务边界(由mysql.TxManager实现)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateBookUseCase 创建书目用例
// 设计说明:书目创建是引文之外唯一的多表写路径
// 一个事务内写入:书目行 + book_to_author + book_to_genre + publisher_to_book
type CreateBookUseCase struct {
	bookRepo      book.Repository
	publisherRepo publisher.Repository
	txManager     Transactor
}

// NewCreateBookUseCase 创建书目创建用例
func NewCreateBookUseCase(
	bookRepo book.Repository,
	publisherRepo publisher.Repository,
	txManager Transactor,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:      bookRepo,
		publisherRepo: publisherRepo,
		txManager:     txManager,
	}
}

// CreateBookRequest 创建书目请求DTO
type CreateBookRequest struct {
	UserID          uint   // 操作者用户ID(从JWT中提取)
	Title           string // 书名(唯一)
	PublicationYear string // 出版年份(可选)
	ISBN            string // ISBN(可选,唯一)
	PublisherID     uint   // 出版社ID(必填)
	Summary         string // 摘要(可选)
	Citation        string // 引用格式(可选,唯一)
	SourceLink      string // 来源链接(可选)
	Rating          *int   // 评分(可选,0-10)
	AuthorIDs       []uint // 作者ID集合
	GenreIDs        []uint // 流派ID集合
}

// CreateBookResponse 创建书目响应DTO
type CreateBookResponse struct {
	BookID uint `json:"book_id"`
}

// Execute 执行创建书目用例
// 教学要点:书目的作者集合在这里建立,后续新建引文时
// 会从book_to_author复制这份集合作为引文的署名
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*CreateBookResponse, error) {
	// 1. 认证校验
	if req.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	// 2. 构造并校验领域实体
	b := book.NewBook(req.Title, req.PublicationYear, req.ISBN, req.PublisherID,
		req.Summary, req.Citation, req.SourceLink, req.Rating)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// 3. 出版社必须存在
	if _, err := uc.publisherRepo.FindByID(ctx, req.PublisherID); err != nil {
		return nil, err
	}

	// 4. 事务:书目行 + 三张join表
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookRepo.Create(txCtx, b); err != nil {
			return err
		}
		if err := uc.bookRepo.AddAuthors(txCtx, b.ID, uniqueIDs(req.AuthorIDs)); err != nil {
			return err
		}
		if err := uc.bookRepo.AddGenres(txCtx, b.ID, uniqueIDs(req.GenreIDs)); err != nil {
			return err
		}
		return uc.bookRepo.LinkPublisher(txCtx, req.PublisherID, b.ID)
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookResponse{BookID: b.ID}, nil
}

// uniqueIDs id去重(保持首次出现的顺序)
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
