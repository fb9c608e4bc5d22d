package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/quotelib/internal/domain/book"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// bookRepository 书目仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(书名/ISBN/引用格式重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建书目仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建书目行
// 学习要点:
// 1. 唯一性由数据库UNIQUE索引保证(title/isbn/citation各一个)
// 2. 同一张表上有三个唯一索引,从错误信息的索引名区分该返回哪个业务错误
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	// ISBN/引用格式可选:空串存NULL,可空唯一索引下NULL之间不冲突
	model := &BookModel{
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		ISBN:            optionalString(b.ISBN),
		PublisherID:     b.PublisherID,
		Summary:         b.Summary,
		Citation:        optionalString(b.Citation),
		SourceLink:      b.SourceLink,
		Rating:          b.Rating,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return duplicateBookError(err)
		}
		return apperrors.Wrap(err, "创建书目失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	return nil
}

// FindByID 根据ID查找书目
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询书目失败")
	}

	return toBookEntity(&model), nil
}

// List 分页查询书目列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	// 构建查询
	query := getDB(ctx, r.db).Model(&BookModel{})

	// 关键词搜索(搜索书名、引用格式)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR citation LIKE ?", keyword, keyword)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书目总数失败")
	}

	// 排序
	switch params.SortBy {
	case "title_asc":
		query = query.Order("title ASC")
	case "rating_desc":
		query = query.Order("rating DESC")
	default:
		query = query.Order("id ASC") // 默认按插入顺序
	}

	// 分页
	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	// 查询数据
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书目列表失败")
	}

	// 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// ListAuthorIDs 读取书目当前的作者id集合(book_to_author)
// 教学要点:引文创建时以此为准播种引文的作者关联,
// 必须经过getDB(ctx)在同一事务内读取
func (r *bookRepository) ListAuthorIDs(ctx context.Context, bookID uint) ([]uint, error) {
	var ids []uint
	err := getDB(ctx, r.db).Table("book_to_author").
		Where("book_id = ?", bookID).
		Order("author_id ASC").
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询书目作者失败")
	}
	return ids, nil
}

// AddAuthors 写入book_to_author join行
func (r *bookRepository) AddAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	if len(authorIDs) == 0 {
		return nil
	}

	rows := make([]BookAuthorModel, 0, len(authorIDs))
	for _, id := range authorIDs {
		rows = append(rows, BookAuthorModel{BookID: bookID, AuthorID: id})
	}

	if err := getDB(ctx, r.db).Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "写入书目作者关联失败")
	}
	return nil
}

// AddGenres 写入book_to_genre join行
func (r *bookRepository) AddGenres(ctx context.Context, bookID uint, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}

	rows := make([]BookGenreModel, 0, len(genreIDs))
	for _, id := range genreIDs {
		rows = append(rows, BookGenreModel{BookID: bookID, GenreID: id})
	}

	if err := getDB(ctx, r.db).Create(&rows).Error; err != nil {
		return apperrors.Wrap(err, "写入书目流派关联失败")
	}
	return nil
}

// LinkPublisher 写入publisher_to_book辅助查询行
func (r *bookRepository) LinkPublisher(ctx context.Context, publisherID, bookID uint) error {
	row := PublisherBookModel{PublisherID: publisherID, BookID: bookID}
	if err := getDB(ctx, r.db).Create(&row).Error; err != nil {
		return apperrors.Wrap(err, "写入出版社书目关联失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换与错误分类
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		PublicationYear: model.PublicationYear,
		ISBN:            derefString(model.ISBN),
		PublisherID:     model.PublisherID,
		Summary:         model.Summary,
		Citation:        derefString(model.Citation),
		SourceLink:      model.SourceLink,
		Rating:          model.Rating,
	}
}

// optionalString 空串 → NULL(配合可空唯一索引)
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString NULL → 空串
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// duplicateBookError 根据冲突的索引名返回对应的业务错误
func duplicateBookError(err error) error {
	key := duplicateKeyName(err)
	switch {
	case strings.Contains(key, "isbn"):
		return book.ErrISBNDuplicate
	case strings.Contains(key, "citation"):
		return book.ErrCitationDuplicate
	default:
		return book.ErrTitleDuplicate
	}
}
