package quote

import (
	"context"
)

// Repository 引文仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. 写方法都通过context参与事务（TxManager注入事务DB）
// 3. LoadAssociations是聚合读的装载缝：当前实现整表装载+内存过滤，
//    换成按quoteIDs的索引查询时调用方无需改动
type Repository interface {
	// Create 创建引文行（回填自增ID；ID无效时返回apperrors.ErrInsertFailed）
	Create(ctx context.Context, q *Quote) error

	// FindByID 根据ID查找引文行（不含关联）
	// 如果不存在，返回ErrQuoteNotFound
	FindByID(ctx context.Context, id uint) (*Quote, error)

	// UpdateScalars 局部更新标量字段（PATCH语义，nil字段不更新）
	UpdateScalars(ctx context.Context, id uint, changes ScalarChanges) error

	// Delete 删除引文行本身（不含关联）
	// 影响0行时返回ErrQuoteNotFound（删除操作以此区分"不存在"）
	Delete(ctx context.Context, id uint) error

	// ListWithBook 全量联查引文与书目（title/citation），按插入顺序（id asc）
	ListWithBook(ctx context.Context) ([]WithBook, error)

	// FindWithBookByID 按ID联查，返回0或1个元素的切片（不存在不是错误）
	FindWithBookByID(ctx context.Context, id uint) ([]WithBook, error)

	// AddAssociations 为引文追加某一关联族的join行（创建路径使用）
	AddAssociations(ctx context.Context, quoteID uint, family Family, ids []uint) error

	// ReplaceAssociations 将某一关联族整体替换为给定集合
	// 实现要求：集合调和（只删被移除的、只插新增的），重放同一集合是幂等的；
	// 传空切片表示清空该族
	ReplaceAssociations(ctx context.Context, quoteID uint, family Family, ids []uint) error

	// ListAssociationIDs 读取某一关联族当前的id列表
	ListAssociationIDs(ctx context.Context, quoteID uint, family Family) ([]uint, error)

	// RemoveAllAssociations 删除引文在全部四个关联族中的join行（删除级联）
	RemoveAllAssociations(ctx context.Context, quoteID uint) error

	// LoadAssociations 装载聚合读所需的关联数据
	// quoteIDs/bookIDs为空表示"全部"；返回的Associations按引文/书目分组，
	// 并带上各词表的id→name解析表
	LoadAssociations(ctx context.Context, quoteIDs []uint, bookIDs []uint) (*Associations, error)
}

// Associations 聚合读装载结果
// 按引文ID分组的四个关联族 + 按书目ID分组的流派 + 各词表的名称解析
type Associations struct {
	QuoteAuthors map[uint][]uint // quoteID → authorIDs
	QuoteTopics  map[uint][]uint // quoteID → topicIDs
	QuoteTags    map[uint][]uint // quoteID → tagIDs
	QuoteTypes   map[uint][]uint // quoteID → typeIDs
	BookGenres   map[uint][]uint // bookID → genreIDs

	AuthorNames map[uint]string // authorID → "First Last"
	TopicNames  map[uint]string
	TagNames    map[uint]string
	TypeNames   map[uint]string
	GenreNames  map[uint]string
}

// NewAssociations 创建空的装载结果（所有map已初始化）
func NewAssociations() *Associations {
	return &Associations{
		QuoteAuthors: make(map[uint][]uint),
		QuoteTopics:  make(map[uint][]uint),
		QuoteTags:    make(map[uint][]uint),
		QuoteTypes:   make(map[uint][]uint),
		BookGenres:   make(map[uint][]uint),
		AuthorNames:  make(map[uint]string),
		TopicNames:   make(map[uint]string),
		TagNames:     make(map[uint]string),
		TypeNames:    make(map[uint]string),
		GenreNames:   make(map[uint]string),
	}
}
