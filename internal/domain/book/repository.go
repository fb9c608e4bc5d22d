package book

import (
	"context"
)

// Repository 书目仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 写方法都通过context参与事务
type Repository interface {
	// Create 创建书目行(回填自增ID)
	// 书名/ISBN/引用格式重复时返回对应的Duplicate错误
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找书目
	// 如果不存在,返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 分页查询书目列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListAuthorIDs 读取书目当前的作者id集合(book_to_author)
	// 引文创建时以此为准播种引文的作者关联
	ListAuthorIDs(ctx context.Context, bookID uint) ([]uint, error)

	// AddAuthors 写入book_to_author join行
	AddAuthors(ctx context.Context, bookID uint, authorIDs []uint) error

	// AddGenres 写入book_to_genre join行
	AddGenres(ctx context.Context, bookID uint, genreIDs []uint) error

	// LinkPublisher 写入publisher_to_book辅助查询行
	LinkPublisher(ctx context.Context, publisherID, bookID uint) error
}
