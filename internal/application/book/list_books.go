package book

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/book"
)

// ListBooksUseCase 书目列表查询用例
// 设计说明:
// 1. 支持分页、搜索、排序
// 2. 列表不展开作者/流派关联(那是引文聚合读的职责)
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo: bookRepo,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(搜索书名、引用格式)
	SortBy   string // 排序方式(title_asc, rating_desc, id_asc)
}

// BookListItem 列表项DTO
type BookListItem struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	PublicationYear string `json:"publication_year,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	PublisherID     uint   `json:"publisher_id"`
	Citation        string `json:"citation,omitempty"`
	SourceLink      string `json:"source_link,omitempty"`
	Rating          *int   `json:"rating,omitempty"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询用例
// 学习要点:
// 1. 参数默认值处理(page默认1, pageSize默认20)
// 2. 参数范围限制(pageSize最大100)
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20 // 默认每页20条
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // 最大每页100条
	}

	// 2. 调用Repository查询
	params := book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	}
	books, total, err := uc.bookRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = BookListItem{
			ID:              b.ID,
			Title:           b.Title,
			PublicationYear: b.PublicationYear,
			ISBN:            b.ISBN,
			PublisherID:     b.PublisherID,
			Citation:        b.Citation,
			SourceLink:      b.SourceLink,
			Rating:          b.Rating,
		}
	}

	// 4. 计算总页数
	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize != 0 {
		totalPages++
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}
