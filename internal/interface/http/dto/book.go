package dto

// CreateBookRequest HTTP层创建书目请求
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	PublicationYear string `json:"publication_year" binding:"max=20"`
	ISBN            string `json:"isbn" binding:"max=20"`
	PublisherID     uint   `json:"publisher_id" binding:"required"`
	Summary         string `json:"summary"`
	Citation        string `json:"citation" binding:"max=500"`
	SourceLink      string `json:"source_link" binding:"max=500"`
	Rating          *int   `json:"rating" binding:"omitempty,min=0,max=10"`
	AuthorIDs       []uint `json:"author_ids"`
	GenreIDs        []uint `json:"genre_ids"`
}

// ListBooksQuery 书目列表查询参数
type ListBooksQuery struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
	Keyword  string `form:"keyword"`
	SortBy   string `form:"sort_by"`
}
