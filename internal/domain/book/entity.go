package book

// Book 书目实体（聚合根）
// DDD设计说明：
// 1. 书名在目录内唯一（数据库UNIQUE索引保证）
// 2. ISBN与引用格式（citation）可选，但填了也要求唯一
// 3. 出版社为单一必填引用（不是多对多），publisher_to_book只是辅助查询表
// 4. 作者与流派通过join表关联，只在书目的写操作中变更
type Book struct {
	ID              uint
	Title           string // 书名（唯一）
	PublicationYear string // 出版年份（字符串，支持"1998"、"c. 170"等）
	ISBN            string // ISBN（可选，唯一）
	PublisherID     uint   // 出版社ID（必填）
	Summary         string // 摘要（可选）
	Citation        string // 引用格式（可选，唯一）
	SourceLink      string // 来源链接（可选）
	Rating          *int   // 评分（可选）
}

// NewBook 创建新书目（工厂方法）
func NewBook(title, publicationYear, isbn string, publisherID uint, summary, citation, sourceLink string, rating *int) *Book {
	return &Book{
		Title:           title,
		PublicationYear: publicationYear,
		ISBN:            isbn,
		PublisherID:     publisherID,
		Summary:         summary,
		Citation:        citation,
		SourceLink:      sourceLink,
		Rating:          rating,
	}
}

// Validate 校验书目核心业务规则
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if b.PublisherID == 0 {
		return ErrPublisherRequired
	}
	if b.Rating != nil && (*b.Rating < 0 || *b.Rating > 10) {
		return ErrInvalidRating
	}
	return nil
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(搜索书名、引用格式)
	SortBy   string // 排序字段(title_asc, rating_desc, id_asc)
}
