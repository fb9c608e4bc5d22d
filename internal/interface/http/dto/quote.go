package dto

// CreateQuoteRequest HTTP层创建引文请求
// 注意:没有author_ids字段——创建时引文的署名从所属书目复制,
// 调用方传了也会被忽略,干脆不在契约里出现
type CreateQuoteRequest struct {
	Text        string `json:"text" binding:"required,max=3000"`
	BookID      uint   `json:"book_id" binding:"required"`
	Context     string `json:"context"`
	PageNumber  string `json:"page_number" binding:"max=32"`
	QuotedBy    *uint  `json:"quoted_by"`
	IsImportant bool   `json:"is_important"`
	IsPrivate   bool   `json:"is_private"`
	TopicIDs    []uint `json:"topic_ids"`
	TagIDs      []uint `json:"tag_ids"`
	TypeIDs     []uint `json:"type_ids"`
}

// UpdateQuoteRequest HTTP层更新引文请求
// 教学要点:全部字段可选
// - 标量字段用指针:缺席(nil)不更新
// - 关联族用切片:缺席(nil)不动,"[]"清空,非空整体替换
type UpdateQuoteRequest struct {
	Text        *string `json:"text" binding:"omitempty,max=3000"`
	BookID      *uint   `json:"book_id"`
	Context     *string `json:"context"`
	PageNumber  *string `json:"page_number" binding:"omitempty,max=32"`
	QuotedBy    *uint   `json:"quoted_by"`
	IsImportant *bool   `json:"is_important"`
	IsPrivate   *bool   `json:"is_private"`
	AuthorIDs   []uint  `json:"author_ids"`
	TopicIDs    []uint  `json:"topic_ids"`
	TagIDs      []uint  `json:"tag_ids"`
	TypeIDs     []uint  `json:"type_ids"`
}
