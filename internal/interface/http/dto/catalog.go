package dto

// CreateVocabRequest HTTP层创建词表条目请求
// genre/topic/tag/type四个词表共用一个结构(字段完全一致)
type CreateVocabRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}
