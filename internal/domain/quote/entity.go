package quote

import (
	"time"
)

// Quote 引文实体（聚合根）
// DDD设计说明：
// 1. Quote是引文聚合的根实体，关联书目（必填）与可选的"被引作者"
// 2. 四个多对多关联族（author/topic/tag/type）只通过本聚合的写操作变更
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type Quote struct {
	ID          uint
	UserID      uint   // 录入者用户ID
	Text        string // 引文正文
	BookID      uint   // 所属书目ID
	Context     string // 上下文说明（可选）
	PageNumber  string // 页码（字符串，支持"12-13"、"xiv"等形式）
	QuotedBy    *uint  // 被引作者ID（可选，可能悬空）
	IsImportant bool
	IsPrivate   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuote 创建新引文（工厂方法）
func NewQuote(userID uint, text string, bookID uint, context, pageNumber string, quotedBy *uint, isImportant, isPrivate bool) *Quote {
	now := time.Now()
	return &Quote{
		UserID:      userID,
		Text:        text,
		BookID:      bookID,
		Context:     context,
		PageNumber:  pageNumber,
		QuotedBy:    quotedBy,
		IsImportant: isImportant,
		IsPrivate:   isPrivate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate 校验引文核心业务规则
// 规则：正文必填且不超过3000字符，书目必填
func (q *Quote) Validate() error {
	if q.Text == "" {
		return ErrTextRequired
	}
	if len(q.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	if q.BookID == 0 {
		return ErrBookRequired
	}
	return nil
}

// MaxTextLength 引文正文最大长度（与数据库varchar(3000)一致）
const MaxTextLength = 3000

// ScalarChanges 引文标量字段的局部更新（PATCH语义）
// 设计说明：nil表示该字段不更新，非nil表示更新为指针指向的值
// 关联族的替换不在此结构中（见Repository.ReplaceAssociations）
type ScalarChanges struct {
	Text        *string
	BookID      *uint
	Context     *string
	PageNumber  *string
	QuotedBy    *uint
	IsImportant *bool
	IsPrivate   *bool
}

// IsEmpty 是否没有任何标量变更
func (c ScalarChanges) IsEmpty() bool {
	return c.Text == nil && c.BookID == nil && c.Context == nil &&
		c.PageNumber == nil && c.QuotedBy == nil &&
		c.IsImportant == nil && c.IsPrivate == nil
}

// WithBook 引文与其书目的联查行（聚合读的原始输入）
type WithBook struct {
	Quote
	BookTitle string
	Citation  string
}

// Family 多对多关联族
type Family int

const (
	FamilyAuthor Family = iota // quote_to_author
	FamilyTopic                // quote_to_topic
	FamilyTag                  // quote_to_tag
	FamilyType                 // quote_to_type
)

// String 关联族名称（用于日志与错误信息）
func (f Family) String() string {
	switch f {
	case FamilyAuthor:
		return "author"
	case FamilyTopic:
		return "topic"
	case FamilyTag:
		return "tag"
	case FamilyType:
		return "type"
	}
	return "unknown"
}

// Families 全部关联族（删除级联时按此顺序清理）
var Families = []Family{FamilyAuthor, FamilyTopic, FamilyTag, FamilyType}
