package quote

import (
	"time"
)

// UnknownAuthor 被引作者无法解析时的占位显示名
// 设计说明：quotedBy为空或指向不存在的作者时返回占位串而非报错，
// 展示层不需要区分"未填"与"悬空引用"
const UnknownAuthor = "Unknown Author"

// View 引文聚合读模型
// 一条引文展示所需的全部信息，调用方不需要再做任何join：
// 引文标量 + 书目（书名/引用格式）+ 作者id与姓名 + 主题/标签/类型名称 + 书目流派名称
type View struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Text        string    `json:"text"`
	BookID      uint      `json:"book_id"`
	BookTitle   string    `json:"book_title"`
	Citation    string    `json:"citation,omitempty"`
	Context     string    `json:"context,omitempty"`
	PageNumber  string    `json:"page_number,omitempty"`
	QuotedBy    *uint     `json:"quoted_by,omitempty"`
	QuotedAuthor string   `json:"quoted_author"`
	IsImportant bool      `json:"is_important"`
	IsPrivate   bool      `json:"is_private"`
	AuthorIDs   []uint    `json:"author_ids"`
	AuthorNames []string  `json:"author_names"`
	Topics      []string  `json:"topics"`
	Tags        []string  `json:"tags"`
	Types       []string  `json:"types"`
	Genres      []string  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
}

// BuildViews 将联查行与装载的关联数据装配为聚合读模型
// 设计说明：
// 1. 纯内存装配，不触达数据库——换round trips为内存（目录量级可接受）
// 2. 每条引文恰好产出一条记录；关联为空时产出空列表而非nil/错误
// 3. 词表中解析不到名称的join行：id保留、名称跳过（join表与词表不一致
//    只可能来自约定外的手工改库，展示层照常工作）
func BuildViews(rows []WithBook, assoc *Associations) []View {
	views := make([]View, 0, len(rows))
	for i := range rows {
		views = append(views, buildView(&rows[i], assoc))
	}
	return views
}

func buildView(row *WithBook, assoc *Associations) View {
	v := View{
		ID:          row.ID,
		UserID:      row.UserID,
		Text:        row.Text,
		BookID:      row.BookID,
		BookTitle:   row.BookTitle,
		Citation:    row.Citation,
		Context:     row.Context,
		PageNumber:  row.PageNumber,
		QuotedBy:    row.QuotedBy,
		IsImportant: row.IsImportant,
		IsPrivate:   row.IsPrivate,
		CreatedAt:   row.CreatedAt,
		AuthorIDs:   []uint{},
		AuthorNames: []string{},
		Topics:      []string{},
		Tags:        []string{},
		Types:       []string{},
		Genres:      []string{},
	}

	// 引文自身的作者关联（id与姓名都要）
	for _, authorID := range assoc.QuoteAuthors[row.ID] {
		v.AuthorIDs = append(v.AuthorIDs, authorID)
		if name, ok := assoc.AuthorNames[authorID]; ok {
			v.AuthorNames = append(v.AuthorNames, name)
		}
	}

	// 主题/标签/类型按名称展示
	v.Topics = resolveNames(assoc.QuoteTopics[row.ID], assoc.TopicNames)
	v.Tags = resolveNames(assoc.QuoteTags[row.ID], assoc.TagNames)
	v.Types = resolveNames(assoc.QuoteTypes[row.ID], assoc.TypeNames)

	// 流派挂在书目上，不挂在引文上
	v.Genres = resolveNames(assoc.BookGenres[row.BookID], assoc.GenreNames)

	// 被引作者：未填或悬空都退化为占位串
	v.QuotedAuthor = UnknownAuthor
	if row.QuotedBy != nil {
		if name, ok := assoc.AuthorNames[*row.QuotedBy]; ok {
			v.QuotedAuthor = name
		}
	}

	return v
}

// resolveNames 将id列表解析为名称列表（保持join行顺序，跳过解析不到的id）
func resolveNames(ids []uint, names map[uint]string) []string {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		}
	}
	return resolved
}

// DiffIDSets 计算集合替换所需的最小变更（调和而非全删重插）
// 返回：toAdd=目标中新增的id，toRemove=当前有而目标没有的id
// 重复id只计一次；对同一目标集合重放得到空diff（幂等）
func DiffIDSets(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}

	desiredSet := make(map[uint]bool, len(desired))
	for _, id := range desired {
		if desiredSet[id] {
			continue // 去重
		}
		desiredSet[id] = true
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}

	for _, id := range current {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}
