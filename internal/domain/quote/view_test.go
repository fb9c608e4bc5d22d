package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试夹具:两条引文、两本书
// 引文1:有被引作者、两位署名作者、主题/标签/类型各有内容,书目有流派
// 引文2:什么关联都没有(最小引文)
func buildFixture() ([]WithBook, *Associations) {
	quotedBy := uint(2)
	rows := []WithBook{
		{
			Quote: Quote{
				ID:          1,
				UserID:      10,
				Text:        "To be, or not to be",
				BookID:      100,
				Context:     "Act 3, Scene 1",
				PageNumber:  "55",
				QuotedBy:    &quotedBy,
				IsImportant: true,
				CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			BookTitle: "Hamlet",
			Citation:  "Shakespeare, W. (1603). Hamlet.",
		},
		{
			Quote: Quote{
				ID:     2,
				UserID: 10,
				Text:   "Call me Ishmael.",
				BookID: 200,
			},
			BookTitle: "Moby-Dick",
		},
	}

	assoc := NewAssociations()
	assoc.QuoteAuthors[1] = []uint{1, 2}
	assoc.QuoteTopics[1] = []uint{11}
	assoc.QuoteTags[1] = []uint{21, 22}
	assoc.QuoteTypes[1] = []uint{31}
	assoc.BookGenres[100] = []uint{41, 42}
	assoc.AuthorNames[1] = "John Fletcher"
	assoc.AuthorNames[2] = "William Shakespeare"
	assoc.TopicNames[11] = "Mortality"
	assoc.TagNames[21] = "soliloquy"
	assoc.TagNames[22] = "famous"
	assoc.TypeNames[31] = "monologue"
	assoc.GenreNames[41] = "Tragedy"
	assoc.GenreNames[42] = "Drama"

	return rows, assoc
}

// TestBuildViews 聚合装配:每条引文恰好产出一条完整记录
func TestBuildViews(t *testing.T) {
	rows, assoc := buildFixture()

	views := BuildViews(rows, assoc)
	require.Len(t, views, 2, "每条引文应恰好产出一条记录")

	v := views[0]
	assert.Equal(t, uint(1), v.ID)
	assert.Equal(t, "To be, or not to be", v.Text)
	assert.Equal(t, "Hamlet", v.BookTitle)
	assert.Equal(t, "Shakespeare, W. (1603). Hamlet.", v.Citation)
	assert.Equal(t, []uint{1, 2}, v.AuthorIDs)
	assert.Equal(t, []string{"John Fletcher", "William Shakespeare"}, v.AuthorNames)
	assert.Equal(t, []string{"Mortality"}, v.Topics)
	assert.Equal(t, []string{"soliloquy", "famous"}, v.Tags)
	assert.Equal(t, []string{"monologue"}, v.Types)
	assert.Equal(t, []string{"Tragedy", "Drama"}, v.Genres, "流派应从书目关联解析")
	assert.Equal(t, "William Shakespeare", v.QuotedAuthor, "被引作者应解析为姓名")
}

// TestBuildViews_EmptyAssociations 关联为空时应产出空列表而不是nil
func TestBuildViews_EmptyAssociations(t *testing.T) {
	rows, assoc := buildFixture()

	views := BuildViews(rows, assoc)
	require.Len(t, views, 2)

	v := views[1]
	assert.NotNil(t, v.AuthorIDs)
	assert.Empty(t, v.AuthorIDs)
	assert.NotNil(t, v.AuthorNames)
	assert.Empty(t, v.AuthorNames)
	assert.NotNil(t, v.Topics)
	assert.NotNil(t, v.Tags)
	assert.NotNil(t, v.Types)
	assert.NotNil(t, v.Genres)
	assert.Empty(t, v.Genres)
}

// TestBuildViews_QuotedAuthorFallback 被引作者未填或悬空都退化为占位串
func TestBuildViews_QuotedAuthorFallback(t *testing.T) {
	t.Run("未填", func(t *testing.T) {
		rows, assoc := buildFixture()
		views := BuildViews(rows, assoc)
		assert.Equal(t, UnknownAuthor, views[1].QuotedAuthor)
	})

	t.Run("悬空引用", func(t *testing.T) {
		rows, assoc := buildFixture()
		dangling := uint(999) // 作者表中不存在
		rows[0].QuotedBy = &dangling
		views := BuildViews(rows, assoc)
		assert.Equal(t, UnknownAuthor, views[0].QuotedAuthor)
	})
}

// TestBuildViews_UnresolvableName 词表解析不到名称时:id保留、名称跳过
func TestBuildViews_UnresolvableName(t *testing.T) {
	rows, assoc := buildFixture()
	delete(assoc.AuthorNames, 1)
	delete(assoc.TagNames, 22)

	views := BuildViews(rows, assoc)
	v := views[0]

	assert.Equal(t, []uint{1, 2}, v.AuthorIDs, "作者id应原样保留")
	assert.Equal(t, []string{"William Shakespeare"}, v.AuthorNames, "解析不到的姓名应跳过")
	assert.Equal(t, []string{"soliloquy"}, v.Tags)
}

// TestBuildViews_NoRows 没有引文时返回空列表
func TestBuildViews_NoRows(t *testing.T) {
	views := BuildViews(nil, NewAssociations())
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

// TestDiffIDSets 集合调和:只删被移除的、只插新增的
func TestDiffIDSets(t *testing.T) {
	t.Run("新增与移除", func(t *testing.T) {
		toAdd, toRemove := DiffIDSets([]uint{1, 2, 3}, []uint{2, 3, 4})
		assert.Equal(t, []uint{4}, toAdd)
		assert.Equal(t, []uint{1}, toRemove)
	})

	t.Run("幂等_同一集合重放得到空diff", func(t *testing.T) {
		toAdd, toRemove := DiffIDSets([]uint{1, 2, 3}, []uint{3, 2, 1})
		assert.Empty(t, toAdd)
		assert.Empty(t, toRemove)
	})

	t.Run("目标集合去重", func(t *testing.T) {
		toAdd, toRemove := DiffIDSets([]uint{1}, []uint{2, 2, 2, 1})
		assert.Equal(t, []uint{2}, toAdd, "重复id只计一次")
		assert.Empty(t, toRemove)
	})

	t.Run("清空", func(t *testing.T) {
		toAdd, toRemove := DiffIDSets([]uint{1, 2}, []uint{})
		assert.Empty(t, toAdd)
		assert.Equal(t, []uint{1, 2}, toRemove)
	})

	t.Run("从空集合建立", func(t *testing.T) {
		toAdd, toRemove := DiffIDSets(nil, []uint{5, 6})
		assert.Equal(t, []uint{5, 6}, toAdd)
		assert.Empty(t, toRemove)
	})
}

// TestQuoteValidate 引文核心业务规则
func TestQuoteValidate(t *testing.T) {
	t.Run("合法引文", func(t *testing.T) {
		q := NewQuote(1, "some text", 100, "", "", nil, false, false)
		assert.NoError(t, q.Validate())
	})

	t.Run("正文必填", func(t *testing.T) {
		q := NewQuote(1, "", 100, "", "", nil, false, false)
		assert.ErrorIs(t, q.Validate(), ErrTextRequired)
	})

	t.Run("正文超长", func(t *testing.T) {
		long := make([]byte, MaxTextLength+1)
		for i := range long {
			long[i] = 'a'
		}
		q := NewQuote(1, string(long), 100, "", "", nil, false, false)
		assert.ErrorIs(t, q.Validate(), ErrTextTooLong)
	})

	t.Run("书目必填", func(t *testing.T) {
		q := NewQuote(1, "some text", 0, "", "", nil, false, false)
		assert.ErrorIs(t, q.Validate(), ErrBookRequired)
	})
}

// TestScalarChangesIsEmpty PATCH语义的空变更判定
func TestScalarChangesIsEmpty(t *testing.T) {
	assert.True(t, ScalarChanges{}.IsEmpty())

	text := "new text"
	assert.False(t, ScalarChanges{Text: &text}.IsEmpty())

	flag := false
	assert.False(t, ScalarChanges{IsPrivate: &flag}.IsEmpty(), "指向零值的指针也是变更")
}
