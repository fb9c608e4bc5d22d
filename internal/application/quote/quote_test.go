package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/quotelib/internal/domain/book"
	"github.com/xiebiao/quotelib/internal/domain/quote"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// =========================================
// 测试替身:内存实现仓储/事务/缓存接口
// 教学说明:应用层只依赖接口,单元测试不需要MySQL和Redis
// =========================================

// fakeQuoteRepo 内存引文仓储
type fakeQuoteRepo struct {
	quotes map[uint]*quote.Quote
	assoc  map[quote.Family]map[uint][]uint
	nextID uint

	// 聚合读的固定返回
	rows   []quote.WithBook
	loaded *quote.Associations

	// 错误注入与调用计数
	createErr error
	addErr    map[quote.Family]error
	listCalls int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	assoc := make(map[quote.Family]map[uint][]uint)
	for _, f := range quote.Families {
		assoc[f] = make(map[uint][]uint)
	}
	return &fakeQuoteRepo{
		quotes: make(map[uint]*quote.Quote),
		assoc:  assoc,
		addErr: make(map[quote.Family]error),
	}
}

func (r *fakeQuoteRepo) Create(ctx context.Context, q *quote.Quote) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	q.ID = r.nextID
	stored := *q
	r.quotes[q.ID] = &stored
	return nil
}

func (r *fakeQuoteRepo) FindByID(ctx context.Context, id uint) (*quote.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, quote.ErrQuoteNotFound
	}
	found := *q
	return &found, nil
}

func (r *fakeQuoteRepo) UpdateScalars(ctx context.Context, id uint, changes quote.ScalarChanges) error {
	q, ok := r.quotes[id]
	if !ok {
		return quote.ErrQuoteNotFound
	}
	if changes.Text != nil {
		q.Text = *changes.Text
	}
	if changes.BookID != nil {
		q.BookID = *changes.BookID
	}
	if changes.Context != nil {
		q.Context = *changes.Context
	}
	if changes.PageNumber != nil {
		q.PageNumber = *changes.PageNumber
	}
	if changes.QuotedBy != nil {
		q.QuotedBy = changes.QuotedBy
	}
	if changes.IsImportant != nil {
		q.IsImportant = *changes.IsImportant
	}
	if changes.IsPrivate != nil {
		q.IsPrivate = *changes.IsPrivate
	}
	return nil
}

func (r *fakeQuoteRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.quotes[id]; !ok {
		return quote.ErrQuoteNotFound
	}
	delete(r.quotes, id)
	return nil
}

func (r *fakeQuoteRepo) ListWithBook(ctx context.Context) ([]quote.WithBook, error) {
	r.listCalls++
	return r.rows, nil
}

func (r *fakeQuoteRepo) FindWithBookByID(ctx context.Context, id uint) ([]quote.WithBook, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return r.rows[i : i+1], nil
		}
	}
	return []quote.WithBook{}, nil
}

func (r *fakeQuoteRepo) AddAssociations(ctx context.Context, quoteID uint, family quote.Family, ids []uint) error {
	if err := r.addErr[family]; err != nil {
		return err
	}
	r.assoc[family][quoteID] = append(r.assoc[family][quoteID], ids...)
	return nil
}

func (r *fakeQuoteRepo) ReplaceAssociations(ctx context.Context, quoteID uint, family quote.Family, ids []uint) error {
	// 与真实实现一致:集合调和而非全删重插
	current := r.assoc[family][quoteID]
	toAdd, toRemove := quote.DiffIDSets(current, ids)

	removeSet := make(map[uint]bool, len(toRemove))
	for _, id := range toRemove {
		removeSet[id] = true
	}
	kept := make([]uint, 0, len(current))
	for _, id := range current {
		if !removeSet[id] {
			kept = append(kept, id)
		}
	}
	r.assoc[family][quoteID] = append(kept, toAdd...)
	return nil
}

func (r *fakeQuoteRepo) ListAssociationIDs(ctx context.Context, quoteID uint, family quote.Family) ([]uint, error) {
	return r.assoc[family][quoteID], nil
}

func (r *fakeQuoteRepo) RemoveAllAssociations(ctx context.Context, quoteID uint) error {
	for _, f := range quote.Families {
		delete(r.assoc[f], quoteID)
	}
	return nil
}

func (r *fakeQuoteRepo) LoadAssociations(ctx context.Context, quoteIDs, bookIDs []uint) (*quote.Associations, error) {
	if r.loaded != nil {
		return r.loaded, nil
	}
	return quote.NewAssociations(), nil
}

// fakeBookRepo 内存书目仓储
type fakeBookRepo struct {
	books     map[uint]*book.Book
	authorIDs map[uint][]uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		books:     make(map[uint]*book.Book),
		authorIDs: make(map[uint][]uint),
	}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) ListAuthorIDs(ctx context.Context, bookID uint) ([]uint, error) {
	return r.authorIDs[bookID], nil
}

func (r *fakeBookRepo) AddAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	return nil
}

func (r *fakeBookRepo) AddGenres(ctx context.Context, bookID uint, genreIDs []uint) error {
	return nil
}

func (r *fakeBookRepo) LinkPublisher(ctx context.Context, publisherID, bookID uint) error {
	return nil
}

// fakeTx 直接执行fn的事务替身
type fakeTx struct {
	calls int
}

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// fakeViewCache 内存缓存替身
type fakeViewCache struct {
	views         []quote.View
	getErr        error
	sets          int
	invalidations int
}

func (c *fakeViewCache) Get(ctx context.Context) ([]quote.View, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.views, nil
}

func (c *fakeViewCache) Set(ctx context.Context, views []quote.View) error {
	c.sets++
	c.views = views
	return nil
}

func (c *fakeViewCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	c.views = nil
	return nil
}

// =========================================
// 创建引文
// =========================================

// TestCreateQuote_SeedsAuthorsFromBook 创建时作者关联从书目播种
func TestCreateQuote_SeedsAuthorsFromBook(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	bookRepo := newFakeBookRepo()
	bookRepo.books[100] = &book.Book{ID: 100, Title: "Hamlet", PublisherID: 1}
	bookRepo.authorIDs[100] = []uint{1, 2}
	tx := &fakeTx{}
	cache := &fakeViewCache{}

	uc := NewCreateQuoteUseCase(quoteRepo, bookRepo, tx, cache)
	resp, err := uc.Execute(context.Background(), CreateQuoteRequest{
		UserID:   10,
		Text:     "To be, or not to be",
		BookID:   100,
		TopicIDs: []uint{11, 11, 12}, // 重复id应去重
		TagIDs:   []uint{21},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotZero(t, resp.QuoteID, "应回填自增ID")

	// 引文行已持久化
	q, err := quoteRepo.FindByID(context.Background(), resp.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, uint(10), q.UserID)
	assert.Equal(t, uint(100), q.BookID)

	// 作者关联 = 书目当前的作者集合
	authors, _ := quoteRepo.ListAssociationIDs(context.Background(), resp.QuoteID, quote.FamilyAuthor)
	assert.Equal(t, []uint{1, 2}, authors, "作者关联应从book_to_author复制")

	topics, _ := quoteRepo.ListAssociationIDs(context.Background(), resp.QuoteID, quote.FamilyTopic)
	assert.Equal(t, []uint{11, 12}, topics, "主题id应去重")

	tags, _ := quoteRepo.ListAssociationIDs(context.Background(), resp.QuoteID, quote.FamilyTag)
	assert.Equal(t, []uint{21}, tags)

	assert.Equal(t, 1, tx.calls, "整个写路径应在一个事务内")
	assert.Equal(t, 1, cache.invalidations, "写成功后应失效聚合读缓存")
}

// TestCreateQuote_Unauthorized 匿名请求直接拒绝,不开启事务
func TestCreateQuote_Unauthorized(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	bookRepo := newFakeBookRepo()
	tx := &fakeTx{}
	cache := &fakeViewCache{}

	uc := NewCreateQuoteUseCase(quoteRepo, bookRepo, tx, cache)
	_, err := uc.Execute(context.Background(), CreateQuoteRequest{
		UserID: 0,
		Text:   "anonymous",
		BookID: 100,
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Empty(t, quoteRepo.quotes, "不应持久化任何引文")
	assert.Zero(t, tx.calls, "不应开启事务")
	assert.Zero(t, cache.invalidations)
}

// TestCreateQuote_Validation 实体校验失败时不触达仓储
func TestCreateQuote_Validation(t *testing.T) {
	bookRepo := newFakeBookRepo()
	bookRepo.books[100] = &book.Book{ID: 100, Title: "Hamlet", PublisherID: 1}

	t.Run("正文必填", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		uc := NewCreateQuoteUseCase(quoteRepo, bookRepo, &fakeTx{}, &fakeViewCache{})
		_, err := uc.Execute(context.Background(), CreateQuoteRequest{UserID: 10, Text: "", BookID: 100})
		assert.ErrorIs(t, err, quote.ErrTextRequired)
		assert.Empty(t, quoteRepo.quotes)
	})

	t.Run("书目不存在", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		uc := NewCreateQuoteUseCase(quoteRepo, bookRepo, &fakeTx{}, &fakeViewCache{})
		_, err := uc.Execute(context.Background(), CreateQuoteRequest{UserID: 10, Text: "text", BookID: 999})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Empty(t, quoteRepo.quotes)
	})
}

// TestCreateQuote_AssociationFailurePropagates join表写入失败应使整个用例失败
func TestCreateQuote_AssociationFailurePropagates(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.addErr[quote.FamilyTag] = errors.New("insert failed")
	bookRepo := newFakeBookRepo()
	bookRepo.books[100] = &book.Book{ID: 100, Title: "Hamlet", PublisherID: 1}
	cache := &fakeViewCache{}

	uc := NewCreateQuoteUseCase(quoteRepo, bookRepo, &fakeTx{}, cache)
	_, err := uc.Execute(context.Background(), CreateQuoteRequest{
		UserID: 10,
		Text:   "text",
		BookID: 100,
		TagIDs: []uint{21},
	})

	assert.Error(t, err, "事务内任意一步失败都应返回错误(真实实现会回滚)")
	assert.Zero(t, cache.invalidations, "失败的写不应失效缓存")
}

// =========================================
// 更新引文
// =========================================

func seedQuote(t *testing.T, quoteRepo *fakeQuoteRepo, bookID uint) uint {
	t.Helper()
	q := quote.NewQuote(10, "original text", bookID, "", "", nil, false, false)
	require.NoError(t, quoteRepo.Create(context.Background(), q))
	return q.ID
}

// TestUpdateQuote_Scalars 标量字段PATCH语义
func TestUpdateQuote_Scalars(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	bookRepo := newFakeBookRepo()
	quoteID := seedQuote(t, quoteRepo, 100)
	cache := &fakeViewCache{}

	uc := NewUpdateQuoteUseCase(quoteRepo, bookRepo, &fakeTx{}, cache)
	newText := "revised text"
	important := true
	_, err := uc.Execute(context.Background(), UpdateQuoteRequest{
		UserID:      10,
		QuoteID:     quoteID,
		Text:        &newText,
		IsImportant: &important,
	})
	require.NoError(t, err)

	q, _ := quoteRepo.FindByID(context.Background(), quoteID)
	assert.Equal(t, "revised text", q.Text)
	assert.True(t, q.IsImportant)
	assert.Equal(t, uint(100), q.BookID, "未传的字段应保持不变")
	assert.Equal(t, 1, cache.invalidations)
}

// TestUpdateQuote_NilVsEmpty 关联族区分"没传"与"传了空集合"
func TestUpdateQuote_NilVsEmpty(t *testing.T) {
	newText := "revised"

	t.Run("nil保持不变", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		quoteID := seedQuote(t, quoteRepo, 100)
		quoteRepo.assoc[quote.FamilyTopic][quoteID] = []uint{11, 12}

		uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{
			UserID:  10,
			QuoteID: quoteID,
			Text:    &newText,
			// TopicIDs为nil:主题族不动
		})
		require.NoError(t, err)

		topics, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyTopic)
		assert.Equal(t, []uint{11, 12}, topics)
	})

	t.Run("空切片清空该族", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		quoteID := seedQuote(t, quoteRepo, 100)
		quoteRepo.assoc[quote.FamilyTopic][quoteID] = []uint{11, 12}
		quoteRepo.assoc[quote.FamilyTag][quoteID] = []uint{21}

		uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{
			UserID:   10,
			QuoteID:  quoteID,
			TopicIDs: []uint{},
		})
		require.NoError(t, err)

		topics, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyTopic)
		assert.Empty(t, topics, "空集合应清空主题族")

		tags, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyTag)
		assert.Equal(t, []uint{21}, tags, "未传的标签族不受影响")
	})
}

// TestUpdateQuote_ReplaceIdempotent 同一集合重放是幂等的
func TestUpdateQuote_ReplaceIdempotent(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteID := seedQuote(t, quoteRepo, 100)
	quoteRepo.assoc[quote.FamilyAuthor][quoteID] = []uint{1, 2}

	uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
	req := UpdateQuoteRequest{
		UserID:    10,
		QuoteID:   quoteID,
		AuthorIDs: []uint{2, 3},
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	authors, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyAuthor)
	assert.Equal(t, []uint{2, 3}, authors)

	// 重放同一请求:不报错、状态不变
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	authors, _ = quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyAuthor)
	assert.Equal(t, []uint{2, 3}, authors)
}

// TestUpdateQuote_BookChangeDoesNotReseed 换书目不重新播种作者关联
func TestUpdateQuote_BookChangeDoesNotReseed(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	bookRepo := newFakeBookRepo()
	bookRepo.books[200] = &book.Book{ID: 200, Title: "Moby-Dick", PublisherID: 1}
	bookRepo.authorIDs[200] = []uint{9}
	quoteID := seedQuote(t, quoteRepo, 100)
	quoteRepo.assoc[quote.FamilyAuthor][quoteID] = []uint{1, 2}

	uc := NewUpdateQuoteUseCase(quoteRepo, bookRepo, &fakeTx{}, &fakeViewCache{})
	newBookID := uint(200)
	_, err := uc.Execute(context.Background(), UpdateQuoteRequest{
		UserID:  10,
		QuoteID: quoteID,
		BookID:  &newBookID,
	})
	require.NoError(t, err)

	q, _ := quoteRepo.FindByID(context.Background(), quoteID)
	assert.Equal(t, uint(200), q.BookID)

	authors, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, quote.FamilyAuthor)
	assert.Equal(t, []uint{1, 2}, authors, "署名调整只能由AuthorIDs显式表达")
}

// TestUpdateQuote_Errors 更新路径的错误场景
func TestUpdateQuote_Errors(t *testing.T) {
	t.Run("引文不存在", func(t *testing.T) {
		uc := NewUpdateQuoteUseCase(newFakeQuoteRepo(), newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		text := "text"
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{UserID: 10, QuoteID: 999, Text: &text})
		assert.ErrorIs(t, err, quote.ErrQuoteNotFound)
	})

	t.Run("空更新", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		quoteID := seedQuote(t, quoteRepo, 100)
		uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{UserID: 10, QuoteID: quoteID})
		assert.ErrorIs(t, err, quote.ErrNothingToUpdate)
	})

	t.Run("目标书目不存在", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		quoteID := seedQuote(t, quoteRepo, 100)
		uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		badBookID := uint(999)
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{UserID: 10, QuoteID: quoteID, BookID: &badBookID})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("正文置空", func(t *testing.T) {
		quoteRepo := newFakeQuoteRepo()
		quoteID := seedQuote(t, quoteRepo, 100)
		uc := NewUpdateQuoteUseCase(quoteRepo, newFakeBookRepo(), &fakeTx{}, &fakeViewCache{})
		empty := ""
		_, err := uc.Execute(context.Background(), UpdateQuoteRequest{UserID: 10, QuoteID: quoteID, Text: &empty})
		assert.ErrorIs(t, err, quote.ErrTextRequired)
	})
}

// =========================================
// 删除引文
// =========================================

// TestDeleteQuote 删除级联:先清全部关联族,再删引文行
func TestDeleteQuote(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteID := seedQuote(t, quoteRepo, 100)
	quoteRepo.assoc[quote.FamilyAuthor][quoteID] = []uint{1}
	quoteRepo.assoc[quote.FamilyTopic][quoteID] = []uint{11}
	quoteRepo.assoc[quote.FamilyTag][quoteID] = []uint{21}
	quoteRepo.assoc[quote.FamilyType][quoteID] = []uint{31}
	tx := &fakeTx{}
	cache := &fakeViewCache{}

	uc := NewDeleteQuoteUseCase(quoteRepo, tx, cache)
	err := uc.Execute(context.Background(), 10, quoteID)
	require.NoError(t, err)

	_, err = quoteRepo.FindByID(context.Background(), quoteID)
	assert.ErrorIs(t, err, quote.ErrQuoteNotFound, "引文行应已删除")

	for _, f := range quote.Families {
		ids, _ := quoteRepo.ListAssociationIDs(context.Background(), quoteID, f)
		assert.Empty(t, ids, "关联族%s应已清空", f)
	}

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, cache.invalidations)
}

// TestDeleteQuote_NotFound 引文不存在时报错且不失效缓存
func TestDeleteQuote_NotFound(t *testing.T) {
	cache := &fakeViewCache{}
	uc := NewDeleteQuoteUseCase(newFakeQuoteRepo(), &fakeTx{}, cache)

	err := uc.Execute(context.Background(), 10, 999)
	assert.ErrorIs(t, err, quote.ErrQuoteNotFound)
	assert.Zero(t, cache.invalidations)
}

// TestDeleteQuote_Unauthorized 匿名删除直接拒绝
func TestDeleteQuote_Unauthorized(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteID := seedQuote(t, quoteRepo, 100)
	tx := &fakeTx{}

	uc := NewDeleteQuoteUseCase(quoteRepo, tx, &fakeViewCache{})
	err := uc.Execute(context.Background(), 0, quoteID)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Zero(t, tx.calls)
	_, err = quoteRepo.FindByID(context.Background(), quoteID)
	assert.NoError(t, err, "引文应仍然存在")
}

// =========================================
// 聚合读
// =========================================

func aggregationFixture() ([]quote.WithBook, *quote.Associations) {
	rows := []quote.WithBook{
		{
			Quote:     quote.Quote{ID: 1, UserID: 10, Text: "To be", BookID: 100},
			BookTitle: "Hamlet",
		},
	}
	assoc := quote.NewAssociations()
	assoc.QuoteAuthors[1] = []uint{2}
	assoc.AuthorNames[2] = "William Shakespeare"
	assoc.BookGenres[100] = []uint{41}
	assoc.GenreNames[41] = "Tragedy"
	return rows, assoc
}

// TestListQuotes_CacheMiss 缓存未命中时回源并回填
func TestListQuotes_CacheMiss(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.rows, quoteRepo.loaded = aggregationFixture()
	cache := &fakeViewCache{}

	uc := NewListQuotesUseCase(quoteRepo, cache)
	views, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Hamlet", views[0].BookTitle)
	assert.Equal(t, []string{"William Shakespeare"}, views[0].AuthorNames)
	assert.Equal(t, []string{"Tragedy"}, views[0].Genres)

	assert.Equal(t, 1, quoteRepo.listCalls, "应回源一次")
	assert.Equal(t, 1, cache.sets, "应回填缓存")
}

// TestListQuotes_CacheHit 缓存命中时不触达数据库
func TestListQuotes_CacheHit(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	cache := &fakeViewCache{
		views: []quote.View{{ID: 1, Text: "cached", BookTitle: "Hamlet"}},
	}

	uc := NewListQuotesUseCase(quoteRepo, cache)
	views, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cached", views[0].Text)
	assert.Zero(t, quoteRepo.listCalls, "缓存命中不应回源")
}

// TestListQuotes_CacheErrorFallsThrough 缓存故障降级为回源
func TestListQuotes_CacheErrorFallsThrough(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.rows, quoteRepo.loaded = aggregationFixture()
	cache := &fakeViewCache{getErr: errors.New("redis: connection refused")}

	uc := NewListQuotesUseCase(quoteRepo, cache)
	views, err := uc.Execute(context.Background())
	require.NoError(t, err, "缓存故障不应阻塞读路径")
	assert.Len(t, views, 1)
	assert.Equal(t, 1, quoteRepo.listCalls)
}

// TestListQuotes_ByID 按ID聚合读:不存在返回空列表而不是错误
func TestListQuotes_ByID(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quoteRepo.rows, quoteRepo.loaded = aggregationFixture()

	uc := NewListQuotesUseCase(quoteRepo, &fakeViewCache{})

	t.Run("存在", func(t *testing.T) {
		views, err := uc.ExecuteByID(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, uint(1), views[0].ID)
	})

	t.Run("不存在", func(t *testing.T) {
		views, err := uc.ExecuteByID(context.Background(), 999)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
