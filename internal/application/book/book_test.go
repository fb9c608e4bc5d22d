package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/quotelib/internal/domain/book"
	"github.com/xiebiao/quotelib/internal/domain/publisher"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// fakeBookRepo 内存书目仓储:记录join表写入以便断言
type fakeBookRepo struct {
	books  map[uint]*book.Book
	nextID uint

	addedAuthors    map[uint][]uint // bookID → authorIDs
	addedGenres     map[uint][]uint // bookID → genreIDs
	linkedPublisher map[uint]uint   // bookID → publisherID

	listBooks []*book.Book
	listTotal int64
	lastList  book.ListParams
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		books:           make(map[uint]*book.Book),
		addedAuthors:    make(map[uint][]uint),
		addedGenres:     make(map[uint][]uint),
		linkedPublisher: make(map[uint]uint),
	}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	for _, existing := range r.books {
		if existing.Title == b.Title {
			return book.ErrTitleDuplicate
		}
	}
	r.nextID++
	b.ID = r.nextID
	stored := *b
	r.books[b.ID] = &stored
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.lastList = params
	return r.listBooks, r.listTotal, nil
}

func (r *fakeBookRepo) ListAuthorIDs(ctx context.Context, bookID uint) ([]uint, error) {
	return r.addedAuthors[bookID], nil
}

func (r *fakeBookRepo) AddAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	r.addedAuthors[bookID] = append(r.addedAuthors[bookID], authorIDs...)
	return nil
}

func (r *fakeBookRepo) AddGenres(ctx context.Context, bookID uint, genreIDs []uint) error {
	r.addedGenres[bookID] = append(r.addedGenres[bookID], genreIDs...)
	return nil
}

func (r *fakeBookRepo) LinkPublisher(ctx context.Context, publisherID, bookID uint) error {
	r.linkedPublisher[bookID] = publisherID
	return nil
}

// fakePublisherRepo 内存出版社仓储
type fakePublisherRepo struct {
	publishers map[uint]*publisher.Publisher
}

func (r *fakePublisherRepo) Create(ctx context.Context, p *publisher.Publisher) error { return nil }

func (r *fakePublisherRepo) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	p, ok := r.publishers[id]
	if !ok {
		return nil, publisher.ErrPublisherNotFound
	}
	return p, nil
}

func (r *fakePublisherRepo) List(ctx context.Context) ([]*publisher.Publisher, error) {
	return nil, nil
}

func (r *fakePublisherRepo) LinkCity(ctx context.Context, publisherID, cityID uint) error {
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

func newPublisherRepoWith(id uint) *fakePublisherRepo {
	return &fakePublisherRepo{
		publishers: map[uint]*publisher.Publisher{
			id: {ID: id, Name: "Penguin", CityID: 1, StateID: 1, CountryID: 1},
		},
	}
}

// TestCreateBook 创建书目:书目行+三张join表在一个事务内写入
func TestCreateBook(t *testing.T) {
	bookRepo := newFakeBookRepo()
	tx := &fakeTx{}
	uc := NewCreateBookUseCase(bookRepo, newPublisherRepoWith(1), tx)

	rating := 8
	resp, err := uc.Execute(context.Background(), CreateBookRequest{
		UserID:      10,
		Title:       "Hamlet",
		PublisherID: 1,
		Rating:      &rating,
		AuthorIDs:   []uint{1, 1, 2}, // 重复id应去重
		GenreIDs:    []uint{41},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotZero(t, resp.BookID, "应回填自增ID")

	assert.Equal(t, []uint{1, 2}, bookRepo.addedAuthors[resp.BookID], "作者集合应去重后写入")
	assert.Equal(t, []uint{41}, bookRepo.addedGenres[resp.BookID])
	assert.Equal(t, uint(1), bookRepo.linkedPublisher[resp.BookID], "应写入publisher_to_book辅助行")
	assert.Equal(t, 1, tx.calls, "整个写路径应在一个事务内")
}

// TestCreateBook_Errors 创建书目的错误场景
func TestCreateBook_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("匿名请求", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		tx := &fakeTx{}
		uc := NewCreateBookUseCase(bookRepo, newPublisherRepoWith(1), tx)
		_, err := uc.Execute(ctx, CreateBookRequest{UserID: 0, Title: "Hamlet", PublisherID: 1})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Zero(t, tx.calls)
	})

	t.Run("书名必填", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), newPublisherRepoWith(1), &fakeTx{})
		_, err := uc.Execute(ctx, CreateBookRequest{UserID: 10, Title: "", PublisherID: 1})
		assert.ErrorIs(t, err, book.ErrTitleRequired)
	})

	t.Run("评分越界", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), newPublisherRepoWith(1), &fakeTx{})
		rating := 11
		_, err := uc.Execute(ctx, CreateBookRequest{UserID: 10, Title: "Hamlet", PublisherID: 1, Rating: &rating})
		assert.ErrorIs(t, err, book.ErrInvalidRating)
	})

	t.Run("出版社不存在", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), newPublisherRepoWith(1), &fakeTx{})
		_, err := uc.Execute(ctx, CreateBookRequest{UserID: 10, Title: "Hamlet", PublisherID: 999})
		assert.ErrorIs(t, err, publisher.ErrPublisherNotFound)
	})

	t.Run("书名重复", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		uc := NewCreateBookUseCase(bookRepo, newPublisherRepoWith(1), &fakeTx{})
		_, err := uc.Execute(ctx, CreateBookRequest{UserID: 10, Title: "Hamlet", PublisherID: 1})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, CreateBookRequest{UserID: 10, Title: "Hamlet", PublisherID: 1})
		assert.ErrorIs(t, err, book.ErrTitleDuplicate)
	})
}

// TestListBooks 分页参数的默认值与范围限制
func TestListBooks(t *testing.T) {
	rating := 8
	bookRepo := newFakeBookRepo()
	bookRepo.listBooks = []*book.Book{
		{ID: 1, Title: "Hamlet", PublisherID: 1, Rating: &rating},
		{ID: 2, Title: "Moby-Dick", PublisherID: 2},
	}
	bookRepo.listTotal = 45
	uc := NewListBooksUseCase(bookRepo)

	t.Run("默认分页", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), ListBooksRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.Equal(t, int64(45), resp.Total)
		assert.Equal(t, 3, resp.TotalPages, "45条/每页20条=3页")
		require.Len(t, resp.List, 2)
		assert.Equal(t, "Hamlet", resp.List[0].Title)
	})

	t.Run("每页数量上限", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListBooksRequest{Page: 1, PageSize: 500})
		require.NoError(t, err)
		assert.Equal(t, 100, bookRepo.lastList.PageSize, "每页数量应被限制为100")
	})

	t.Run("搜索与排序参数透传", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListBooksRequest{Keyword: "Hamlet", SortBy: "rating_desc"})
		require.NoError(t, err)
		assert.Equal(t, "Hamlet", bookRepo.lastList.Keyword)
		assert.Equal(t, "rating_desc", bookRepo.lastList.SortBy)
	})
}
