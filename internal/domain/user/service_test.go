package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// fakeRepo 内存用户仓储(按邮箱索引)
type fakeRepo struct {
	users  map[string]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Email] = u
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	r.users[u.Email] = u
	return nil
}

// TestRegister 注册:密码加密存储,明文不落库
func TestRegister(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "reader@example.com", "Pass1234", "读书人")
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "reader@example.com", u.Email)
	assert.NotEqual(t, "Pass1234", u.Password, "不应存储明文密码")

	// 存储的哈希应能通过bcrypt校验
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Pass1234"))
	assert.NoError(t, err)
}

// TestRegister_Validation 注册参数校验
func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("邮箱格式错误", func(t *testing.T) {
		_, err := svc.Register(ctx, "not-an-email", "Pass1234", "读书人")
		assert.Error(t, err)
	})

	t.Run("密码太短", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@example.com", "Pw1", "读书人")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("密码太长", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@example.com", "Pass1234Pass1234Pass1234", "读书人")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("密码缺少数字", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@example.com", "Password", "读书人")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("密码缺少字母", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@example.com", "12345678", "读书人")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("显示名太短", func(t *testing.T) {
		_, err := svc.Register(ctx, "a@example.com", "Pass1234", "a")
		assert.Error(t, err)
	})
}

// TestRegister_DuplicateEmail 邮箱重复由仓储返回业务错误
func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@example.com", "Pass1234", "读书人")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "Pass1234", "另一个人")
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
}

// TestLogin 登录:邮箱存在且密码正确
func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "reader@example.com", "Pass1234", "读书人")
	require.NoError(t, err)

	t.Run("登录成功", func(t *testing.T) {
		u, err := svc.Login(ctx, "reader@example.com", "Pass1234")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", u.Email)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "reader@example.com", "Wrong999")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "Pass1234")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
