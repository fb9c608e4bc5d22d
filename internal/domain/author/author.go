package author

import (
	"context"

	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Author 作者实体
// 设计说明：姓名必填，生卒年/国籍/简介可选；同名作者允许共存（无唯一约束）
type Author struct {
	ID          uint
	FirstName   string
	LastName    string
	BirthYear   *int
	DeathYear   *int
	Nationality string
	Biography   string
}

// DisplayName 展示名 "First Last"
func (a *Author) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// Validate 校验作者核心业务规则
func (a *Author) Validate() error {
	if a.FirstName == "" || a.LastName == "" {
		return ErrNameRequired
	}
	if a.BirthYear != nil && a.DeathYear != nil && *a.DeathYear < *a.BirthYear {
		return ErrInvalidLifespan
	}
	return nil
}

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrNameRequired 姓名必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "作者姓名不能为空")

	// ErrInvalidLifespan 卒年早于生年
	ErrInvalidLifespan = apperrors.New(apperrors.ErrCodeInvalidParams, "卒年不能早于生年")
)

// Repository 作者仓储接口
type Repository interface {
	// Create 创建作者(回填自增ID)
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者
	// 如果不存在,返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 查询全部作者(按id asc)
	List(ctx context.Context) ([]*Author, error)
}
