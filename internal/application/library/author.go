// Package library 聚合作者/出版社/地理三个支撑性目录的用例
// 它们都是简单的创建+查询,单独一个包一个用例会碎得没必要
package library

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/author"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// AuthorUseCase 作者用例
type AuthorUseCase struct {
	repo author.Repository
}

// NewAuthorUseCase 创建作者用例
func NewAuthorUseCase(repo author.Repository) *AuthorUseCase {
	return &AuthorUseCase{repo: repo}
}

// AuthorDTO 作者DTO
type AuthorDTO struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	BirthYear   *int   `json:"birth_year,omitempty"`
	DeathYear   *int   `json:"death_year,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Biography   string `json:"biography,omitempty"`
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	UserID      uint
	FirstName   string
	LastName    string
	BirthYear   *int
	DeathYear   *int
	Nationality string
	Biography   string
}

// Create 创建作者
func (uc *AuthorUseCase) Create(ctx context.Context, req CreateAuthorRequest) (*AuthorDTO, error) {
	if req.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	a := &author.Author{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthYear:   req.BirthYear,
		DeathYear:   req.DeathYear,
		Nationality: req.Nationality,
		Biography:   req.Biography,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return toAuthorDTO(a), nil
}

// GetByID 按ID查询作者
func (uc *AuthorUseCase) GetByID(ctx context.Context, id uint) (*AuthorDTO, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorDTO(a), nil
}

// List 查询全部作者
func (uc *AuthorUseCase) List(ctx context.Context) ([]AuthorDTO, error) {
	authors, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]AuthorDTO, len(authors))
	for i, a := range authors {
		list[i] = *toAuthorDTO(a)
	}
	return list, nil
}

// toAuthorDTO 领域实体 → DTO
func toAuthorDTO(a *author.Author) *AuthorDTO {
	return &AuthorDTO{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DisplayName: a.DisplayName(),
		BirthYear:   a.BirthYear,
		DeathYear:   a.DeathYear,
		Nationality: a.Nationality,
		Biography:   a.Biography,
	}
}
