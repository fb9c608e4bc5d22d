package catalog

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/catalog"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// VocabUseCase 词表用例
// 设计说明:genre/topic/tag/type四个词表共用一套用例,
// Kind由HTTP路由决定(/genres → KindGenre),用例本身不关心种类差异
type VocabUseCase struct {
	repo catalog.Repository
}

// NewVocabUseCase 创建词表用例
func NewVocabUseCase(repo catalog.Repository) *VocabUseCase {
	return &VocabUseCase{repo: repo}
}

// EntryDTO 词表条目DTO
type EntryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Create 创建词表条目
func (uc *VocabUseCase) Create(ctx context.Context, userID uint, kind catalog.Kind, name, description string) (*EntryDTO, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	e := &catalog.Entry{Name: name, Description: description}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, kind, e); err != nil {
		return nil, err
	}

	return toEntryDTO(e), nil
}

// GetByID 按ID查询条目
func (uc *VocabUseCase) GetByID(ctx context.Context, kind catalog.Kind, id uint) (*EntryDTO, error) {
	e, err := uc.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return toEntryDTO(e), nil
}

// GetByName 按名称查询条目
// 前端用它做"输入词条名找id"的直通查询
func (uc *VocabUseCase) GetByName(ctx context.Context, kind catalog.Kind, name string) (*EntryDTO, error) {
	if name == "" {
		return nil, catalog.ErrNameRequired
	}
	e, err := uc.repo.FindByName(ctx, kind, name)
	if err != nil {
		return nil, err
	}
	return toEntryDTO(e), nil
}

// List 查询全部条目
func (uc *VocabUseCase) List(ctx context.Context, kind catalog.Kind) ([]EntryDTO, error) {
	entries, err := uc.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	list := make([]EntryDTO, len(entries))
	for i, e := range entries {
		list[i] = *toEntryDTO(e)
	}
	return list, nil
}

// toEntryDTO 领域实体 → DTO
func toEntryDTO(e *catalog.Entry) *EntryDTO {
	return &EntryDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
	}
}
