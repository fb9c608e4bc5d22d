package library

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/publisher"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Transactor 事务边界(由mysql.TxManager实现)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PublisherUseCase 出版社用例
// 出版社行与publisher_to_city辅助查询行同事务写入
type PublisherUseCase struct {
	repo      publisher.Repository
	txManager Transactor
}

// NewPublisherUseCase 创建出版社用例
func NewPublisherUseCase(repo publisher.Repository, txManager Transactor) *PublisherUseCase {
	return &PublisherUseCase{repo: repo, txManager: txManager}
}

// PublisherDTO 出版社DTO
type PublisherDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CityID    uint   `json:"city_id"`
	StateID   uint   `json:"state_id"`
	CountryID uint   `json:"country_id"`
}

// CreatePublisherRequest 创建出版社请求DTO
type CreatePublisherRequest struct {
	UserID    uint
	Name      string
	CityID    uint
	StateID   uint
	CountryID uint
}

// Create 创建出版社
func (uc *PublisherUseCase) Create(ctx context.Context, req CreatePublisherRequest) (*PublisherDTO, error) {
	if req.UserID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	p := &publisher.Publisher{
		Name:      req.Name,
		CityID:    req.CityID,
		StateID:   req.StateID,
		CountryID: req.CountryID,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Create(txCtx, p); err != nil {
			return err
		}
		return uc.repo.LinkCity(txCtx, p.ID, p.CityID)
	})
	if err != nil {
		return nil, err
	}

	return toPublisherDTO(p), nil
}

// GetByID 按ID查询出版社
func (uc *PublisherUseCase) GetByID(ctx context.Context, id uint) (*PublisherDTO, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPublisherDTO(p), nil
}

// List 查询全部出版社
func (uc *PublisherUseCase) List(ctx context.Context) ([]PublisherDTO, error) {
	publishers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]PublisherDTO, len(publishers))
	for i, p := range publishers {
		list[i] = *toPublisherDTO(p)
	}
	return list, nil
}

// toPublisherDTO 领域实体 → DTO
func toPublisherDTO(p *publisher.Publisher) *PublisherDTO {
	return &PublisherDTO{
		ID:        p.ID,
		Name:      p.Name,
		CityID:    p.CityID,
		StateID:   p.StateID,
		CountryID: p.CountryID,
	}
}
