package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/quotelib/internal/domain/publisher"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// publisherRepository 出版社仓储实现(MySQL)
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

// Create 创建出版社
func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{
		Name:      p.Name,
		CityID:    p.CityID,
		StateID:   p.StateID,
		CountryID: p.CountryID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return publisher.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建出版社失败")
	}

	p.ID = model.ID
	return nil
}

// FindByID 根据ID查找出版社
func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}

	return toPublisherEntity(&model), nil
}

// List 查询全部出版社(按id asc)
func (r *publisherRepository) List(ctx context.Context) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询出版社列表失败")
	}

	publishers := make([]*publisher.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

// LinkCity 写入publisher_to_city辅助查询行
func (r *publisherRepository) LinkCity(ctx context.Context, publisherID, cityID uint) error {
	row := PublisherCityModel{PublisherID: publisherID, CityID: cityID}
	if err := getDB(ctx, r.db).Create(&row).Error; err != nil {
		return apperrors.Wrap(err, "写入出版社城市关联失败")
	}
	return nil
}

// toPublisherEntity GORM模型 → 领域实体
func toPublisherEntity(model *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:        model.ID,
		Name:      model.Name,
		CityID:    model.CityID,
		StateID:   model.StateID,
		CountryID: model.CountryID,
	}
}
