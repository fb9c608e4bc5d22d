package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/quotelib/internal/domain/geo"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// geoRepository 地理仓储实现(MySQL)
// 设计说明:州省/城市创建时同步写入层级辅助查询表
// (country_to_state/country_to_city/state_to_city),
// 调用方负责用TxManager把主行与join行包进同一事务
type geoRepository struct {
	db *gorm.DB
}

// NewGeoRepository 创建地理仓储
func NewGeoRepository(db *gorm.DB) geo.Repository {
	return &geoRepository{db: db}
}

// CreateCountry 创建国家
func (r *geoRepository) CreateCountry(ctx context.Context, c *geo.Country) error {
	model := &CountryModel{Name: c.Name}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return geo.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建国家失败")
	}

	c.ID = model.ID
	return nil
}

// CreateState 创建州省,并写入country_to_state join行
func (r *geoRepository) CreateState(ctx context.Context, s *geo.State) error {
	model := &StateModel{
		Name:         s.Name,
		Abbreviation: optionalString(s.Abbreviation),
		CountryID:    s.CountryID,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return geo.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建州省失败")
	}
	s.ID = model.ID

	join := CountryStateModel{CountryID: s.CountryID, StateID: s.ID}
	if err := db.Create(&join).Error; err != nil {
		return apperrors.Wrap(err, "写入国家州省关联失败")
	}

	return nil
}

// CreateCity 创建城市,并写入country_to_city join行;
// StateID非空时再写入state_to_city join行
func (r *geoRepository) CreateCity(ctx context.Context, c *geo.City) error {
	model := &CityModel{
		Name:      c.Name,
		StateID:   c.StateID,
		CountryID: c.CountryID,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return geo.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建城市失败")
	}
	c.ID = model.ID

	countryJoin := CountryCityModel{CountryID: c.CountryID, CityID: c.ID}
	if err := db.Create(&countryJoin).Error; err != nil {
		return apperrors.Wrap(err, "写入国家城市关联失败")
	}

	if c.StateID != nil {
		stateJoin := StateCityModel{StateID: *c.StateID, CityID: c.ID}
		if err := db.Create(&stateJoin).Error; err != nil {
			return apperrors.Wrap(err, "写入州省城市关联失败")
		}
	}

	return nil
}

// ListCountries 查询全部国家(按id asc)
func (r *geoRepository) ListCountries(ctx context.Context) ([]*geo.Country, error) {
	var models []CountryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询国家列表失败")
	}

	countries := make([]*geo.Country, len(models))
	for i := range models {
		countries[i] = &geo.Country{ID: models[i].ID, Name: models[i].Name}
	}
	return countries, nil
}

// ListStates 查询全部州省(按id asc)
func (r *geoRepository) ListStates(ctx context.Context) ([]*geo.State, error) {
	var models []StateModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询州省列表失败")
	}

	states := make([]*geo.State, len(models))
	for i := range models {
		states[i] = &geo.State{
			ID:           models[i].ID,
			Name:         models[i].Name,
			Abbreviation: derefString(models[i].Abbreviation),
			CountryID:    models[i].CountryID,
		}
	}
	return states, nil
}

// ListCities 查询全部城市(按id asc)
func (r *geoRepository) ListCities(ctx context.Context) ([]*geo.City, error) {
	var models []CityModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询城市列表失败")
	}

	cities := make([]*geo.City, len(models))
	for i := range models {
		cities[i] = &geo.City{
			ID:        models[i].ID,
			Name:      models[i].Name,
			StateID:   models[i].StateID,
			CountryID: models[i].CountryID,
		}
	}
	return cities, nil
}
