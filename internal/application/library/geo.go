package library

import (
	"context"

	"github.com/xiebiao/quotelib/internal/domain/geo"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// GeoUseCase 地理层级用例
// 国家/州省/城市的创建与列表;州省和城市的创建
// 会同事务写入层级辅助查询表(见geoRepository)
type GeoUseCase struct {
	repo      geo.Repository
	txManager Transactor
}

// NewGeoUseCase 创建地理用例
func NewGeoUseCase(repo geo.Repository, txManager Transactor) *GeoUseCase {
	return &GeoUseCase{repo: repo, txManager: txManager}
}

// CountryDTO 国家DTO
type CountryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// StateDTO 州省DTO
type StateDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	CountryID    uint   `json:"country_id"`
}

// CityDTO 城市DTO
type CityDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	StateID   *uint  `json:"state_id,omitempty"`
	CountryID uint   `json:"country_id"`
}

// CreateCountry 创建国家
func (uc *GeoUseCase) CreateCountry(ctx context.Context, userID uint, name string) (*CountryDTO, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if name == "" {
		return nil, geo.ErrNameRequired
	}

	c := &geo.Country{Name: name}
	if err := uc.repo.CreateCountry(ctx, c); err != nil {
		return nil, err
	}

	return &CountryDTO{ID: c.ID, Name: c.Name}, nil
}

// CreateState 创建州省(含country_to_state join行,同事务)
func (uc *GeoUseCase) CreateState(ctx context.Context, userID uint, name, abbreviation string, countryID uint) (*StateDTO, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if name == "" {
		return nil, geo.ErrNameRequired
	}
	if countryID == 0 {
		return nil, geo.ErrCountryRequired
	}

	s := &geo.State{Name: name, Abbreviation: abbreviation, CountryID: countryID}
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.repo.CreateState(txCtx, s)
	})
	if err != nil {
		return nil, err
	}

	return &StateDTO{
		ID:           s.ID,
		Name:         s.Name,
		Abbreviation: s.Abbreviation,
		CountryID:    s.CountryID,
	}, nil
}

// CreateCity 创建城市(含country_to_city/state_to_city join行,同事务)
func (uc *GeoUseCase) CreateCity(ctx context.Context, userID uint, name string, stateID *uint, countryID uint) (*CityDTO, error) {
	if userID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if name == "" {
		return nil, geo.ErrNameRequired
	}
	if countryID == 0 {
		return nil, geo.ErrCountryRequired
	}

	c := &geo.City{Name: name, StateID: stateID, CountryID: countryID}
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.repo.CreateCity(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	return &CityDTO{ID: c.ID, Name: c.Name, StateID: c.StateID, CountryID: c.CountryID}, nil
}

// ListCountries 查询全部国家
func (uc *GeoUseCase) ListCountries(ctx context.Context) ([]CountryDTO, error) {
	countries, err := uc.repo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]CountryDTO, len(countries))
	for i, c := range countries {
		list[i] = CountryDTO{ID: c.ID, Name: c.Name}
	}
	return list, nil
}

// ListStates 查询全部州省
func (uc *GeoUseCase) ListStates(ctx context.Context) ([]StateDTO, error) {
	states, err := uc.repo.ListStates(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]StateDTO, len(states))
	for i, s := range states {
		list[i] = StateDTO{
			ID:           s.ID,
			Name:         s.Name,
			Abbreviation: s.Abbreviation,
			CountryID:    s.CountryID,
		}
	}
	return list, nil
}

// ListCities 查询全部城市
func (uc *GeoUseCase) ListCities(ctx context.Context) ([]CityDTO, error) {
	cities, err := uc.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]CityDTO, len(cities))
	for i, c := range cities {
		list[i] = CityDTO{ID: c.ID, Name: c.Name, StateID: c.StateID, CountryID: c.CountryID}
	}
	return list, nil
}
