// Package geo 地理层级领域：国家 → 州省 → 城市
// 层级通过实体上的外键表达；country_to_state/state_to_city/country_to_city
// join表是创建时同步写入的辅助查询表。
package geo

import (
	"context"

	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Country 国家实体（name唯一）
type Country struct {
	ID   uint
	Name string
}

// State 州省实体（name唯一，abbreviation可选且唯一，必须属于某国家）
type State struct {
	ID           uint
	Name         string
	Abbreviation string
	CountryID    uint
}

// City 城市实体（name唯一，州省可选、国家必填）
type City struct {
	ID        uint
	Name      string
	StateID   *uint
	CountryID uint
}

// 地理领域错误定义
var (
	// ErrPlaceNotFound 地理条目不存在
	ErrPlaceNotFound = apperrors.New(apperrors.ErrCodePlaceNotFound, "地理条目不存在")

	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "名称不能为空")

	// ErrCountryRequired 国家必填
	ErrCountryRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "必须关联国家")

	// ErrNameDuplicate 名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "名称已存在")
)

// Repository 地理仓储接口
// 设计说明：层级的join辅助表(country_to_state等)由Create*同事务写入，
// 这是除引文外仅有的会产生join行的写路径
type Repository interface {
	// CreateCountry 创建国家(回填自增ID)
	CreateCountry(ctx context.Context, c *Country) error

	// CreateState 创建州省，并写入country_to_state join行
	CreateState(ctx context.Context, s *State) error

	// CreateCity 创建城市，并写入country_to_city join行；
	// StateID非空时再写入state_to_city join行
	CreateCity(ctx context.Context, c *City) error

	// ListCountries 查询全部国家(按id asc)
	ListCountries(ctx context.Context) ([]*Country, error)

	// ListStates 查询全部州省(按id asc)
	ListStates(ctx context.Context) ([]*State, error)

	// ListCities 查询全部城市(按id asc)
	ListCities(ctx context.Context) ([]*City, error)
}
