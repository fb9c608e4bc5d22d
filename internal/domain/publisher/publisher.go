package publisher

import (
	"context"

	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Publisher 出版社实体
// 设计说明：
// 1. 名称唯一
// 2. 城市/州省/国家是单一必填引用（反范式的单地点设计）
// 3. publisher_to_city join表只用于辅助查询，不表达多对多
type Publisher struct {
	ID        uint
	Name      string
	CityID    uint
	StateID   uint
	CountryID uint
}

// Validate 校验出版社核心业务规则
func (p *Publisher) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.CityID == 0 || p.StateID == 0 || p.CountryID == 0 {
		return ErrLocationRequired
	}
	return nil
}

// 出版社领域错误定义
var (
	// ErrPublisherNotFound 出版社不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "出版社不存在")

	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社名称不能为空")

	// ErrLocationRequired 地点必填
	ErrLocationRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "出版社必须关联城市、州省与国家")

	// ErrNameDuplicate 名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "出版社名称已存在")
)

// Repository 出版社仓储接口
type Repository interface {
	// Create 创建出版社(回填自增ID;名称重复返回ErrNameDuplicate)
	Create(ctx context.Context, p *Publisher) error

	// FindByID 根据ID查找出版社
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// List 查询全部出版社(按id asc)
	List(ctx context.Context) ([]*Publisher, error)

	// LinkCity 写入publisher_to_city辅助查询行
	LinkCity(ctx context.Context, publisherID, cityID uint) error
}
