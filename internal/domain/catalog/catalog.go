// Package catalog 词表领域：genre/topic/tag/type四个结构完全相同的简单词表
// (name唯一 + description)，用一个Kind枚举共用一套实体与仓储接口，
// 避免四份逐字重复的代码。
package catalog

import (
	"context"

	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// Kind 词表种类
type Kind int

const (
	KindGenre Kind = iota // 流派（挂在书目上）
	KindTopic             // 主题（挂在引文上）
	KindTag               // 标签（挂在引文上）
	KindType              // 类型（挂在引文上）
)

// String 词表名称（用于路由与错误信息）
func (k Kind) String() string {
	switch k {
	case KindGenre:
		return "genre"
	case KindTopic:
		return "topic"
	case KindTag:
		return "tag"
	case KindType:
		return "type"
	}
	return "unknown"
}

// Kinds 全部词表种类
var Kinds = []Kind{KindGenre, KindTopic, KindTag, KindType}

// Entry 词表条目实体
type Entry struct {
	ID          uint
	Name        string // 唯一
	Description string
}

// Validate 校验词表条目
func (e *Entry) Validate() error {
	if e.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// 词表领域错误定义
var (
	// ErrEntryNotFound 词表条目不存在
	ErrEntryNotFound = apperrors.New(apperrors.ErrCodeVocabNotFound, "词表条目不存在")

	// ErrNameRequired 名称必填
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "名称不能为空")

	// ErrNameDuplicate 名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "名称已存在")
)

// Repository 词表仓储接口
// 设计说明：四个词表结构一致，接口以Kind区分目标表；
// byId/byName是供展示层与核心消费的直通读
type Repository interface {
	// Create 创建词表条目(回填自增ID;名称重复返回ErrNameDuplicate)
	Create(ctx context.Context, kind Kind, e *Entry) error

	// FindByID 根据ID查找条目
	// 如果不存在,返回ErrEntryNotFound
	FindByID(ctx context.Context, kind Kind, id uint) (*Entry, error)

	// FindByName 根据名称查找条目
	// 如果不存在,返回ErrEntryNotFound
	FindByName(ctx context.Context, kind Kind, name string) (*Entry, error)

	// List 查询全部条目(按id asc)
	List(ctx context.Context, kind Kind) ([]*Entry, error)
}
