package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/quotelib/internal/domain/catalog"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// vocabRepository 词表仓储实现(MySQL)
// 设计说明:四个词表(genre/topic/tag/type)结构完全相同,
// 用Kind → 表名的映射共用一套实现,扫描结构与模型字段一致
type vocabRepository struct {
	db *gorm.DB
}

// NewVocabRepository 创建词表仓储
func NewVocabRepository(db *gorm.DB) catalog.Repository {
	return &vocabRepository{db: db}
}

// kindTable 词表种类 → 表名
func kindTable(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindGenre:
		return "genres", nil
	case catalog.KindTopic:
		return "topics", nil
	case catalog.KindTag:
		return "tags", nil
	case catalog.KindType:
		return "types", nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidParams, fmt.Sprintf("未知的词表种类: %d", kind))
}

// vocabRow 词表通用扫描结构(四张表列结构一致)
type vocabRow struct {
	ID          uint
	Name        string
	Description string
}

// Create 创建词表条目
func (r *vocabRepository) Create(ctx context.Context, kind catalog.Kind, e *catalog.Entry) error {
	table, err := kindTable(kind)
	if err != nil {
		return err
	}

	row := map[string]interface{}{
		"name":        e.Name,
		"description": e.Description,
	}

	result := getDB(ctx, r.db).Table(table).Create(row)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return catalog.ErrNameDuplicate
		}
		return apperrors.Wrap(result.Error, fmt.Sprintf("创建%s失败", kind))
	}

	// map插入不回填自增ID,用名称回查一次(name有唯一索引)
	created, err := r.FindByName(ctx, kind, e.Name)
	if err != nil {
		return err
	}
	e.ID = created.ID

	return nil
}

// FindByID 根据ID查找条目
func (r *vocabRepository) FindByID(ctx context.Context, kind catalog.Kind, id uint) (*catalog.Entry, error) {
	table, err := kindTable(kind)
	if err != nil {
		return nil, err
	}

	var row vocabRow
	err = getDB(ctx, r.db).Table(table).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, fmt.Sprintf("查询%s失败", kind))
	}

	return toEntryEntity(&row), nil
}

// FindByName 根据名称查找条目
func (r *vocabRepository) FindByName(ctx context.Context, kind catalog.Kind, name string) (*catalog.Entry, error) {
	table, err := kindTable(kind)
	if err != nil {
		return nil, err
	}

	var row vocabRow
	err = getDB(ctx, r.db).Table(table).Where("name = ?", name).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, fmt.Sprintf("查询%s失败", kind))
	}

	return toEntryEntity(&row), nil
}

// List 查询全部条目(按id asc)
func (r *vocabRepository) List(ctx context.Context, kind catalog.Kind) ([]*catalog.Entry, error) {
	table, err := kindTable(kind)
	if err != nil {
		return nil, err
	}

	var rows []vocabRow
	err = getDB(ctx, r.db).Table(table).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, fmt.Sprintf("查询%s列表失败", kind))
	}

	entries := make([]*catalog.Entry, len(rows))
	for i := range rows {
		entries[i] = toEntryEntity(&rows[i])
	}
	return entries, nil
}

// toEntryEntity 扫描行 → 领域实体
func toEntryEntity(row *vocabRow) *catalog.Entry {
	return &catalog.Entry{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
}
