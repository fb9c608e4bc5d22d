package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/quotelib/internal/domain/quote"
	apperrors "github.com/xiebiao/quotelib/pkg/errors"
)

// quoteRepository 引文仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/quote/repository.go定义的接口
// 2. 四个关联族共用一套join表读写逻辑,以familySpec区分目标表
// 3. 所有读写都经过getDB(ctx),自动参与TxManager开启的事务
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository 创建引文仓储
func NewQuoteRepository(db *gorm.DB) quote.Repository {
	return &quoteRepository{db: db}
}

// Create 创建引文行
func (r *quoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	// 1. 领域实体 → GORM模型
	model := &QuoteModel{
		UserID:      q.UserID,
		Text:        q.Text,
		BookID:      q.BookID,
		Context:     q.Context,
		PageNumber:  q.PageNumber,
		QuotedBy:    q.QuotedBy,
		IsImportant: q.IsImportant,
		IsPrivate:   q.IsPrivate,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建引文失败")
	}

	// 3. 回填自增ID
	// 教学要点:后续join行都以这个ID为外键,ID无效必须立刻失败,
	// 否则同事务的关联写入会挂到不存在的引文上
	if model.ID == 0 {
		return apperrors.ErrInsertFailed
	}
	q.ID = model.ID
	q.CreatedAt = model.CreatedAt
	q.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找引文行(不含关联)
func (r *quoteRepository) FindByID(ctx context.Context, id uint) (*quote.Quote, error) {
	var model QuoteModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quote.ErrQuoteNotFound
		}
		return nil, apperrors.Wrap(err, "查询引文失败")
	}

	return toQuoteEntity(&model), nil
}

// UpdateScalars 局部更新标量字段(PATCH语义)
// 教学要点:只把非nil的字段放进updates map,GORM的Updates
// 只生成这些列的SET子句,未提及的字段保持原值
func (r *quoteRepository) UpdateScalars(ctx context.Context, id uint, changes quote.ScalarChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Text != nil {
		updates["text"] = *changes.Text
	}
	if changes.BookID != nil {
		updates["book_id"] = *changes.BookID
	}
	if changes.Context != nil {
		updates["context"] = *changes.Context
	}
	if changes.PageNumber != nil {
		updates["page_number"] = *changes.PageNumber
	}
	if changes.QuotedBy != nil {
		updates["quoted_by"] = *changes.QuotedBy
	}
	if changes.IsImportant != nil {
		updates["is_important"] = *changes.IsImportant
	}
	if changes.IsPrivate != nil {
		updates["is_private"] = *changes.IsPrivate
	}

	err := getDB(ctx, r.db).Model(&QuoteModel{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(err, "更新引文失败")
	}

	// 注意:不以RowsAffected判断存在性——值未变化时MySQL也返回0行,
	// 存在性校验由调用方先FindByID完成
	return nil
}

// Delete 删除引文行本身(硬删除,不含关联)
func (r *quoteRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&QuoteModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除引文失败")
	}

	if result.RowsAffected == 0 {
		return quote.ErrQuoteNotFound
	}

	return nil
}

// quoteBookRow 引文与书目的联查扫描结构
type quoteBookRow struct {
	QuoteModel
	BookTitle string
	Citation  string
}

// ListWithBook 全量联查引文与书目,按插入顺序(id asc)
// 教学要点:INNER JOIN——书目是必填外键,联不上的引文行
// 只可能来自约定外的手工改库,不进入展示
func (r *quoteRepository) ListWithBook(ctx context.Context) ([]quote.WithBook, error) {
	var rows []quoteBookRow
	err := getDB(ctx, r.db).Table("quotes").
		Select("quotes.*, books.title AS book_title, IFNULL(books.citation, '') AS citation").
		Joins("INNER JOIN books ON books.id = quotes.book_id").
		Order("quotes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询引文列表失败")
	}

	return toWithBooks(rows), nil
}

// FindWithBookByID 按ID联查,返回0或1个元素的切片(不存在不是错误)
func (r *quoteRepository) FindWithBookByID(ctx context.Context, id uint) ([]quote.WithBook, error) {
	var rows []quoteBookRow
	err := getDB(ctx, r.db).Table("quotes").
		Select("quotes.*, books.title AS book_title, IFNULL(books.citation, '') AS citation").
		Joins("INNER JOIN books ON books.id = quotes.book_id").
		Where("quotes.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询引文失败")
	}

	return toWithBooks(rows), nil
}

// familySpec 关联族 → join表与id列
// 四个关联族结构一致,只有目标表不同
func familySpec(f quote.Family) (table, column string, err error) {
	switch f {
	case quote.FamilyAuthor:
		return "quote_to_author", "author_id", nil
	case quote.FamilyTopic:
		return "quote_to_topic", "topic_id", nil
	case quote.FamilyTag:
		return "quote_to_tag", "tag_id", nil
	case quote.FamilyType:
		return "quote_to_type", "type_id", nil
	}
	return "", "", apperrors.New(apperrors.ErrCodeInvalidParams, fmt.Sprintf("未知的关联族: %d", f))
}

// AddAssociations 为引文追加某一关联族的join行
func (r *quoteRepository) AddAssociations(ctx context.Context, quoteID uint, family quote.Family, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	table, column, err := familySpec(family)
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, map[string]interface{}{
			"quote_id": quoteID,
			column:     id,
		})
	}

	if err := getDB(ctx, r.db).Table(table).Create(rows).Error; err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("写入%s关联失败", family))
	}

	return nil
}

// ReplaceAssociations 将某一关联族整体替换为给定集合
// 教学要点:集合调和——只删被移除的、只插新增的,而不是全删重插;
// 重放同一集合得到空diff,天然幂等
func (r *quoteRepository) ReplaceAssociations(ctx context.Context, quoteID uint, family quote.Family, ids []uint) error {
	table, column, err := familySpec(family)
	if err != nil {
		return err
	}

	current, err := r.ListAssociationIDs(ctx, quoteID, family)
	if err != nil {
		return err
	}

	toAdd, toRemove := quote.DiffIDSets(current, ids)

	if len(toRemove) > 0 {
		// join表模型是纯复合主键,用Exec直删比构造模型切片更直接
		err := getDB(ctx, r.db).
			Exec("DELETE FROM "+table+" WHERE quote_id = ? AND "+column+" IN ?", quoteID, toRemove).Error
		if err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("删除%s关联失败", family))
		}
	}

	return r.AddAssociations(ctx, quoteID, family, toAdd)
}

// ListAssociationIDs 读取某一关联族当前的id列表
func (r *quoteRepository) ListAssociationIDs(ctx context.Context, quoteID uint, family quote.Family) ([]uint, error) {
	table, column, err := familySpec(family)
	if err != nil {
		return nil, err
	}

	var ids []uint
	err = getDB(ctx, r.db).Table(table).
		Where("quote_id = ?", quoteID).
		Order(column + " ASC").
		Pluck(column, &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, fmt.Sprintf("查询%s关联失败", family))
	}

	return ids, nil
}

// RemoveAllAssociations 删除引文在全部四个关联族中的join行(删除级联)
func (r *quoteRepository) RemoveAllAssociations(ctx context.Context, quoteID uint) error {
	for _, family := range quote.Families {
		table, _, err := familySpec(family)
		if err != nil {
			return err
		}
		err = getDB(ctx, r.db).
			Exec("DELETE FROM "+table+" WHERE quote_id = ?", quoteID).Error
		if err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("清理%s关联失败", family))
		}
	}
	return nil
}

// LoadAssociations 装载聚合读所需的关联数据
// 设计说明:
// 1. 固定9次查询(4张引文join表+1张书目join表+4张词表),
//    与引文数量无关,避免每条引文一轮round trip的N+1问题
// 2. quoteIDs/bookIDs为空表示全量装载(列表读路径)
// 3. 词表整表装载用于名称解析,个人藏书量级下远小于引文行数
func (r *quoteRepository) LoadAssociations(ctx context.Context, quoteIDs []uint, bookIDs []uint) (*quote.Associations, error) {
	db := getDB(ctx, r.db)
	assoc := quote.NewAssociations()

	// 1. 四个引文关联族
	type quotePair struct {
		QuoteID uint
		OtherID uint
	}
	quoteFamilies := []struct {
		table  string
		column string
		target map[uint][]uint
	}{
		{"quote_to_author", "author_id", assoc.QuoteAuthors},
		{"quote_to_topic", "topic_id", assoc.QuoteTopics},
		{"quote_to_tag", "tag_id", assoc.QuoteTags},
		{"quote_to_type", "type_id", assoc.QuoteTypes},
	}
	for _, fam := range quoteFamilies {
		var pairs []quotePair
		query := db.Table(fam.table).
			Select("quote_id, " + fam.column + " AS other_id").
			Order("quote_id ASC, " + fam.column + " ASC")
		if len(quoteIDs) > 0 {
			query = query.Where("quote_id IN ?", quoteIDs)
		}
		if err := query.Scan(&pairs).Error; err != nil {
			return nil, apperrors.Wrap(err, "装载引文关联失败")
		}
		for _, p := range pairs {
			fam.target[p.QuoteID] = append(fam.target[p.QuoteID], p.OtherID)
		}
	}

	// 2. 书目流派
	var genrePairs []struct {
		BookID  uint
		GenreID uint
	}
	genreQuery := db.Table("book_to_genre").
		Select("book_id, genre_id").
		Order("book_id ASC, genre_id ASC")
	if len(bookIDs) > 0 {
		genreQuery = genreQuery.Where("book_id IN ?", bookIDs)
	}
	if err := genreQuery.Scan(&genrePairs).Error; err != nil {
		return nil, apperrors.Wrap(err, "装载书目流派失败")
	}
	for _, p := range genrePairs {
		assoc.BookGenres[p.BookID] = append(assoc.BookGenres[p.BookID], p.GenreID)
	}

	// 3. 作者名称解析表("First Last")
	var authors []AuthorModel
	if err := db.Find(&authors).Error; err != nil {
		return nil, apperrors.Wrap(err, "装载作者名称失败")
	}
	for _, a := range authors {
		assoc.AuthorNames[a.ID] = a.FirstName + " " + a.LastName
	}

	// 4. 词表名称解析表
	vocabTables := []struct {
		table  string
		target map[uint]string
	}{
		{"topics", assoc.TopicNames},
		{"tags", assoc.TagNames},
		{"types", assoc.TypeNames},
		{"genres", assoc.GenreNames},
	}
	for _, vt := range vocabTables {
		var entries []struct {
			ID   uint
			Name string
		}
		if err := db.Table(vt.table).Select("id, name").Scan(&entries).Error; err != nil {
			return nil, apperrors.Wrap(err, "装载词表名称失败")
		}
		for _, e := range entries {
			vt.target[e.ID] = e.Name
		}
	}

	return assoc, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toQuoteEntity GORM模型 → 领域实体
func toQuoteEntity(model *QuoteModel) *quote.Quote {
	return &quote.Quote{
		ID:          model.ID,
		UserID:      model.UserID,
		Text:        model.Text,
		BookID:      model.BookID,
		Context:     model.Context,
		PageNumber:  model.PageNumber,
		QuotedBy:    model.QuotedBy,
		IsImportant: model.IsImportant,
		IsPrivate:   model.IsPrivate,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toWithBooks 联查扫描行 → 领域联查行
func toWithBooks(rows []quoteBookRow) []quote.WithBook {
	result := make([]quote.WithBook, 0, len(rows))
	for i := range rows {
		result = append(result, quote.WithBook{
			Quote:     *toQuoteEntity(&rows[i].QuoteModel),
			BookTitle: rows[i].BookTitle,
			Citation:  rows[i].Citation,
		})
	}
	return result
}
