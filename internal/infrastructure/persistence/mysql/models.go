package mysql

import (
	"time"

	"gorm.io/gorm"
)

// 本文件集中定义全部GORM模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain层的实体不依赖GORM,Repository负责两者之间的转换
// 3. join表模型用复合唯一索引防止重复join行,这是集合调和幂等性的数据库兜底
// 4. 除用户外均为硬删除:引文删除要求join行与主行一起物理消失

// UserModel GORM用户模型
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Name      string         `gorm:"size:50;not null;comment:显示名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// QuoteModel GORM引文模型
// 设计说明:
// 1. Text上限3000字符,与domain层MaxTextLength一致
// 2. QuotedBy是可空的作者引用,允许悬空(无外键约束,展示层降级处理)
// 3. 页码用字符串存储,支持"12-13"、"xiv"等形式
type QuoteModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null;comment:录入者用户ID"`
	Text        string    `gorm:"size:3000;not null;comment:引文正文"`
	BookID      uint      `gorm:"index;not null;comment:所属书目ID"`
	Context     string    `gorm:"type:text;comment:上下文说明"`
	PageNumber  string    `gorm:"size:32;comment:页码"`
	QuotedBy    *uint     `gorm:"index;comment:被引作者ID（可空）"`
	IsImportant bool      `gorm:"default:false;comment:重点标记"`
	IsPrivate   bool      `gorm:"default:false;comment:私密标记"`
	CreatedAt   time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (QuoteModel) TableName() string {
	return "quotes"
}

// BookModel GORM书目模型
// 设计说明:
// 1. 书名唯一;ISBN与引用格式可选但填了也唯一(可空唯一索引,NULL不冲突)
// 2. 出版社是单一必填引用,作者与流派走join表
type BookModel struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"uniqueIndex;size:200;not null;comment:书名"`
	PublicationYear string    `gorm:"size:20;comment:出版年份"`
	ISBN            *string   `gorm:"uniqueIndex;size:20;comment:ISBN号"`
	PublisherID     uint      `gorm:"index;not null;comment:出版社ID"`
	Summary         string    `gorm:"type:text;comment:摘要"`
	Citation        *string   `gorm:"uniqueIndex;size:500;comment:引用格式"`
	SourceLink      string    `gorm:"size:500;comment:来源链接"`
	Rating          *int      `gorm:"type:tinyint;comment:评分(0-10)"`
	CreatedAt       time.Time `gorm:"comment:创建时间"`
	UpdatedAt       time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
// 同名作者允许共存,不加唯一索引
type AuthorModel struct {
	ID          uint      `gorm:"primaryKey"`
	FirstName   string    `gorm:"size:100;not null;comment:名"`
	LastName    string    `gorm:"index;size:100;not null;comment:姓"`
	BirthYear   *int      `gorm:"comment:生年"`
	DeathYear   *int      `gorm:"comment:卒年"`
	Nationality string    `gorm:"size:100;comment:国籍"`
	Biography   string    `gorm:"type:text;comment:简介"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:200;not null;comment:名称"`
	CityID    uint      `gorm:"not null;comment:城市ID"`
	StateID   uint      `gorm:"not null;comment:州省ID"`
	CountryID uint      `gorm:"not null;comment:国家ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// 四个词表模型:结构完全一致,name唯一+description
// 分成四个类型而不是一张带kind列的表,保持与各join表的外键指向清晰

// GenreModel GORM流派模型
type GenreModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// TopicModel GORM主题模型
type TopicModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (TopicModel) TableName() string {
	return "topics"
}

// TagModel GORM标签模型
type TagModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (TagModel) TableName() string {
	return "tags"
}

// TypeModel GORM类型模型
type TypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (TypeModel) TableName() string {
	return "types"
}

// CountryModel GORM国家模型
type CountryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
}

// TableName 指定表名
func (CountryModel) TableName() string {
	return "countries"
}

// StateModel GORM州省模型
type StateModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	Abbreviation *string `gorm:"uniqueIndex;size:10;comment:缩写"`
	CountryID    uint    `gorm:"index;not null;comment:国家ID"`
}

// TableName 指定表名
func (StateModel) TableName() string {
	return "states"
}

// CityModel GORM城市模型
type CityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null;comment:名称"`
	StateID   *uint  `gorm:"index;comment:州省ID（可空）"`
	CountryID uint   `gorm:"index;not null;comment:国家ID"`
}

// TableName 指定表名
func (CityModel) TableName() string {
	return "cities"
}

// =========================================
// join表模型
// =========================================

// QuoteAuthorModel 引文-作者join表
type QuoteAuthorModel struct {
	QuoteID  uint `gorm:"primaryKey;autoIncrement:false;comment:引文ID"`
	AuthorID uint `gorm:"primaryKey;autoIncrement:false;index;comment:作者ID"`
}

// TableName 指定表名
func (QuoteAuthorModel) TableName() string {
	return "quote_to_author"
}

// QuoteTopicModel 引文-主题join表
type QuoteTopicModel struct {
	QuoteID uint `gorm:"primaryKey;autoIncrement:false;comment:引文ID"`
	TopicID uint `gorm:"primaryKey;autoIncrement:false;index;comment:主题ID"`
}

// TableName 指定表名
func (QuoteTopicModel) TableName() string {
	return "quote_to_topic"
}

// QuoteTagModel 引文-标签join表
type QuoteTagModel struct {
	QuoteID uint `gorm:"primaryKey;autoIncrement:false;comment:引文ID"`
	TagID   uint `gorm:"primaryKey;autoIncrement:false;index;comment:标签ID"`
}

// TableName 指定表名
func (QuoteTagModel) TableName() string {
	return "quote_to_tag"
}

// QuoteTypeModel 引文-类型join表
type QuoteTypeModel struct {
	QuoteID uint `gorm:"primaryKey;autoIncrement:false;comment:引文ID"`
	TypeID  uint `gorm:"primaryKey;autoIncrement:false;index;comment:类型ID"`
}

// TableName 指定表名
func (QuoteTypeModel) TableName() string {
	return "quote_to_type"
}

// BookAuthorModel 书目-作者join表
type BookAuthorModel struct {
	BookID   uint `gorm:"primaryKey;autoIncrement:false;comment:书目ID"`
	AuthorID uint `gorm:"primaryKey;autoIncrement:false;index;comment:作者ID"`
}

// TableName 指定表名
func (BookAuthorModel) TableName() string {
	return "book_to_author"
}

// BookGenreModel 书目-流派join表
type BookGenreModel struct {
	BookID  uint `gorm:"primaryKey;autoIncrement:false;comment:书目ID"`
	GenreID uint `gorm:"primaryKey;autoIncrement:false;index;comment:流派ID"`
}

// TableName 指定表名
func (BookGenreModel) TableName() string {
	return "book_to_genre"
}

// PublisherBookModel 出版社-书目辅助查询表
type PublisherBookModel struct {
	PublisherID uint `gorm:"primaryKey;autoIncrement:false;comment:出版社ID"`
	BookID      uint `gorm:"primaryKey;autoIncrement:false;index;comment:书目ID"`
}

// TableName 指定表名
func (PublisherBookModel) TableName() string {
	return "publisher_to_book"
}

// PublisherCityModel 出版社-城市辅助查询表
type PublisherCityModel struct {
	PublisherID uint `gorm:"primaryKey;autoIncrement:false;comment:出版社ID"`
	CityID      uint `gorm:"primaryKey;autoIncrement:false;index;comment:城市ID"`
}

// TableName 指定表名
func (PublisherCityModel) TableName() string {
	return "publisher_to_city"
}

// CountryStateModel 国家-州省辅助查询表
type CountryStateModel struct {
	CountryID uint `gorm:"primaryKey;autoIncrement:false;comment:国家ID"`
	StateID   uint `gorm:"primaryKey;autoIncrement:false;index;comment:州省ID"`
}

// TableName 指定表名
func (CountryStateModel) TableName() string {
	return "country_to_state"
}

// CountryCityModel 国家-城市辅助查询表
type CountryCityModel struct {
	CountryID uint `gorm:"primaryKey;autoIncrement:false;comment:国家ID"`
	CityID    uint `gorm:"primaryKey;autoIncrement:false;index;comment:城市ID"`
}

// TableName 指定表名
func (CountryCityModel) TableName() string {
	return "country_to_city"
}

// StateCityModel 州省-城市辅助查询表
type StateCityModel struct {
	StateID uint `gorm:"primaryKey;autoIncrement:false;comment:州省ID"`
	CityID  uint `gorm:"primaryKey;autoIncrement:false;index;comment:城市ID"`
}

// TableName 指定表名
func (StateCityModel) TableName() string {
	return "state_to_city"
}
