package dto

// CreateAuthorRequest HTTP层创建作者请求
type CreateAuthorRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	BirthYear   *int   `json:"birth_year"`
	DeathYear   *int   `json:"death_year"`
	Nationality string `json:"nationality" binding:"max=100"`
	Biography   string `json:"biography"`
}

// CreatePublisherRequest HTTP层创建出版社请求
type CreatePublisherRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	CityID    uint   `json:"city_id" binding:"required"`
	StateID   uint   `json:"state_id" binding:"required"`
	CountryID uint   `json:"country_id" binding:"required"`
}

// CreateCountryRequest HTTP层创建国家请求
type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateStateRequest HTTP层创建州省请求
type CreateStateRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Abbreviation string `json:"abbreviation" binding:"max=10"`
	CountryID    uint   `json:"country_id" binding:"required"`
}

// CreateCityRequest HTTP层创建城市请求
type CreateCityRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StateID   *uint  `json:"state_id"`
	CountryID uint   `json:"country_id" binding:"required"`
}
