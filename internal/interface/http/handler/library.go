package handler

import (
	"github.com/gin-gonic/gin"

	applibrary "github.com/xiebiao/quotelib/internal/application/library"
	"github.com/xiebiao/quotelib/internal/interface/http/dto"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/response"
)

// LibraryHandler 作者/出版社/地理目录HTTP处理器
type LibraryHandler struct {
	authorUseCase    *applibrary.AuthorUseCase
	publisherUseCase *applibrary.PublisherUseCase
	geoUseCase       *applibrary.GeoUseCase
}

// NewLibraryHandler 创建目录处理器
func NewLibraryHandler(
	authorUseCase *applibrary.AuthorUseCase,
	publisherUseCase *applibrary.PublisherUseCase,
	geoUseCase *applibrary.GeoUseCase,
) *LibraryHandler {
	return &LibraryHandler{
		authorUseCase:    authorUseCase,
		publisherUseCase: publisherUseCase,
		geoUseCase:       geoUseCase,
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/authors [post]
func (h *LibraryHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.authorUseCase.Create(c.Request.Context(), applibrary.CreateAuthorRequest{
		UserID:      middleware.GetUserID(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthYear:   req.BirthYear,
		DeathYear:   req.DeathYear,
		Nationality: req.Nationality,
		Biography:   req.Biography,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAuthor 按ID查询作者
// @Summary      按ID查询作者
// @Tags         目录
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/authors/{id} [get]
func (h *LibraryHandler) GetAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的作者ID")
		return
	}

	result, err := h.authorUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/authors [get]
func (h *LibraryHandler) ListAuthors(c *gin.Context) {
	result, err := h.authorUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreatePublisher 创建出版社
// @Summary      创建出版社
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePublisherRequest true "出版社信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/publishers [post]
func (h *LibraryHandler) CreatePublisher(c *gin.Context) {
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.publisherUseCase.Create(c.Request.Context(), applibrary.CreatePublisherRequest{
		UserID:    middleware.GetUserID(c),
		Name:      req.Name,
		CityID:    req.CityID,
		StateID:   req.StateID,
		CountryID: req.CountryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListPublishers 出版社列表
// @Summary      出版社列表
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/publishers [get]
func (h *LibraryHandler) ListPublishers(c *gin.Context) {
	result, err := h.publisherUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCountry 创建国家
// @Summary      创建国家
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCountryRequest true "国家信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/countries [post]
func (h *LibraryHandler) CreateCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.geoUseCase.CreateCountry(c.Request.Context(), middleware.GetUserID(c), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCountries 国家列表
// @Summary      国家列表
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/countries [get]
func (h *LibraryHandler) ListCountries(c *gin.Context) {
	result, err := h.geoUseCase.ListCountries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateState 创建州省
// @Summary      创建州省
// @Description  创建州省并写入国家层级关联
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStateRequest true "州省信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/states [post]
func (h *LibraryHandler) CreateState(c *gin.Context) {
	var req dto.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.geoUseCase.CreateState(c.Request.Context(),
		middleware.GetUserID(c), req.Name, req.Abbreviation, req.CountryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListStates 州省列表
// @Summary      州省列表
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/states [get]
func (h *LibraryHandler) ListStates(c *gin.Context) {
	result, err := h.geoUseCase.ListStates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateCity 创建城市
// @Summary      创建城市
// @Description  创建城市并写入国家/州省层级关联
// @Tags         目录
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCityRequest true "城市信息"
// @Success      200 {object} response.Response "创建成功"
// @Router       /api/v1/cities [post]
func (h *LibraryHandler) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.geoUseCase.CreateCity(c.Request.Context(),
		middleware.GetUserID(c), req.Name, req.StateID, req.CountryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCities 城市列表
// @Summary      城市列表
// @Tags         目录
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/cities [get]
func (h *LibraryHandler) ListCities(c *gin.Context) {
	result, err := h.geoUseCase.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
