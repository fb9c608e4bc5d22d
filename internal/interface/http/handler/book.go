package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/quotelib/internal/application/book"
	"github.com/xiebiao/quotelib/internal/interface/http/dto"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/response"
)

// BookHandler 书目HTTP处理器
type BookHandler struct {
	createUseCase *appbook.CreateBookUseCase
	listUseCase   *appbook.ListBooksUseCase
}

// NewBookHandler 创建书目处理器
func NewBookHandler(
	createUseCase *appbook.CreateBookUseCase,
	listUseCase *appbook.ListBooksUseCase,
) *BookHandler {
	return &BookHandler{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 创建书目
// @Summary      创建书目
// @Description  创建书目并建立作者/流派/出版社关联
// @Tags         书目
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "书目信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      400 {object} response.Response "参数错误或书名/ISBN重复"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "出版社不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		UserID:          middleware.GetUserID(c),
		Title:           req.Title,
		PublicationYear: req.PublicationYear,
		ISBN:            req.ISBN,
		PublisherID:     req.PublisherID,
		Summary:         req.Summary,
		Citation:        req.Citation,
		SourceLink:      req.SourceLink,
		Rating:          req.Rating,
		AuthorIDs:       req.AuthorIDs,
		GenreIDs:        req.GenreIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 书目列表
// @Summary      书目列表
// @Description  分页查询书目，支持关键词搜索与排序
// @Tags         书目
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        page_size query int false "每页数量(默认20，最大100)"
// @Param        keyword query string false "搜索关键词(书名、引用格式)"
// @Param        sort_by query string false "排序(title_asc/rating_desc/id_asc)"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     query.Page,
		PageSize: query.PageSize,
		Keyword:  query.Keyword,
		SortBy:   query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
