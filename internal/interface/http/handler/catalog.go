package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/quotelib/internal/application/catalog"
	"github.com/xiebiao/quotelib/internal/domain/catalog"
	"github.com/xiebiao/quotelib/internal/interface/http/dto"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/response"
)

// VocabHandler 词表HTTP处理器
// 设计说明:genre/topic/tag/type四组路由共用这一个处理器,
// 注册路由时用ForKind绑定各自的Kind(见cmd/api的registerRoutes)
type VocabHandler struct {
	useCase *appcatalog.VocabUseCase
}

// NewVocabHandler 创建词表处理器
func NewVocabHandler(useCase *appcatalog.VocabUseCase) *VocabHandler {
	return &VocabHandler{useCase: useCase}
}

// kindHandlers 绑定了具体词表种类的一组gin处理函数
type kindHandlers struct {
	Create    gin.HandlerFunc
	List      gin.HandlerFunc
	GetByID   gin.HandlerFunc
	GetByName gin.HandlerFunc
}

// ForKind 生成绑定到指定词表种类的处理函数组
//
// 路由契约(以topic为例):
//
//	POST /api/v1/topics          创建(需登录)
//	GET  /api/v1/topics          列表
//	GET  /api/v1/topics/:id      按ID查询
//	GET  /api/v1/topics/name/:name 按名称查询
func (h *VocabHandler) ForKind(kind catalog.Kind) kindHandlers {
	return kindHandlers{
		Create: func(c *gin.Context) {
			var req dto.CreateVocabRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
				return
			}

			result, err := h.useCase.Create(c.Request.Context(),
				middleware.GetUserID(c), kind, req.Name, req.Description)
			if err != nil {
				response.Error(c, err)
				return
			}
			response.Success(c, result)
		},

		List: func(c *gin.Context) {
			result, err := h.useCase.List(c.Request.Context(), kind)
			if err != nil {
				response.Error(c, err)
				return
			}
			response.Success(c, result)
		},

		GetByID: func(c *gin.Context) {
			id, err := parseIDParam(c)
			if err != nil {
				response.ErrorWithCode(c, 40900, "无效的ID")
				return
			}

			result, err := h.useCase.GetByID(c.Request.Context(), kind, id)
			if err != nil {
				response.Error(c, err)
				return
			}
			response.Success(c, result)
		},

		GetByName: func(c *gin.Context) {
			result, err := h.useCase.GetByName(c.Request.Context(), kind, c.Param("name"))
			if err != nil {
				response.Error(c, err)
				return
			}
			response.Success(c, result)
		},
	}
}
