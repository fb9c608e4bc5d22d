package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appquote "github.com/xiebiao/quotelib/internal/application/quote"
	"github.com/xiebiao/quotelib/internal/interface/http/dto"
	"github.com/xiebiao/quotelib/internal/interface/http/middleware"
	"github.com/xiebiao/quotelib/pkg/response"
)

// QuoteHandler 引文HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 读接口公开,写接口经过RequireAuth中间件
type QuoteHandler struct {
	createUseCase *appquote.CreateQuoteUseCase
	updateUseCase *appquote.UpdateQuoteUseCase
	deleteUseCase *appquote.DeleteQuoteUseCase
	listUseCase   *appquote.ListQuotesUseCase
}

// NewQuoteHandler 创建引文处理器
func NewQuoteHandler(
	createUseCase *appquote.CreateQuoteUseCase,
	updateUseCase *appquote.UpdateQuoteUseCase,
	deleteUseCase *appquote.DeleteQuoteUseCase,
	listUseCase *appquote.ListQuotesUseCase,
) *QuoteHandler {
	return &QuoteHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 创建引文
// @Summary      创建引文
// @Description  创建引文并建立关联；作者署名自动从所属书目复制
// @Tags         引文
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateQuoteRequest true "引文信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "书目不存在"
// @Router       /api/v1/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	// 1. 绑定并验证参数
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例（用户ID来自JWT，不信任请求体）
	result, err := h.createUseCase.Execute(c.Request.Context(), appquote.CreateQuoteRequest{
		UserID:      middleware.GetUserID(c),
		Text:        req.Text,
		BookID:      req.BookID,
		Context:     req.Context,
		PageNumber:  req.PageNumber,
		QuotedBy:    req.QuotedBy,
		IsImportant: req.IsImportant,
		IsPrivate:   req.IsPrivate,
		TopicIDs:    req.TopicIDs,
		TagIDs:      req.TagIDs,
		TypeIDs:     req.TypeIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 返回成功响应
	response.Success(c, result)
}

// Update 更新引文
// @Summary      更新引文
// @Description  PATCH语义更新标量字段；关联族传则整体替换，不传则不动
// @Tags         引文
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "引文ID"
// @Param        request body dto.UpdateQuoteRequest true "变更内容"
// @Success      200 {object} response.Response "更新成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "引文不存在"
// @Router       /api/v1/quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	quoteID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的引文ID")
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appquote.UpdateQuoteRequest{
		UserID:      middleware.GetUserID(c),
		QuoteID:     quoteID,
		Text:        req.Text,
		BookID:      req.BookID,
		Context:     req.Context,
		PageNumber:  req.PageNumber,
		QuotedBy:    req.QuotedBy,
		IsImportant: req.IsImportant,
		IsPrivate:   req.IsPrivate,
		AuthorIDs:   req.AuthorIDs,
		TopicIDs:    req.TopicIDs,
		TagIDs:      req.TagIDs,
		TypeIDs:     req.TypeIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除引文
// @Summary      删除引文
// @Description  删除引文及其全部关联（作者/主题/标签/类型）
// @Tags         引文
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "引文ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "引文不存在"
// @Router       /api/v1/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	quoteID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的引文ID")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), middleware.GetUserID(c), quoteID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"quote_id": quoteID})
}

// List 引文聚合列表
// @Summary      引文聚合列表
// @Description  返回全部引文的聚合读模型（书目/作者/主题/标签/类型/流派已展开）
// @Tags         引文
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	views, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}

// GetByID 按ID聚合读
// @Summary      按ID查询引文
// @Description  返回0或1条聚合记录；引文不存在返回空列表而非404
// @Tags         引文
// @Produce      json
// @Param        id path int true "引文ID"
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *gin.Context) {
	quoteID, err := parseIDParam(c)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的引文ID")
		return
	}

	views, err := h.listUseCase.ExecuteByID(c.Request.Context(), quoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}

// parseIDParam 解析路径中的:id参数
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
