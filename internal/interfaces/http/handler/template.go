package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/logger"
)

// TemplateHandler 模板库处理器
type TemplateHandler struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateHandler 创建模板库处理器
func NewTemplateHandler(templateRepo repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

// ListTemplates 获取模板列表
// @Summary 获取模板列表
// @Tags Templates
// @Produce json
// @Param category query string false "按分类过滤"
// @Success 200 {object} dto.Response[[]dto.TemplateResponse]
// @Router /v1/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	templates, err := h.templateRepo.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := templates[:0]
		for _, t := range templates {
			if string(t.Category) == category {
				filtered = append(filtered, t)
			}
		}
		templates = filtered
	}

	dto.Success(c, dto.ToTemplateResponses(templates))
}

// CreateTemplate 创建自定义模板
// @Summary 创建自定义模板
// @Tags Templates
// @Accept json
// @Produce json
// @Param body body dto.CreateTemplateRequest true "模板信息"
// @Success 201 {object} dto.Response[dto.TemplateResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "标题和内容不能为空")
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = slugify(req.Title)
	}

	tpl := &entity.ChapterTemplate{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.TemplateCategory(req.Category),
		Body:        req.Content,
	}
	if tpl.Category == "" {
		tpl.Category = entity.CategoryOther
	}

	if err := h.templateRepo.Create(ctx, tpl); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.templateRepo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(ctx, "template created", "template_id", id)
	dto.Created(c, dto.ToTemplateResponse(created))
}

// GetTemplate 获取模板详情
// @Summary 获取模板详情
// @Tags Templates
// @Produce json
// @Param id path string true "模板 ID"
// @Success 200 {object} dto.Response[dto.TemplateResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	tpl, err := h.templateRepo.GetByID(ctx, dto.BindTemplateID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToTemplateResponse(tpl))
}

// UpdateTemplate 更新模板
// @Summary 更新模板
// @Description 系统预置模板允许调整标题与正文，不允许变更分类
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "模板 ID"
// @Param body body dto.UpdateTemplateRequest true "模板信息"
// @Success 200 {object} dto.Response[dto.TemplateResponse]
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindTemplateID(c)

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "标题和内容不能为空")
		return
	}

	err := h.templateRepo.Update(ctx, &entity.ChapterTemplate{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    entity.TemplateCategory(req.Category),
		Body:        req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.templateRepo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToTemplateResponse(updated))
}

// DeleteTemplate 删除模板
// @Summary 删除自定义模板
// @Tags Templates
// @Produce json
// @Param id path string true "模板 ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	id := dto.BindTemplateID(c)

	if err := h.templateRepo.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	logger.Info(ctx, "template deleted", "template_id", id)
	dto.NoContent(c)
}

// slugify 从标题派生模板 ID
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
