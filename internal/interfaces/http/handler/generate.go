package handler

import (
	"github.com/gin-gonic/gin"

	"claims-ai-api/internal/application/report"
	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/logger"
)

// GenerateHandler 章节生成处理器
type GenerateHandler struct {
	generator  *report.Generator
	reportRepo repository.ReportRepository
}

// NewGenerateHandler 创建章节生成处理器
func NewGenerateHandler(generator *report.Generator, reportRepo repository.ReportRepository) *GenerateHandler {
	return &GenerateHandler{
		generator:  generator,
		reportRepo: reportRepo,
	}
}

// GenerateChapter 生成章节内容
// @Summary 生成章节内容
// @Description 基于章节模板和上下文生成章节正文，报告存在时同步写入对应章节列
// @Tags AI
// @Accept json
// @Produce json
// @Param reportId path string true "报告 ID"
// @Param body body dto.GenerateChapterRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.GenerateChapterResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/ai/generate/{reportId} [post]
func (h *GenerateHandler) GenerateChapter(c *gin.Context) {
	ctx := c.Request.Context()
	reportID := dto.BindReportID(c)

	var req dto.GenerateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.ChapterType == "" {
		dto.BadRequest(c, "请指定要生成的章节类型")
		return
	}

	ctx = logger.WithContext(ctx, logger.ReportIDKey, reportID)

	out, err := h.generator.Generate(ctx, &report.GenerateInput{
		ReportID:    reportID,
		ChapterType: req.ChapterType,
		Context:     req.Context,
		Values:      req.Values,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// 章节类型对应报告的固定章节列时，生成结果直接落入草稿
	if entity.IsChapterField(req.ChapterType) {
		if err := h.reportRepo.UpdateChapter(ctx, reportID, req.ChapterType, out.Chapter.Text); err != nil {
			logger.Warn(ctx, "persist generated chapter skipped", "error", err)
		}
	}

	dto.Success(c, dto.GenerateChapterResponse{
		GeneratedContent: out.Chapter.Text,
		ChapterType:      req.ChapterType,
		GeneratedAt:      out.Chapter.GeneratedAt,
		ModelUsed:        out.ModelUsed,
	})
}

// GetGenerationConfig 获取生成能力描述
// @Summary 获取生成能力描述
// @Tags AI
// @Produce json
// @Success 200 {object} dto.Response[dto.GenerationConfigResponse]
// @Router /v1/ai/generate/{reportId} [get]
func (h *GenerateHandler) GetGenerationConfig(c *gin.Context) {
	chapters := h.generator.SupportedChapters()
	supported := make([]dto.SupportedChapterResponse, 0, len(chapters))
	for _, ch := range chapters {
		supported = append(supported, dto.SupportedChapterResponse{
			ID:        ch.ID,
			Title:     ch.Title,
			Supported: ch.Supported,
		})
	}

	dto.Success(c, dto.GenerationConfigResponse{
		SupportedChapters: supported,
		AIModels: []dto.GenerationModel{
			{ID: "template", Name: "模板生成", Available: true},
			{ID: "openai", Name: "GPT-4", Available: false, Reason: "需要配置API密钥"},
			{ID: "qianwen", Name: "通义千问", Available: false, Reason: "需要配置API密钥"},
		},
		Settings: dto.GenerationSettings{
			MaxContextLength: 4000,
			DefaultModel:     "template",
		},
	})
}
