package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appreport "claims-ai-api/internal/application/report"
	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/logger"
)

// ReportHandler 报告处理器
type ReportHandler struct {
	reportRepo repository.ReportRepository
	exporter   *appreport.Exporter
}

// NewReportHandler 创建报告处理器
func NewReportHandler(reportRepo repository.ReportRepository, exporter *appreport.Exporter) *ReportHandler {
	return &ReportHandler{
		reportRepo: reportRepo,
		exporter:   exporter,
	}
}

// ListReports 获取报告列表
// @Summary 获取报告列表
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.Response[[]dto.ReportResponse]
// @Router /v1/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	reports, err := h.reportRepo.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToReportResponses(reports))
}

// CreateReport 创建报告
// @Summary 创建报告草稿
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body dto.CreateReportRequest true "报告信息"
// @Success 201 {object} dto.Response[dto.ReportResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	draft := entity.NewReportDraft(uuid.NewString(), req.Title, entity.InsuranceType(req.InsuranceType))
	if err := h.reportRepo.Create(ctx, draft); err != nil {
		respondError(c, err)
		return
	}

	logger.Info(ctx, "report created", "report_id", draft.ID, "title", draft.Title)
	dto.Created(c, dto.ToReportResponse(draft))
}

// GetReport 获取报告详情
// @Summary 获取报告详情
// @Tags Reports
// @Produce json
// @Param id path string true "报告 ID"
// @Success 200 {object} dto.Response[dto.ReportResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	draft, err := h.reportRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToReportResponse(draft))
}

// UpdateReport 更新报告，最后写入生效
// @Summary 更新报告
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "报告 ID"
// @Param body body dto.UpdateReportRequest true "报告信息"
// @Success 200 {object} dto.Response[dto.ReportResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	draft, err := h.reportRepo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Title != "" {
		draft.Title = req.Title
	}
	if req.InsuranceType != "" {
		draft.InsuranceType = entity.InsuranceType(req.InsuranceType)
	}
	if req.Status != "" {
		draft.Status = entity.ReportStatus(req.Status)
	}
	for field, content := range req.Chapters {
		if !entity.IsChapterField(field) {
			dto.BadRequest(c, "无效的章节字段："+field)
			return
		}
		draft.SetChapter(field, content)
	}

	if err := h.reportRepo.Update(ctx, draft); err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToReportResponse(draft))
}

// DeleteReport 删除报告
// @Summary 删除报告
// @Tags Reports
// @Produce json
// @Param id path string true "报告 ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.reportRepo.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}

// UpdateChapter 更新单个章节
// @Summary 更新报告章节
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "报告 ID"
// @Param chapterId path string true "章节列名"
// @Success 200 {object} dto.Response[dto.ReportResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/reports/{id}/chapters/{chapterId} [put]
func (h *ReportHandler) UpdateChapter(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	field := c.Param("chapterId")

	var req dto.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.reportRepo.UpdateChapter(ctx, id, field, req.Content); err != nil {
		respondError(c, err)
		return
	}

	draft, err := h.reportRepo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToReportResponse(draft))
}

// ExportReport 导出报告
// @Summary 导出公估报告
// @Tags Reports
// @Produce octet-stream
// @Param id path string true "报告 ID"
// @Param format query string false "导出格式" Enums(pdf,word,docx,txt) default(pdf)
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/reports/{id}/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	format := c.DefaultQuery("format", "pdf")
	result, err := h.exporter.Export(ctx, id, appreport.ExportFormat(format))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info(ctx, "report exported", "report_id", id, "format", format, "file_name", result.FileName)
	c.Header("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	c.Data(http.StatusOK, result.MIMEType, result.Content)
}
