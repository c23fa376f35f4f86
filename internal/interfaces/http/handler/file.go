package handler

import (
	"mime/multipart"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/errors"
	"claims-ai-api/pkg/logger"
)

// FileHandler 文件与 OCR 处理器
type FileHandler struct {
	fileRepo       repository.FileRepository
	ocr            repository.OCRService
	maxFileSize    int64
	maxConcurrency int
}

// NewFileHandler 创建文件处理器
func NewFileHandler(fileRepo repository.FileRepository, ocr repository.OCRService, maxFileSize int64, maxConcurrency int) *FileHandler {
	if maxConcurrency < 1 {
		maxConcurrency = 4
	}
	return &FileHandler{
		fileRepo:       fileRepo,
		ocr:            ocr,
		maxFileSize:    maxFileSize,
		maxConcurrency: maxConcurrency,
	}
}

// Upload 上传案件材料
// @Summary 上传案件材料
// @Description 接收一个或多个文件，记录元数据并并发执行 OCR 识别
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "文件"
// @Param report_id formData string false "关联报告 ID"
// @Success 201 {object} dto.Response[[]dto.FileResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/files/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		dto.BadRequest(c, "invalid multipart form: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		dto.BadRequest(c, "请选择要上传的文件")
		return
	}

	reportID := c.PostForm("report_id")

	uploaded := make([]*entity.UploadedFile, 0, len(files))
	for _, fh := range files {
		if h.maxFileSize > 0 && fh.Size > h.maxFileSize {
			dto.BadRequest(c, "文件过大："+fh.Filename)
			return
		}
		file := &entity.UploadedFile{
			ID:            uuid.NewString(),
			FileName:      fh.Filename,
			FileType:      contentType(fh),
			FileSizeBytes: fh.Size,
			ReportID:      reportID,
			OCRStatus:     entity.OCRStatusProcessing,
			UploadedAt:    time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := h.fileRepo.Create(ctx, file); err != nil {
			respondError(c, err)
			return
		}
		uploaded = append(uploaded, file)
	}

	// 逐文件并发识别，单个失败不影响其余文件
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.maxConcurrency)
	for _, file := range uploaded {
		file := file
		g.Go(func() error {
			result, err := h.ocr.Recognize(gctx, file)
			if err != nil {
				logger.Warn(gctx, "ocr failed", "file_id", file.ID, "error", err)
				_ = h.fileRepo.UpdateOCR(gctx, file.ID, entity.OCRStatusFailed, "", 0)
				mu.Lock()
				file.OCRStatus = entity.OCRStatusFailed
				mu.Unlock()
				return nil
			}
			if err := h.fileRepo.UpdateOCR(gctx, file.ID, entity.OCRStatusCompleted, result.Content, result.Confidence); err != nil {
				return err
			}
			mu.Lock()
			file.OCRStatus = entity.OCRStatusCompleted
			file.OCRText = result.Content
			file.OCRConfidence = result.Confidence
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}

	logger.Info(ctx, "files uploaded", "count", len(uploaded), "report_id", reportID)
	dto.Created(c, dto.ToFileResponses(uploaded))
}

// ListByReport 获取报告关联的文件列表
// @Summary 获取报告关联文件
// @Tags Files
// @Produce json
// @Param reportId path string true "报告 ID"
// @Success 200 {object} dto.Response[[]dto.FileResponse]
// @Router /v1/files/list/{reportId} [get]
func (h *FileHandler) ListByReport(c *gin.Context) {
	ctx := c.Request.Context()

	files, err := h.fileRepo.ListByReport(ctx, dto.BindReportID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, dto.ToFileResponses(files))
}

// RunOCR 对已上传文件执行 OCR 识别
// @Summary 执行 OCR 识别
// @Tags Files
// @Produce json
// @Param fileId path string true "文件 ID"
// @Success 200 {object} dto.Response[dto.OCRResultResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/files/{fileId}/ocr [post]
func (h *FileHandler) RunOCR(c *gin.Context) {
	ctx := c.Request.Context()
	fileID := dto.BindFileID(c)

	ctx = logger.WithContext(ctx, logger.FileIDKey, fileID)

	file, err := h.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.ocr.Recognize(ctx, file)
	if err != nil {
		_ = h.fileRepo.UpdateOCR(ctx, fileID, entity.OCRStatusFailed, "", 0)
		respondError(c, errors.Wrap(err, errors.CodeOCRFailed, "OCR识别失败"))
		return
	}

	if err := h.fileRepo.UpdateOCR(ctx, fileID, entity.OCRStatusCompleted, result.Content, result.Confidence); err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.ToOCRResultResponse(result))
}

// GetOCRResult 获取已保存的 OCR 结果
// @Summary 获取 OCR 结果
// @Tags Files
// @Produce json
// @Param fileId path string true "文件 ID"
// @Success 200 {object} dto.Response[dto.OCRResultResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/files/{fileId}/ocr [get]
func (h *FileHandler) GetOCRResult(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := h.fileRepo.GetByID(ctx, dto.BindFileID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.OCRResultResponse{
		FileID:      file.ID,
		OCRContent:  file.OCRText,
		Confidence:  file.OCRConfidence,
		ProcessedAt: file.UpdatedAt,
		WordCount:   len([]rune(file.OCRText)),
		Language:    "zh-CN",
	})
}

// contentType 从上传头读取文件类型
func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
