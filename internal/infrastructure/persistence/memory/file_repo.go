package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// FileRepository 文件元数据仓储的内存实现
type FileRepository struct {
	mu    sync.RWMutex
	files map[string]*entity.UploadedFile
}

// NewFileRepository 创建文件仓储
func NewFileRepository() *FileRepository {
	return &FileRepository{files: make(map[string]*entity.UploadedFile)}
}

// Create 记录上传文件
func (r *FileRepository) Create(_ context.Context, file *entity.UploadedFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[file.ID]; ok {
		return apperr.New(apperr.CodeConflict, "文件已存在")
	}
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

// GetByID 根据 ID 获取文件
func (r *FileRepository) GetByID(_ context.Context, id string) (*entity.UploadedFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, ok := r.files[id]
	if !ok {
		return nil, apperr.New(apperr.CodeFileNotFound, "文件不存在")
	}
	cp := *file
	return &cp, nil
}

// ListByReport 按上传时间倒序返回报告关联的文件
func (r *FileRepository) ListByReport(_ context.Context, reportID string) ([]*entity.UploadedFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.UploadedFile, 0)
	for _, file := range r.files {
		if file.ReportID == reportID {
			cp := *file
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

// UpdateOCR 写入 OCR 状态与识别结果
func (r *FileRepository) UpdateOCR(_ context.Context, id string, status entity.OCRStatus, text string, confidence float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, ok := r.files[id]
	if !ok {
		return apperr.New(apperr.CodeFileNotFound, "文件不存在")
	}
	file.OCRStatus = status
	file.OCRText = text
	file.OCRConfidence = confidence
	file.UpdatedAt = time.Now()
	return nil
}
