// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"claims-ai-api/internal/domain/entity"
)

// FileRepository 文件元数据仓储接口
type FileRepository interface {
	// Create 记录上传文件
	Create(ctx context.Context, file *entity.UploadedFile) error

	// GetByID 根据 ID 获取文件
	GetByID(ctx context.Context, id string) (*entity.UploadedFile, error)

	// ListByReport 获取报告关联的文件列表
	ListByReport(ctx context.Context, reportID string) ([]*entity.UploadedFile, error)

	// UpdateOCR 写入 OCR 识别结果
	UpdateOCR(ctx context.Context, id string, status entity.OCRStatus, text string, confidence float64) error
}

// OCRService OCR 识别服务接口
//
// 当前由 mock 实现提供固定文案；真实 OCR 服务接入时替换实现即可。
type OCRService interface {
	// Recognize 对文件执行文字识别
	Recognize(ctx context.Context, file *entity.UploadedFile) (*entity.OCRResult, error)
}
