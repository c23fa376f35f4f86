// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"claims-ai-api/internal/domain/entity"
)

// ReportRepository 报告仓储接口
//
// 当前实现为内存 mock；生产环境替换为真实存储时核心管线不变。
type ReportRepository interface {
	// Create 创建报告草稿
	Create(ctx context.Context, report *entity.ReportDraft) error

	// GetByID 根据 ID 获取报告
	GetByID(ctx context.Context, id string) (*entity.ReportDraft, error)

	// Update 更新报告（最后写入生效）
	Update(ctx context.Context, report *entity.ReportDraft) error

	// Delete 删除报告
	Delete(ctx context.Context, id string) error

	// List 获取报告列表（按创建时间倒序）
	List(ctx context.Context) ([]*entity.ReportDraft, error)

	// UpdateChapter 更新单个章节列
	UpdateChapter(ctx context.Context, id, field, content string) error

	// AppendGenerationLog 追加一条 AI 生成记录
	AppendGenerationLog(ctx context.Context, log *entity.GenerationLog) error

	// ListGenerationLogs 获取报告的生成记录
	ListGenerationLogs(ctx context.Context, reportID string, limit int) ([]*entity.GenerationLog, error)
}
