// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"claims-ai-api/internal/domain/entity"
)

// TemplateRepository 模板库仓储接口
//
// 系统预置模板随目录常驻，Mutable=false；自定义模板为内存 mock CRUD。
type TemplateRepository interface {
	// List 获取全部模板（系统预置在前，顺序稳定）
	List(ctx context.Context) ([]*entity.ChapterTemplate, error)

	// GetByID 根据 ID 获取模板
	GetByID(ctx context.Context, id string) (*entity.ChapterTemplate, error)

	// Create 创建自定义模板
	Create(ctx context.Context, tpl *entity.ChapterTemplate) error

	// Update 更新模板；系统预置模板不允许变更 ID 与分类
	Update(ctx context.Context, tpl *entity.ChapterTemplate) error

	// Delete 删除模板；系统预置模板不允许删除
	Delete(ctx context.Context, id string) error
}
