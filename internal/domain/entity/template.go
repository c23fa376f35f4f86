// Package entity 定义领域实体
package entity

import (
	"time"
)

// TemplateCategory 模板分类
type TemplateCategory string

const (
	CategoryBasic         TemplateCategory = "basic"
	CategoryInvestigation TemplateCategory = "investigation"
	CategoryAnalysis      TemplateCategory = "analysis"
	CategoryAssessment    TemplateCategory = "assessment"
	CategoryConclusion    TemplateCategory = "conclusion"
	CategoryLegal         TemplateCategory = "legal"
	CategoryOther         TemplateCategory = "other"
)

// ChapterTemplate 章节模板
//
// Body 中可包含形如 [出险时间] 的占位符标记，渲染时按值映射替换。
// Mutable=false 的系统预置模板不允许修改 ID/分类，也不允许删除。
type ChapterTemplate struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    TemplateCategory `json:"category"`
	Body        string           `json:"content"`
	Mutable     bool             `json:"mutable"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RenderedChapter 渲染产物
//
// 每次调用新建，不可变；持久化由调用方负责。
type RenderedChapter struct {
	SourceTemplateID string    `json:"source_template_id"`
	Text             string    `json:"text"`
	GeneratedAt      time.Time `json:"generated_at"`
}
