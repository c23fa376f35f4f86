package dto

import (
	"time"

	"claims-ai-api/internal/domain/entity"
)

// CreateTemplateRequest 创建模板请求
type CreateTemplateRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Content     string `json:"content" binding:"required"`
}

// UpdateTemplateRequest 更新模板请求
type UpdateTemplateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Content     string `json:"content" binding:"required"`
}

// TemplateResponse 模板响应
type TemplateResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTemplateResponse 转换模板实体
func ToTemplateResponse(t *entity.ChapterTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		Content:     t.Body,
		IsDefault:   !t.Mutable,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTemplateResponses 转换模板列表
func ToTemplateResponses(templates []*entity.ChapterTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, ToTemplateResponse(t))
	}
	return out
}
