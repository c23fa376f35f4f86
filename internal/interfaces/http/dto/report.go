package dto

import (
	"time"

	"claims-ai-api/internal/domain/entity"
)

// CreateReportRequest 创建报告请求
type CreateReportRequest struct {
	Title         string `json:"title"`
	InsuranceType string `json:"insurance_type"`
}

// UpdateReportRequest 更新报告请求
type UpdateReportRequest struct {
	Title         string            `json:"title"`
	InsuranceType string            `json:"insurance_type"`
	Status        string            `json:"status"`
	Chapters      map[string]string `json:"chapters"`
}

// UpdateChapterRequest 更新单个章节请求
type UpdateChapterRequest struct {
	Content string `json:"content"`
}

// ReportResponse 报告响应
type ReportResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	InsuranceType string            `json:"insurance_type"`
	Status        string            `json:"status"`
	Chapters      map[string]string `json:"chapters"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ToReportResponse 转换报告实体
func ToReportResponse(r *entity.ReportDraft) ReportResponse {
	return ReportResponse{
		ID:            r.ID,
		Title:         r.Title,
		InsuranceType: string(r.InsuranceType),
		Status:        string(r.Status),
		Chapters:      r.Chapters,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToReportResponses 转换报告列表
func ToReportResponses(reports []*entity.ReportDraft) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToReportResponse(r))
	}
	return out
}

// GenerateChapterRequest 章节生成请求
type GenerateChapterRequest struct {
	ChapterType string            `json:"chapter_type"`
	Context     string            `json:"context"`
	Values      map[string]string `json:"values"`
}

// GenerateChapterResponse 章节生成响应
type GenerateChapterResponse struct {
	GeneratedContent string    `json:"generated_content"`
	ChapterType      string    `json:"chapter_type"`
	GeneratedAt      time.Time `json:"generated_at"`
	ModelUsed        string    `json:"model_used"`
}

// GenerationModel 生成引擎描述
type GenerationModel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// GenerationSettings 生成参数
type GenerationSettings struct {
	MaxContextLength int    `json:"max_context_length"`
	DefaultModel     string `json:"default_model"`
}

// SupportedChapterResponse 可生成章节描述
type SupportedChapterResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Supported bool   `json:"supported"`
}

// GenerationConfigResponse 生成能力描述响应
type GenerationConfigResponse struct {
	SupportedChapters []SupportedChapterResponse `json:"supported_chapters"`
	AIModels          []GenerationModel          `json:"ai_models"`
	Settings          GenerationSettings         `json:"settings"`
}
