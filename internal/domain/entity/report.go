// Package entity 定义领域实体
package entity

import (
	"time"
)

// ReportStatus 报告状态
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusReview    ReportStatus = "review"
	ReportStatusCompleted ReportStatus = "completed"
	ReportStatusArchived  ReportStatus = "archived"
)

// InsuranceType 保险类型
type InsuranceType string

const (
	InsuranceEnterpriseProperty InsuranceType = "企业财产险"
	InsuranceAuto               InsuranceType = "车险"
	InsuranceLiability          InsuranceType = "责任险"
	InsuranceOther              InsuranceType = "其他"
)

// 报告的固定章节列，与章节模板 ID 对应
const (
	ChapterAccidentDetails   = "accident_details"
	ChapterPolicySummary     = "policy_summary"
	ChapterSiteInvestigation = "site_investigation"
	ChapterCauseAnalysis     = "cause_analysis"
	ChapterLossAssessment    = "loss_assessment"
	ChapterConclusion        = "conclusion"
)

// ReportChapterFields 报告章节列的固定顺序
var ReportChapterFields = []string{
	ChapterAccidentDetails,
	ChapterPolicySummary,
	ChapterSiteInvestigation,
	ChapterCauseAnalysis,
	ChapterLossAssessment,
	ChapterConclusion,
}

// ReportChapterTitles 章节列对应的中文标题
var ReportChapterTitles = map[string]string{
	ChapterAccidentDetails:   "事故经过及索赔",
	ChapterPolicySummary:     "保单内容摘要",
	ChapterSiteInvestigation: "现场查勘情况",
	ChapterCauseAnalysis:     "事故原因分析",
	ChapterLossAssessment:    "损失核定",
	ChapterConclusion:        "公估结论",
}

// ReportDraft 公估报告草稿
type ReportDraft struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	InsuranceType InsuranceType `json:"insurance_type"`
	Status        ReportStatus  `json:"status"`

	// 章节内容，键为章节列名
	Chapters map[string]string `json:"chapters"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReportDraft 创建报告草稿
func NewReportDraft(id, title string, insuranceType InsuranceType) *ReportDraft {
	now := time.Now()
	if title == "" {
		title = "未命名报告"
	}
	if insuranceType == "" {
		insuranceType = InsuranceOther
	}
	return &ReportDraft{
		ID:            id,
		Title:         title,
		InsuranceType: insuranceType,
		Status:        ReportStatusDraft,
		Chapters:      make(map[string]string),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsChapterField 判断是否为合法的章节列名
func IsChapterField(name string) bool {
	for _, f := range ReportChapterFields {
		if f == name {
			return true
		}
	}
	return false
}

// SetChapter 写入章节内容
func (r *ReportDraft) SetChapter(field, content string) {
	if r.Chapters == nil {
		r.Chapters = make(map[string]string)
	}
	r.Chapters[field] = content
	r.UpdatedAt = time.Now()
}

// GenerationLog AI 生成记录
type GenerationLog struct {
	ID             string    `json:"id"`
	ReportID       string    `json:"report_id"`
	ChapterType    string    `json:"chapter_type"`
	PromptText     string    `json:"prompt_text"`
	Content        string    `json:"generated_content"`
	ModelName      string    `json:"model_name"`
	TokensUsed     int       `json:"tokens_used"`
	GenerationTime float64   `json:"generation_time"`
	CreatedAt      time.Time `json:"created_at"`
}
