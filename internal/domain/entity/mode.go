// Package entity 定义领域实体
package entity

// ProfessionalModeID 专业模式标识
type ProfessionalModeID string

const (
	ModeGeneral       ProfessionalModeID = "general"
	ModeInvestigation ProfessionalModeID = "investigation"
	ModeAssessment    ProfessionalModeID = "assessment"
	ModeReporting     ProfessionalModeID = "reporting"
	ModeLegal         ProfessionalModeID = "legal"
)

// ProfessionalMode 专业模式：一套命名的系统提示词，决定 AI 回复的口吻与专业侧重
type ProfessionalMode struct {
	ID           ProfessionalModeID `json:"id"`
	DisplayName  string             `json:"display_name"`
	SystemPrompt string             `json:"system_prompt"`
}
