package dto

import (
	"time"

	"claims-ai-api/internal/application/assist"
	"claims-ai-api/internal/domain/entity"
)

// ChatHistoryMessage 请求携带的历史消息
type ChatHistoryMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ChatModelConfig 请求级模型配置，API Key 随请求传入，服务端不保存
type ChatModelConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
}

// ChatRequest AI 对话请求
type ChatRequest struct {
	Message string               `json:"message"`
	Context []ChatHistoryMessage `json:"context"`
	Mode    string               `json:"mode"`
	Config  *ChatModelConfig     `json:"config"`
}

// History 转换为领域对话消息，非 user 类型一律视为 assistant
func (r *ChatRequest) History() []entity.ConversationMessage {
	out := make([]entity.ConversationMessage, 0, len(r.Context))
	for _, m := range r.Context {
		role := entity.RoleAssistant
		if m.Type == "user" {
			role = entity.RoleUser
		}
		out = append(out, entity.ConversationMessage{Role: role, Content: m.Content})
	}
	return out
}

// ModelConfig 转换为调度层模型配置
func (r *ChatRequest) ModelConfig() assist.ModelConfig {
	if r.Config == nil {
		return assist.ModelConfig{}
	}
	return assist.ModelConfig{
		APIKey:  r.Config.APIKey,
		Model:   r.Config.Model,
		BaseURL: r.Config.BaseURL,
	}
}

// ChatResponse AI 对话响应
type ChatResponse struct {
	Response   string    `json:"response"`
	TokensUsed int       `json:"tokens_used"`
	Model      string    `json:"model"`
	Mode       string    `json:"mode"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProfessionalModeResponse 专业模式描述
type ProfessionalModeResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ToProfessionalModeResponses 转换专业模式列表
func ToProfessionalModeResponses(modes []*entity.ProfessionalMode) []ProfessionalModeResponse {
	out := make([]ProfessionalModeResponse, 0, len(modes))
	for _, m := range modes {
		out = append(out, ProfessionalModeResponse{
			ID:          string(m.ID),
			DisplayName: m.DisplayName,
		})
	}
	return out
}
