package assist

import (
	"strings"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/pkg/errors"
)

// MaxHistoryMessages 随请求携带的历史消息上限。
// 加上系统提示词和本轮用户消息，单次请求的消息总数不超过 12 条，
// 上游负载大小与会话长度无关。
const MaxHistoryMessages = 10

// ContextBuilder 对话上下文装配器
type ContextBuilder struct {
	registry *ModeRegistry
}

// NewContextBuilder 创建上下文装配器
func NewContextBuilder(registry *ModeRegistry) *ContextBuilder {
	return &ContextBuilder{registry: registry}
}

// Build 装配发往上游的消息序列：[system, ...最近10条历史, user(本轮消息)]
//
// 历史消息保持原始顺序，只保留 user/assistant 两个方向；不去重、不重排。
func (b *ContextBuilder) Build(mode entity.ProfessionalModeID, history []entity.ConversationMessage, message string) ([]entity.ConversationMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errors.New(errors.CodeEmptyMessage, "消息内容不能为空")
	}

	resolved := b.registry.Resolve(mode)

	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}

	messages := make([]entity.ConversationMessage, 0, len(history)+2)
	messages = append(messages, entity.ConversationMessage{
		Role:    entity.RoleSystem,
		Content: resolved.SystemPrompt,
	})
	for _, msg := range history {
		role := msg.Role
		if role != entity.RoleAssistant {
			// 前端只产生 user/assistant 两种方向
			role = entity.RoleUser
		}
		messages = append(messages, entity.ConversationMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, entity.ConversationMessage{
		Role:    entity.RoleUser,
		Content: message,
	})

	return messages, nil
}
