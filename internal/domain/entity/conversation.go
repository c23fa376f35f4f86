// Package entity 定义领域实体
package entity

import (
	"time"
)

// ConversationMessage 单条对话消息
//
// 消息序列由调用方（前端会话）持有并随每次请求传入，服务端不落库。
// 插入顺序即对话轮次顺序。
type ConversationMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewConversationMessage 创建对话消息
func NewConversationMessage(role Role, content string) ConversationMessage {
	return ConversationMessage{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
