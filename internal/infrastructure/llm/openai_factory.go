// Package llm 封装上游大模型服务的客户端构造
package llm

import (
	"github.com/sashabaranov/go-openai"

	"claims-ai-api/internal/application/assist"
)

// NewClientFactory 返回按请求凭证构造 OpenAI 兼容客户端的工厂
//
// API Key 只存在于单次请求的客户端实例里，工厂不做任何缓存。
func NewClientFactory() assist.ClientFactory {
	return func(cfg assist.ModelConfig) assist.ChatClient {
		c := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		return openai.NewClientWithConfig(c)
	}
}
