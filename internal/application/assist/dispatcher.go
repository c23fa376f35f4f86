package assist

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// 发往上游的固定生成参数：回复上限 3000 token，低温 0.3 保证专业性，关闭流式
const (
	maxOutputTokens = 3000
	temperature     = 0.3
	topP            = 0.9
)

// DefaultDispatchTimeout 单次上游调用的超时上限
const DefaultDispatchTimeout = 30 * time.Second

// ModelConfig 上游模型凭证与参数，由调用方随每次请求显式携带。
// 服务端不持有、不落盘、不写入日志。
type ModelConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ChatClient 上游对话补全客户端的最小接口，便于测试替换
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ClientFactory 按请求凭证构造上游客户端
type ClientFactory func(cfg ModelConfig) ChatClient

// ChatResult 上游对话补全结果
type ChatResult struct {
	Text       string
	TokensUsed int
	Model      string
}

// Dispatcher 对话请求分发器
//
// 每次调用只发起一次上游请求，不重试：上游可能限流或按次计费，
// 重试策略留给调用方。
type Dispatcher struct {
	newClient      ClientFactory
	defaultModel   string
	defaultBaseURL string
	timeout        time.Duration
}

// NewDispatcher 创建分发器
func NewDispatcher(factory ClientFactory, defaultModel, defaultBaseURL string, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}
	return &Dispatcher{
		newClient:      factory,
		defaultModel:   defaultModel,
		defaultBaseURL: defaultBaseURL,
		timeout:        timeout,
	}
}

// Dispatch 将装配好的消息序列发送到上游对话补全服务
//
// 凭证缺失在任何网络 I/O 之前拒绝。上游结果被归类到封闭的错误码集合，
// 原始状态码只保留在 Detail 中。不修改传入的 messages。
func (d *Dispatcher) Dispatch(ctx context.Context, messages []entity.ConversationMessage, cfg ModelConfig) (*ChatResult, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperr.New(apperr.CodeMissingCredential, "请先配置AI服务API Key")
	}
	if cfg.Model == "" {
		cfg.Model = d.defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = d.defaultBaseURL
	}

	req := openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    toChatMessages(messages),
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
		TopP:        topP,
		Stream:      false,
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.newClient(cfg).CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, apperr.New(apperr.CodeMalformedUpstreamResponse, "AI服务返回异常数据")
	}

	return &ChatResult{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
		Model:      resp.Model,
	}, nil
}

// toChatMessages 转换为上游 SDK 的消息结构
func toChatMessages(messages []entity.ConversationMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return out
}

// classifyUpstreamError 将上游错误归类到封闭错误码集合
func classifyUpstreamError(err error) *apperr.AppError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyHTTPStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyHTTPStatus(reqErr.HTTPStatusCode, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(err, apperr.CodeUpstreamTimeout, "AI服务响应超时")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperr.Wrap(err, apperr.CodeUpstreamTimeout, "AI服务响应超时")
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperr.Wrap(err, apperr.CodeNetworkUnreachable, "网络连接失败，请检查网络或API地址配置")
	}

	return apperr.Wrap(err, apperr.CodeNetworkUnreachable, "网络连接失败，请检查网络或API地址配置")
}

// classifyHTTPStatus 按上游 HTTP 状态码归类
//
// 401/429/5xx 单独归类；其余状态归入上游服务错误，状态码保留在 Detail 中。
func classifyHTTPStatus(status int, err error) *apperr.AppError {
	switch {
	case status == 401:
		return apperr.Wrap(err, apperr.CodeUpstreamUnauthorized, "API Key无效，请检查配置")
	case status == 429:
		return apperr.Wrap(err, apperr.CodeUpstreamRateLimited, "API调用频率超限，请稍后重试")
	case status >= 500:
		return apperr.Wrap(err, apperr.CodeUpstreamServerError, "AI服务器错误，请稍后重试")
	default:
		return apperr.Wrap(err, apperr.CodeUpstreamServerError, "AI服务调用失败").
			WithDetail(fmt.Sprintf("upstream status %d", status))
	}
}
