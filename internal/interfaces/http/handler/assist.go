package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"claims-ai-api/internal/application/assist"
	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/interfaces/http/dto"
	"claims-ai-api/pkg/logger"
	"claims-ai-api/pkg/metrics"
)

// AssistHandler AI 对话处理器
type AssistHandler struct {
	registry   *assist.ModeRegistry
	builder    *assist.ContextBuilder
	dispatcher *assist.Dispatcher
}

// NewAssistHandler 创建 AI 对话处理器
func NewAssistHandler(registry *assist.ModeRegistry, builder *assist.ContextBuilder, dispatcher *assist.Dispatcher) *AssistHandler {
	return &AssistHandler{
		registry:   registry,
		builder:    builder,
		dispatcher: dispatcher,
	}
}

// Chat AI 对话
// @Summary AI 对话
// @Description 按专业模式装配上下文并转发到上游大模型
// @Tags AI
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "对话请求"
// @Success 200 {object} dto.Response[dto.ChatResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/ai/chat [post]
func (h *AssistHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// 未知模式静默回退到通用模式
	mode := h.registry.Resolve(entity.ProfessionalModeID(req.Mode))

	messages, err := h.builder.Build(mode.ID, req.History(), req.Message)
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues(string(mode.ID), "rejected").Inc()
		respondError(c, err)
		return
	}

	result, err := h.dispatcher.Dispatch(ctx, messages, req.ModelConfig())
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues(string(mode.ID), "error").Inc()
		respondError(c, err)
		return
	}

	duration := time.Since(start)
	metrics.ChatRequestsTotal.WithLabelValues(string(mode.ID), "success").Inc()
	metrics.ChatRequestDuration.WithLabelValues(string(mode.ID)).Observe(duration.Seconds())
	metrics.ChatTokensUsed.WithLabelValues(string(mode.ID)).Observe(float64(result.TokensUsed))
	logger.Info(ctx, "chat completed",
		"mode", mode.ID,
		"tokens_used", result.TokensUsed,
		"duration_ms", duration.Milliseconds(),
	)

	dto.Success(c, dto.ChatResponse{
		Response:   result.Text,
		TokensUsed: result.TokensUsed,
		Model:      result.Model,
		Mode:       string(mode.ID),
		Timestamp:  time.Now(),
	})
}

// ListModes 获取专业模式列表
// @Summary 获取专业模式列表
// @Tags AI
// @Produce json
// @Success 200 {object} dto.Response[[]dto.ProfessionalModeResponse]
// @Router /v1/ai/modes [get]
func (h *AssistHandler) ListModes(c *gin.Context) {
	dto.Success(c, dto.ToProfessionalModeResponses(h.registry.List()))
}
