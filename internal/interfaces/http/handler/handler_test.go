package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"claims-ai-api/internal/application/assist"
	appreport "claims-ai-api/internal/application/report"
	"claims-ai-api/internal/config"
	"claims-ai-api/internal/infrastructure/ocr"
	"claims-ai-api/internal/infrastructure/persistence/memory"
	"claims-ai-api/internal/interfaces/http/handler"
	"claims-ai-api/internal/interfaces/http/router"
)

// fakeChatClient 可编程的上游客户端
type fakeChatClient struct {
	calls int
	resp  openai.ChatCompletionResponse
	err   error
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	return f.resp, f.err
}

type testEnv struct {
	engine     *gin.Engine
	chatClient *fakeChatClient
	reportRepo *memory.ReportRepository
	fileRepo   *memory.FileRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Name = "claims-ai-api-test"
	cfg.App.Env = "test"

	chatClient := &fakeChatClient{
		resp: openai.ChatCompletionResponse{
			Model: "deepseek-chat",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "好的，已收到。"}},
			},
			Usage: openai.Usage{TotalTokens: 42},
		},
	}
	factory := func(assist.ModelConfig) assist.ChatClient { return chatClient }

	reportRepo := memory.NewReportRepository()
	fileRepo := memory.NewFileRepository()
	catalog := appreport.NewCatalog()
	generator := appreport.NewGenerator(catalog, reportRepo)
	exporter := appreport.NewExporter(reportRepo)
	templateRepo := memory.NewTemplateRepository(catalog.List())

	registry := assist.NewModeRegistry()
	builder := assist.NewContextBuilder(registry)
	dispatcher := assist.NewDispatcher(factory, "deepseek-chat", "https://api.deepseek.com", 0)
	recognizer := ocr.NewRecognizer(0, "zh-CN")

	r := router.New(cfg, router.Handlers{
		Health:   handler.NewHealthHandler("test"),
		Assist:   handler.NewAssistHandler(registry, builder, dispatcher),
		Generate: handler.NewGenerateHandler(generator, reportRepo),
		Report:   handler.NewReportHandler(reportRepo, exporter),
		Template: handler.NewTemplateHandler(templateRepo),
		File:     handler.NewFileHandler(fileRepo, recognizer, 0, 2),
	})

	return &testEnv{
		engine:     r.Engine(),
		chatClient: chatClient,
		reportRepo: reportRepo,
		fileRepo:   fileRepo,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decodeData 解出统一响应里的 data 字段
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
