package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChapterEndpoint(t *testing.T) {
	t.Run("生成并写入报告章节", func(t *testing.T) {
		env := newTestEnv(t)
		created := createReport(t, env, "测试报告", "其他")

		w := env.doJSON(t, http.MethodPost, "/api/v1/ai/generate/"+created.ID, map[string]any{
			"chapter_type": "conclusion",
			"context":      "现场查勘已完成",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			GeneratedContent string `json:"generated_content"`
			ChapterType      string `json:"chapter_type"`
			ModelUsed        string `json:"model_used"`
		}
		decodeData(t, w, &resp)
		assert.Equal(t, "conclusion", resp.ChapterType)
		assert.Equal(t, "模板生成", resp.ModelUsed)
		assert.True(t, strings.HasPrefix(resp.GeneratedContent, "基于上下文信息：现场查勘已完成"))
		assert.Contains(t, resp.GeneratedContent, "结论")

		// 生成结果同步写入报告章节列
		got := env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID, nil)
		require.Equal(t, http.StatusOK, got.Code)
		var report reportResp
		decodeData(t, got, &report)
		assert.Equal(t, resp.GeneratedContent, report.Chapters["conclusion"])
	})

	t.Run("非报告章节列仅返回内容", func(t *testing.T) {
		env := newTestEnv(t)
		created := createReport(t, env, "测试报告", "其他")

		w := env.doJSON(t, http.MethodPost, "/api/v1/ai/generate/"+created.ID, map[string]any{
			"chapter_type": "legal_basis",
		})
		require.Equal(t, http.StatusOK, w.Code)

		got := env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID, nil)
		var report reportResp
		decodeData(t, got, &report)
		assert.Empty(t, report.Chapters["legal_basis"])
	})

	t.Run("缺少章节类型", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.doJSON(t, http.MethodPost, "/api/v1/ai/generate/r-1", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("不支持的章节类型", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.doJSON(t, http.MethodPost, "/api/v1/ai/generate/r-1", map[string]any{
			"chapter_type": "unknown_chapter",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "4001")
	})
}

func TestGenerationConfigEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/ai/generate/r-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SupportedChapters []struct {
			ID        string `json:"id"`
			Supported bool   `json:"supported"`
		} `json:"supported_chapters"`
		AIModels []struct {
			ID        string `json:"id"`
			Available bool   `json:"available"`
		} `json:"ai_models"`
		Settings struct {
			DefaultModel string `json:"default_model"`
		} `json:"settings"`
	}
	decodeData(t, w, &resp)
	assert.Len(t, resp.SupportedChapters, 14)
	require.NotEmpty(t, resp.AIModels)
	assert.Equal(t, "template", resp.AIModels[0].ID)
	assert.True(t, resp.AIModels[0].Available)
	assert.Equal(t, "template", resp.Settings.DefaultModel)
}
