package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	IsDefault bool   `json:"is_default"`
}

func TestTemplateEndpoints(t *testing.T) {
	t.Run("列表包含全部预置模板", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodGet, "/api/v1/templates", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []templateResp
		decodeData(t, w, &list)
		require.Len(t, list, 14)
		for _, tpl := range list {
			assert.True(t, tpl.IsDefault, tpl.ID)
			assert.NotEmpty(t, tpl.Content, tpl.ID)
		}
	})

	t.Run("按分类过滤", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodGet, "/api/v1/templates?category=legal", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []templateResp
		decodeData(t, w, &list)
		require.Len(t, list, 1)
		assert.Equal(t, "legal_basis", list[0].ID)
	})

	t.Run("预置模板拒绝删除", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodDelete, "/api/v1/templates/summary", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "4003")
	})

	t.Run("预置模板拒绝变更分类", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodPut, "/api/v1/templates/summary", map[string]string{
			"title":    "摘要",
			"content":  "正文",
			"category": "other",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("自定义模板完整生命周期", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodPost, "/api/v1/templates", map[string]string{
			"id":       "weather_note",
			"title":    "天气情况说明",
			"category": "investigation",
			"content":  "出险当日天气：[天气状况]",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var created templateResp
		decodeData(t, w, &created)
		assert.False(t, created.IsDefault)

		w = env.doJSON(t, http.MethodPut, "/api/v1/templates/weather_note", map[string]string{
			"title":   "天气与环境情况",
			"content": "出险当日天气：[天气状况]，路面状况：[路面状况]",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var updated templateResp
		decodeData(t, w, &updated)
		assert.Equal(t, "天气与环境情况", updated.Title)

		w = env.doJSON(t, http.MethodDelete, "/api/v1/templates/weather_note", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = env.doJSON(t, http.MethodGet, "/api/v1/templates/weather_note", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("缺少标题或内容", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodPost, "/api/v1/templates", map[string]string{
			"title": "只有标题",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
