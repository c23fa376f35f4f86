package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportResp struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	InsuranceType string            `json:"insurance_type"`
	Status        string            `json:"status"`
	Chapters      map[string]string `json:"chapters"`
}

func createReport(t *testing.T, env *testEnv, title, insuranceType string) reportResp {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/v1/reports", map[string]string{
		"title":          title,
		"insurance_type": insuranceType,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp reportResp
	decodeData(t, w, &resp)
	return resp
}

func TestReportCRUD(t *testing.T) {
	env := newTestEnv(t)

	created := createReport(t, env, "电梯损坏公估报告", "企业财产险")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "draft", created.Status)

	t.Run("获取详情", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got reportResp
		decodeData(t, w, &got)
		assert.Equal(t, "电梯损坏公估报告", got.Title)
	})

	t.Run("整体更新", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPut, "/api/v1/reports/"+created.ID, map[string]any{
			"title":  "电梯损坏公估报告（修订）",
			"status": "review",
			"chapters": map[string]string{
				"accident_details": "2024年6月7日园区停电导致电梯受损。",
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
		var got reportResp
		decodeData(t, w, &got)
		assert.Equal(t, "review", got.Status)
		assert.Contains(t, got.Chapters["accident_details"], "电梯受损")
	})

	t.Run("非法章节字段", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPut, "/api/v1/reports/"+created.ID, map[string]any{
			"chapters": map[string]string{"not_a_field": "x"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("章节单独更新", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPut, "/api/v1/reports/"+created.ID+"/chapters/conclusion", map[string]string{
			"content": "损失金额认定为人民币12000元整。",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var got reportResp
		decodeData(t, w, &got)
		assert.Contains(t, got.Chapters["conclusion"], "12000")
	})

	t.Run("列表", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/reports", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []reportResp
		decodeData(t, w, &list)
		assert.Len(t, list, 1)
	})

	t.Run("删除后不可见", func(t *testing.T) {
		w := env.doJSON(t, http.MethodDelete, "/api/v1/reports/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/reports/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "4004")
}

func TestReportExportEndpoint(t *testing.T) {
	env := newTestEnv(t)
	created := createReport(t, env, "车辆碰撞公估报告", "车险")

	w := env.doJSON(t, http.MethodPut, "/api/v1/reports/"+created.ID+"/chapters/conclusion", map[string]string{
		"content": "损失金额认定为人民币12000元整。",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("默认导出 pdf", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID+"/export", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.True(t, strings.HasPrefix(w.Body.String(), "PDF模拟内容 - "))
	})

	t.Run("txt 导出包含章节内容", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/reports/"+created.ID+"/export?format=txt", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "正达保险公估有限公司")
		assert.Contains(t, body, "车辆碰撞公估报告")
		assert.Contains(t, body, "12000元整")
	})

	t.Run("导出不存在的报告", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/reports/missing/export", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
