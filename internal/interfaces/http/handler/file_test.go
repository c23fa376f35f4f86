package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fileResp struct {
	ID            string  `json:"id"`
	FileName      string  `json:"file_name"`
	OCRStatus     string  `json:"ocr_status"`
	OCRText       string  `json:"ocr_text"`
	OCRConfidence float64 `json:"ocr_confidence"`
}

func TestFileUploadEndpoint(t *testing.T) {
	t.Run("多文件上传并自动识别", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doMultipart(t, "/api/v1/files/upload",
			map[string]string{"report_id": "r-1"},
			map[string][]byte{
				"scene_photo.jpg":     []byte("fake image bytes"),
				"policy_contract.pdf": []byte("fake pdf bytes"),
			},
		)
		require.Equal(t, http.StatusCreated, w.Code)

		var files []fileResp
		decodeData(t, w, &files)
		require.Len(t, files, 2)

		byName := map[string]fileResp{}
		for _, f := range files {
			byName[f.FileName] = f
			assert.Equal(t, "completed", f.OCRStatus)
			assert.Equal(t, 0.95, f.OCRConfidence)
		}
		assert.Contains(t, byName["scene_photo.jpg"].OCRText, "事故现场照片说明")
		assert.Contains(t, byName["policy_contract.pdf"].OCRText, "保险合同条款")
	})

	t.Run("空表单拒绝", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.doMultipart(t, "/api/v1/files/upload", map[string]string{"report_id": "r-1"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("按报告列出文件", func(t *testing.T) {
		env := newTestEnv(t)
		env.doMultipart(t, "/api/v1/files/upload",
			map[string]string{"report_id": "r-1"},
			map[string][]byte{"statement.pdf": []byte("x")},
		)

		w := env.doJSON(t, http.MethodGet, "/api/v1/files/list/r-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var files []fileResp
		decodeData(t, w, &files)
		require.Len(t, files, 1)
		assert.Equal(t, "statement.pdf", files[0].FileName)

		w = env.doJSON(t, http.MethodGet, "/api/v1/files/list/other", nil)
		require.Equal(t, http.StatusOK, w.Code)
		decodeData(t, w, &files)
		assert.Empty(t, files)
	})
}

func TestOCREndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.doMultipart(t, "/api/v1/files/upload",
		map[string]string{"report_id": "r-1"},
		map[string][]byte{"statement.pdf": []byte("x")},
	)
	require.Equal(t, http.StatusCreated, w.Code)
	var uploaded []fileResp
	decodeData(t, w, &uploaded)
	fileID := uploaded[0].ID

	t.Run("执行识别", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPost, "/api/v1/files/"+fileID+"/ocr", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			FileID     string  `json:"file_id"`
			OCRContent string  `json:"ocr_content"`
			Confidence float64 `json:"confidence"`
			Language   string  `json:"language"`
			WordCount  int     `json:"word_count"`
		}
		decodeData(t, w, &resp)
		assert.Equal(t, fileID, resp.FileID)
		assert.Contains(t, resp.OCRContent, "保险事故报告")
		assert.Equal(t, 0.95, resp.Confidence)
		assert.Equal(t, "zh-CN", resp.Language)
		assert.Greater(t, resp.WordCount, 0)
	})

	t.Run("读取已保存结果", func(t *testing.T) {
		w := env.doJSON(t, http.MethodGet, "/api/v1/files/"+fileID+"/ocr", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OCRContent string `json:"ocr_content"`
		}
		decodeData(t, w, &resp)
		assert.Contains(t, resp.OCRContent, "保险事故报告")
	})

	t.Run("文件不存在", func(t *testing.T) {
		w := env.doJSON(t, http.MethodPost, "/api/v1/files/missing/ocr", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "4005")
	})
}
