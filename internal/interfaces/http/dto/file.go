package dto

import (
	"time"

	"claims-ai-api/internal/domain/entity"
)

// FileResponse 上传文件响应
type FileResponse struct {
	ID            string    `json:"id"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	ReportID      string    `json:"report_id,omitempty"`
	OCRStatus     string    `json:"ocr_status"`
	OCRText       string    `json:"ocr_text,omitempty"`
	OCRConfidence float64   `json:"ocr_confidence,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// ToFileResponse 转换文件实体
func ToFileResponse(f *entity.UploadedFile) FileResponse {
	return FileResponse{
		ID:            f.ID,
		FileName:      f.FileName,
		FileType:      f.FileType,
		FileSizeBytes: f.FileSizeBytes,
		ReportID:      f.ReportID,
		OCRStatus:     string(f.OCRStatus),
		OCRText:       f.OCRText,
		OCRConfidence: f.OCRConfidence,
		UploadedAt:    f.UploadedAt,
	}
}

// ToFileResponses 转换文件列表
func ToFileResponses(files []*entity.UploadedFile) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, ToFileResponse(f))
	}
	return out
}

// OCRResultResponse OCR 识别结果响应
type OCRResultResponse struct {
	FileID      string    `json:"file_id"`
	OCRContent  string    `json:"ocr_content"`
	Confidence  float64   `json:"confidence"`
	ProcessedAt time.Time `json:"processed_at"`
	WordCount   int       `json:"word_count"`
	Language    string    `json:"language"`
}

// ToOCRResultResponse 转换 OCR 结果
func ToOCRResultResponse(r *entity.OCRResult) OCRResultResponse {
	return OCRResultResponse{
		FileID:      r.FileID,
		OCRContent:  r.Content,
		Confidence:  r.Confidence,
		ProcessedAt: r.ProcessedAt,
		WordCount:   r.WordCount,
		Language:    r.Language,
	}
}
