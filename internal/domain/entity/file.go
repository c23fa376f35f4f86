// Package entity 定义领域实体
package entity

import (
	"time"
)

// OCRStatus OCR 处理状态
type OCRStatus string

const (
	OCRStatusPending    OCRStatus = "pending"
	OCRStatusProcessing OCRStatus = "processing"
	OCRStatusCompleted  OCRStatus = "completed"
	OCRStatusFailed     OCRStatus = "failed"
)

// UploadedFile 已上传的案件材料
type UploadedFile struct {
	ID            string `json:"id"`
	FileName      string `json:"file_name"`
	FileType      string `json:"file_type"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	ReportID      string `json:"report_id,omitempty"`
	UploadURL     string `json:"upload_url,omitempty"`

	OCRStatus     OCRStatus `json:"ocr_status"`
	OCRText       string    `json:"ocr_text,omitempty"`
	OCRConfidence float64   `json:"ocr_confidence,omitempty"`

	UploadedAt time.Time `json:"uploaded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OCRResult OCR 识别结果
type OCRResult struct {
	FileID      string    `json:"file_id"`
	Content     string    `json:"ocr_content"`
	Confidence  float64   `json:"confidence"`
	ProcessedAt time.Time `json:"processed_at"`
	WordCount   int       `json:"word_count"`
	Language    string    `json:"language"`
}
