package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/pkg/logger"
	"claims-ai-api/pkg/metrics"
)

// GenerateInput 章节生成入参
type GenerateInput struct {
	ReportID    string
	ChapterType string

	// Context 调用方附带的上下文信息，为空时不拼接
	Context string

	// Values 占位符取值，键与模板中 [名称] 的名称对应
	Values map[string]string
}

// GenerateOutput 章节生成结果
type GenerateOutput struct {
	Chapter   *entity.RenderedChapter
	ModelUsed string
}

// 生成记录里标注的引擎名，当前为纯模板渲染
const generationModelName = "模板生成"

// Generator 章节内容生成器
//
// 同样的模板、上下文和取值总是产出同样的正文（生成时间戳除外）。
type Generator struct {
	catalog *Catalog
	reports repository.ReportRepository
}

// NewGenerator 创建章节生成器
func NewGenerator(catalog *Catalog, reports repository.ReportRepository) *Generator {
	return &Generator{catalog: catalog, reports: reports}
}

// Generate 基于模板生成章节内容并落生成记录
func (g *Generator) Generate(ctx context.Context, in *GenerateInput) (*GenerateOutput, error) {
	start := time.Now()

	tmpl, err := g.catalog.Lookup(in.ChapterType)
	if err != nil {
		metrics.ChapterGenerationTotal.WithLabelValues(in.ChapterType, "rejected").Inc()
		return nil, err
	}

	body := tmpl.Body
	if in.Context != "" {
		body = fmt.Sprintf("基于上下文信息：%s\n\n%s", in.Context, body)
	}

	body = Render(body, in.Values)
	body = Render(body, map[string]string{"生成时间": formatDateZH(start)})

	chapter := &entity.RenderedChapter{
		SourceTemplateID: tmpl.ID,
		Text:             body,
		GeneratedAt:      time.Now(),
	}

	if g.reports != nil && in.ReportID != "" {
		log := &entity.GenerationLog{
			ID:             uuid.NewString(),
			ReportID:       in.ReportID,
			ChapterType:    in.ChapterType,
			PromptText:     in.Context,
			Content:        body,
			ModelName:      generationModelName,
			GenerationTime: time.Since(start).Seconds(),
			CreatedAt:      time.Now(),
		}
		if err := g.reports.AppendGenerationLog(ctx, log); err != nil {
			// 生成记录失败不阻断内容返回
			logger.Warn(ctx, "append generation log failed", "report_id", in.ReportID, "error", err)
		}
	}

	metrics.ChapterGenerationTotal.WithLabelValues(in.ChapterType, "success").Inc()
	logger.Info(ctx, "chapter generated",
		"report_id", in.ReportID,
		"chapter_type", in.ChapterType,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &GenerateOutput{Chapter: chapter, ModelUsed: generationModelName}, nil
}

// SupportedChapter 可生成章节的描述
type SupportedChapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Supported bool   `json:"supported"`
}

// SupportedChapters 返回全部可生成的章节类型
func (g *Generator) SupportedChapters() []SupportedChapter {
	templates := g.catalog.List()
	out := make([]SupportedChapter, 0, len(templates))
	for _, t := range templates {
		out = append(out, SupportedChapter{ID: t.ID, Title: t.Title, Supported: true})
	}
	return out
}

// formatDateZH 按 年/月/日 输出日期，月日不补零
func formatDateZH(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}
