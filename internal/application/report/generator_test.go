package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// fakeReportRepo 只记录生成日志，其余方法在这些用例里不会被调用
type fakeReportRepo struct {
	stubReportRepo
	logs []*entity.GenerationLog
}

func (f *fakeReportRepo) AppendGenerationLog(_ context.Context, log *entity.GenerationLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()

	t.Run("全部预置章节可查", func(t *testing.T) {
		for _, id := range []string{
			"summary", "client_info", "policy_info", "insured_info",
			"accident_details", "policy_summary", "site_investigation",
			"cause_analysis", "loss_assessment", "insurance_liability",
			"claim_calculation", "conclusion", "legal_basis", "usage_limitations",
		} {
			tmpl, err := catalog.Lookup(id)
			require.NoError(t, err, id)
			assert.Equal(t, id, tmpl.ID)
			assert.NotEmpty(t, tmpl.Body)
		}
	})

	t.Run("未知章节类型返回错误", func(t *testing.T) {
		_, err := catalog.Lookup("unknown_chapter")
		assert.True(t, apperr.Is(err, apperr.CodeUnsupportedChapterType))
	})

	t.Run("List 顺序稳定", func(t *testing.T) {
		first := catalog.List()
		second := catalog.List()
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
		assert.Len(t, first, 14)
	})
}

func TestGeneratorGenerate(t *testing.T) {
	repo := &fakeReportRepo{}
	gen := NewGenerator(NewCatalog(), repo)
	ctx := context.Background()

	t.Run("结论章节包含结论字样", func(t *testing.T) {
		out, err := gen.Generate(ctx, &GenerateInput{ChapterType: "conclusion"})
		require.NoError(t, err)
		assert.Contains(t, out.Chapter.Text, "结论")
		assert.Equal(t, "conclusion", out.Chapter.SourceTemplateID)
		assert.Equal(t, "模板生成", out.ModelUsed)
	})

	t.Run("上下文拼接在正文之前", func(t *testing.T) {
		out, err := gen.Generate(ctx, &GenerateInput{
			ChapterType: "accident_details",
			Context:     "车辆碰撞护栏",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.Chapter.Text, "基于上下文信息：车辆碰撞护栏\n\n"))
		assert.Contains(t, out.Chapter.Text, "一、事故基本情况")
	})

	t.Run("无上下文时直接输出模板", func(t *testing.T) {
		out, err := gen.Generate(ctx, &GenerateInput{ChapterType: "accident_details"})
		require.NoError(t, err)
		assert.False(t, strings.Contains(out.Chapter.Text, "基于上下文信息"))
	})

	t.Run("取值映射替换占位符", func(t *testing.T) {
		out, err := gen.Generate(ctx, &GenerateInput{
			ChapterType: "summary",
			Values: map[string]string{
				"出险时间": "2024年3月15日",
				"损失金额": "12000元",
			},
		})
		require.NoError(t, err)
		assert.Contains(t, out.Chapter.Text, "出险时间：2024年3月15日")
		assert.Contains(t, out.Chapter.Text, "损失金额：12000元")
		// 未提供取值的占位符保留
		assert.Contains(t, out.Chapter.Text, "[出险地点]")
	})

	t.Run("相同输入产出相同正文", func(t *testing.T) {
		in := &GenerateInput{
			ChapterType: "loss_assessment",
			Context:     "现场查勘记录",
			Values:      map[string]string{"总金额": "12000"},
		}
		first, err := gen.Generate(ctx, in)
		require.NoError(t, err)
		second, err := gen.Generate(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, first.Chapter.Text, second.Chapter.Text)
	})

	t.Run("不支持的章节类型", func(t *testing.T) {
		_, err := gen.Generate(ctx, &GenerateInput{ChapterType: "unknown_chapter"})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeUnsupportedChapterType))
	})

	t.Run("带报告时落生成日志", func(t *testing.T) {
		before := len(repo.logs)
		out, err := gen.Generate(ctx, &GenerateInput{
			ReportID:    "rpt-1",
			ChapterType: "conclusion",
			Context:     "结案材料",
		})
		require.NoError(t, err)
		require.Len(t, repo.logs, before+1)
		log := repo.logs[len(repo.logs)-1]
		assert.Equal(t, "rpt-1", log.ReportID)
		assert.Equal(t, "conclusion", log.ChapterType)
		assert.Equal(t, "结案材料", log.PromptText)
		assert.Equal(t, out.Chapter.Text, log.Content)
		assert.Equal(t, "模板生成", log.ModelName)
	})
}

func TestGeneratorSupportedChapters(t *testing.T) {
	gen := NewGenerator(NewCatalog(), nil)

	chapters := gen.SupportedChapters()
	require.Len(t, chapters, 14)
	for _, c := range chapters {
		assert.True(t, c.Supported)
		assert.NotEmpty(t, c.Title)
	}
	assert.Equal(t, "summary", chapters[0].ID)
}
