package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

func TestReportRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("创建与读取", func(t *testing.T) {
		repo := NewReportRepository()
		draft := entity.NewReportDraft("r-1", "测试报告", entity.InsuranceAuto)
		require.NoError(t, repo.Create(ctx, draft))

		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "测试报告", got.Title)
		assert.Equal(t, entity.ReportStatusDraft, got.Status)

		// 重复创建冲突
		err = repo.Create(ctx, draft)
		assert.True(t, apperr.Is(err, apperr.CodeConflict))
	})

	t.Run("不存在的报告", func(t *testing.T) {
		repo := NewReportRepository()
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, apperr.Is(err, apperr.CodeReportNotFound))
		assert.True(t, apperr.Is(repo.Delete(ctx, "missing"), apperr.CodeReportNotFound))
		assert.True(t, apperr.Is(
			repo.Update(ctx, entity.NewReportDraft("missing", "", "")),
			apperr.CodeReportNotFound,
		))
	})

	t.Run("返回副本不共享内部状态", func(t *testing.T) {
		repo := NewReportRepository()
		require.NoError(t, repo.Create(ctx, entity.NewReportDraft("r-1", "原标题", "")))

		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		got.Title = "改掉副本"
		got.Chapters[entity.ChapterConclusion] = "副本章节"

		again, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "原标题", again.Title)
		assert.Empty(t, again.Chapters[entity.ChapterConclusion])
	})

	t.Run("更新最后写入生效", func(t *testing.T) {
		repo := NewReportRepository()
		require.NoError(t, repo.Create(ctx, entity.NewReportDraft("r-1", "v1", "")))

		first, _ := repo.GetByID(ctx, "r-1")
		second, _ := repo.GetByID(ctx, "r-1")
		first.Title = "v2"
		second.Title = "v3"
		require.NoError(t, repo.Update(ctx, first))
		require.NoError(t, repo.Update(ctx, second))

		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "v3", got.Title)
	})

	t.Run("列表按创建时间倒序", func(t *testing.T) {
		repo := NewReportRepository()
		older := entity.NewReportDraft("r-old", "旧", "")
		older.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, entity.NewReportDraft("r-new", "新", "")))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "r-new", list[0].ID)
		assert.Equal(t, "r-old", list[1].ID)
	})

	t.Run("章节更新", func(t *testing.T) {
		repo := NewReportRepository()
		require.NoError(t, repo.Create(ctx, entity.NewReportDraft("r-1", "", "")))

		require.NoError(t, repo.UpdateChapter(ctx, "r-1", entity.ChapterConclusion, "公估结论正文"))
		got, err := repo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "公估结论正文", got.Chapters[entity.ChapterConclusion])

		err = repo.UpdateChapter(ctx, "r-1", "not_a_chapter", "x")
		assert.True(t, apperr.Is(err, apperr.CodeInvalidParam))
	})

	t.Run("生成记录倒序与截断", func(t *testing.T) {
		repo := NewReportRepository()
		for i, ct := range []string{"summary", "conclusion", "legal_basis"} {
			require.NoError(t, repo.AppendGenerationLog(ctx, &entity.GenerationLog{
				ID:          string(rune('a' + i)),
				ReportID:    "r-1",
				ChapterType: ct,
			}))
		}

		logs, err := repo.ListGenerationLogs(ctx, "r-1", 0)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, "legal_basis", logs[0].ChapterType)
		assert.Equal(t, "summary", logs[2].ChapterType)

		limited, err := repo.ListGenerationLogs(ctx, "r-1", 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})
}
