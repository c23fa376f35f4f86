package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

func seedTemplates() []*entity.ChapterTemplate {
	return []*entity.ChapterTemplate{
		{ID: "summary", Title: "摘要", Category: entity.CategoryBasic, Body: "正文 [出险时间]"},
		{ID: "conclusion", Title: "结论", Category: entity.CategoryConclusion, Body: "结论正文"},
	}
}

func TestTemplateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("预置模板不可变", func(t *testing.T) {
		repo := NewTemplateRepository(seedTemplates())

		got, err := repo.GetByID(ctx, "summary")
		require.NoError(t, err)
		assert.False(t, got.Mutable)

		err = repo.Delete(ctx, "summary")
		assert.True(t, apperr.Is(err, apperr.CodeTemplateImmutable))

		err = repo.Update(ctx, &entity.ChapterTemplate{ID: "summary", Category: entity.CategoryOther})
		assert.True(t, apperr.Is(err, apperr.CodeTemplateImmutable))

		// 标题和正文允许调整
		require.NoError(t, repo.Update(ctx, &entity.ChapterTemplate{
			ID: "summary", Title: "案件摘要", Body: "新正文",
		}))
		got, err = repo.GetByID(ctx, "summary")
		require.NoError(t, err)
		assert.Equal(t, "案件摘要", got.Title)
		assert.Equal(t, "新正文", got.Body)
		assert.Equal(t, entity.CategoryBasic, got.Category)
	})

	t.Run("自定义模板增删改", func(t *testing.T) {
		repo := NewTemplateRepository(seedTemplates())

		custom := &entity.ChapterTemplate{
			ID:       "weather_note",
			Title:    "天气情况说明",
			Category: entity.CategoryOther,
			Body:     "出险当日天气：[天气状况]",
		}
		require.NoError(t, repo.Create(ctx, custom))

		got, err := repo.GetByID(ctx, "weather_note")
		require.NoError(t, err)
		assert.True(t, got.Mutable)

		require.NoError(t, repo.Update(ctx, &entity.ChapterTemplate{
			ID: "weather_note", Category: entity.CategoryInvestigation,
		}))
		got, _ = repo.GetByID(ctx, "weather_note")
		assert.Equal(t, entity.CategoryInvestigation, got.Category)

		require.NoError(t, repo.Delete(ctx, "weather_note"))
		_, err = repo.GetByID(ctx, "weather_note")
		assert.True(t, apperr.Is(err, apperr.CodeTemplateNotFound))
	})

	t.Run("ID 冲突", func(t *testing.T) {
		repo := NewTemplateRepository(seedTemplates())
		err := repo.Create(ctx, &entity.ChapterTemplate{ID: "summary", Title: "重复"})
		assert.True(t, apperr.Is(err, apperr.CodeConflict))
	})

	t.Run("列表顺序稳定且预置在前", func(t *testing.T) {
		repo := NewTemplateRepository(seedTemplates())
		require.NoError(t, repo.Create(ctx, &entity.ChapterTemplate{ID: "custom_1", Title: "自定义"}))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "summary", list[0].ID)
		assert.Equal(t, "conclusion", list[1].ID)
		assert.Equal(t, "custom_1", list[2].ID)
	})

	t.Run("不存在的模板", func(t *testing.T) {
		repo := NewTemplateRepository(nil)
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, apperr.Is(err, apperr.CodeTemplateNotFound))
		assert.True(t, apperr.Is(repo.Delete(ctx, "missing"), apperr.CodeTemplateNotFound))
	})
}
