package memory

import (
	"context"
	"sync"
	"time"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// TemplateRepository 模板库仓储的内存实现
//
// seed 传入的系统预置模板标记为不可变：不允许删除，更新时不允许
// 变更分类；自定义模板是普通的增删改查。
type TemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]*entity.ChapterTemplate
	order     []string
}

// NewTemplateRepository 创建模板仓储并装载预置模板
func NewTemplateRepository(seed []*entity.ChapterTemplate) *TemplateRepository {
	r := &TemplateRepository{templates: make(map[string]*entity.ChapterTemplate)}
	now := time.Now()
	for _, t := range seed {
		cp := *t
		cp.Mutable = false
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		if cp.UpdatedAt.IsZero() {
			cp.UpdatedAt = now
		}
		r.templates[cp.ID] = &cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

// List 返回全部模板，预置模板在前，自定义模板按创建顺序在后
func (r *TemplateRepository) List(_ context.Context) ([]*entity.ChapterTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ChapterTemplate, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.templates[id]
		out = append(out, &cp)
	}
	return out, nil
}

// GetByID 根据 ID 获取模板
func (r *TemplateRepository) GetByID(_ context.Context, id string) (*entity.ChapterTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return nil, apperr.New(apperr.CodeTemplateNotFound, "模板不存在")
	}
	cp := *t
	return &cp, nil
}

// Create 创建自定义模板
func (r *TemplateRepository) Create(_ context.Context, tpl *entity.ChapterTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[tpl.ID]; ok {
		return apperr.New(apperr.CodeConflict, "模板 ID 已存在")
	}
	cp := *tpl
	cp.Mutable = true
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.templates[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

// Update 更新模板
func (r *TemplateRepository) Update(_ context.Context, tpl *entity.ChapterTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[tpl.ID]
	if !ok {
		return apperr.New(apperr.CodeTemplateNotFound, "模板不存在")
	}
	if !existing.Mutable && tpl.Category != "" && tpl.Category != existing.Category {
		return apperr.New(apperr.CodeTemplateImmutable, "系统预置模板不允许修改分类")
	}

	if tpl.Title != "" {
		existing.Title = tpl.Title
	}
	if tpl.Body != "" {
		existing.Body = tpl.Body
	}
	if tpl.Description != "" {
		existing.Description = tpl.Description
	}
	if existing.Mutable && tpl.Category != "" {
		existing.Category = tpl.Category
	}
	existing.UpdatedAt = time.Now()
	return nil
}

// Delete 删除模板，系统预置模板拒绝删除
func (r *TemplateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok {
		return apperr.New(apperr.CodeTemplateNotFound, "模板不存在")
	}
	if !t.Mutable {
		return apperr.New(apperr.CodeTemplateImmutable, "系统预置模板不允许删除")
	}
	delete(r.templates, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
