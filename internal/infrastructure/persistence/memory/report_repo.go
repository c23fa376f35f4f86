// Package memory 提供仓储接口的内存实现
//
// 数据仅存活于进程生命周期内，用于替代真实数据库完成全流程联调。
// 所有方法并发安全，读写均基于副本，调用方持有的实体不会被共享。
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"claims-ai-api/internal/domain/entity"
	apperr "claims-ai-api/pkg/errors"
)

// ReportRepository 报告仓储的内存实现
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[string]*entity.ReportDraft
	logs    map[string][]*entity.GenerationLog
}

// NewReportRepository 创建报告仓储
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make(map[string]*entity.ReportDraft),
		logs:    make(map[string][]*entity.GenerationLog),
	}
}

// Create 创建报告草稿
func (r *ReportRepository) Create(_ context.Context, report *entity.ReportDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[report.ID]; ok {
		return apperr.New(apperr.CodeConflict, "报告已存在")
	}
	r.reports[report.ID] = cloneReport(report)
	return nil
}

// GetByID 根据 ID 获取报告
func (r *ReportRepository) GetByID(_ context.Context, id string) (*entity.ReportDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, apperr.New(apperr.CodeReportNotFound, "报告不存在")
	}
	return cloneReport(report), nil
}

// Update 整体更新报告，最后写入生效
func (r *ReportRepository) Update(_ context.Context, report *entity.ReportDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[report.ID]; !ok {
		return apperr.New(apperr.CodeReportNotFound, "报告不存在")
	}
	clone := cloneReport(report)
	clone.UpdatedAt = time.Now()
	r.reports[report.ID] = clone
	return nil
}

// Delete 删除报告及其生成记录
func (r *ReportRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[id]; !ok {
		return apperr.New(apperr.CodeReportNotFound, "报告不存在")
	}
	delete(r.reports, id)
	delete(r.logs, id)
	return nil
}

// List 按创建时间倒序返回全部报告
func (r *ReportRepository) List(_ context.Context) ([]*entity.ReportDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ReportDraft, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, cloneReport(report))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateChapter 更新单个章节列
func (r *ReportRepository) UpdateChapter(_ context.Context, id, field, content string) error {
	if !entity.IsChapterField(field) {
		return apperr.New(apperr.CodeInvalidParam, "无效的章节字段："+field)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.reports[id]
	if !ok {
		return apperr.New(apperr.CodeReportNotFound, "报告不存在")
	}
	report.SetChapter(field, content)
	return nil
}

// AppendGenerationLog 追加生成记录
func (r *ReportRepository) AppendGenerationLog(_ context.Context, log *entity.GenerationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *log
	r.logs[log.ReportID] = append(r.logs[log.ReportID], &cp)
	return nil
}

// ListGenerationLogs 按时间倒序返回生成记录，limit<=0 表示不限
func (r *ReportRepository) ListGenerationLogs(_ context.Context, reportID string, limit int) ([]*entity.GenerationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := r.logs[reportID]
	out := make([]*entity.GenerationLog, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		cp := *logs[i]
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func cloneReport(src *entity.ReportDraft) *entity.ReportDraft {
	cp := *src
	cp.Chapters = make(map[string]string, len(src.Chapters))
	for k, v := range src.Chapters {
		cp.Chapters[k] = v
	}
	return &cp
}
