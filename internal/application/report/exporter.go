package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"claims-ai-api/internal/domain/entity"
	"claims-ai-api/internal/domain/repository"
	"claims-ai-api/pkg/metrics"
)

// ExportFormat 导出格式
type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatWord ExportFormat = "word"
	FormatDocx ExportFormat = "docx"
	FormatTxt  ExportFormat = "txt"
)

// ExportResult 导出产物
type ExportResult struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Exporter 报告导出器，把报告草稿排版成正式公估报告文本
type Exporter struct {
	reports repository.ReportRepository
}

// NewExporter 创建报告导出器
func NewExporter(reports repository.ReportRepository) *Exporter {
	return &Exporter{reports: reports}
}

const divider = "═══════════════════════════════════════════════════════════════════"

var chapterNumerals = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Export 导出指定报告
//
// 未识别的 format 按 txt 处理；pdf/word 当前仅做格式标注，
// 正文仍为排版后的纯文本。
func (e *Exporter) Export(ctx context.Context, reportID string, format ExportFormat) (*ExportResult, error) {
	draft, err := e.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	text := e.compose(draft, now)

	fileName := fmt.Sprintf("公估报告_%s_%s", draft.ID, now.Format("2006-01-02"))
	mimeType := "text/plain"
	content := text

	switch ExportFormat(strings.ToLower(string(format))) {
	case FormatPDF:
		fileName += ".pdf"
		mimeType = "application/pdf"
		content = "PDF模拟内容 - " + text
	case FormatWord, FormatDocx:
		fileName += ".docx"
		mimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatTxt:
		fileName += ".txt"
	default:
		format = FormatTxt
		fileName += ".txt"
	}

	metrics.ReportExportTotal.WithLabelValues(string(format)).Inc()

	return &ExportResult{
		FileName: fileName,
		MIMEType: mimeType,
		Content:  []byte(content),
	}, nil
}

// compose 排版报告正文
func (e *Exporter) compose(draft *entity.ReportDraft, now time.Time) string {
	date := formatDateZH(now)

	var b strings.Builder

	b.WriteString("                    正达保险公估有限公司\n")
	b.WriteString("              ZhengDa Insurance Survers&Loss Adjusters CO., LTD.\n")
	b.WriteString("    " + divider + "\n\n")
	b.WriteString("    地址 (ADD)：福建省福州市福州仓山万达广场 C1-1819              邮编 (POST CODE)：350028\n")
	b.WriteString("    电话 (TEL)：(0591) 86396103                           传真 (FAX)：(0591) 86396662\n\n\n")
	b.WriteString("                              保险公估报告\n\n\n")
	b.WriteString("    " + divider + "\n\n")

	fmt.Fprintf(&b, "    案件编号：CASE-%s-%d\n", draft.ID, now.Year())
	fmt.Fprintf(&b, "    报告名称：%s\n", draft.Title)
	fmt.Fprintf(&b, "    保险类型：%s\n", draft.InsuranceType)
	fmt.Fprintf(&b, "    报告日期：%s\n\n", date)
	b.WriteString(divider + "\n")

	for i, field := range entity.ReportChapterFields {
		title := entity.ReportChapterTitles[field]
		fmt.Fprintf(&b, "\n## %s、%s\n\n", chapterNumerals[i], title)
		content := strings.TrimSpace(draft.Chapters[field])
		if content == "" {
			content = "（本章节暂无内容）"
		}
		b.WriteString(content + "\n")
	}

	b.WriteString("\n" + divider + "\n\n")
	b.WriteString("                            公估机构信息\n\n")
	b.WriteString("公估机构：正达保险公估有限公司\n")
	b.WriteString("资质证书：[公估机构资质证书号]\n")
	b.WriteString("业务范围：财产保险公估、人身保险公估\n")
	b.WriteString("联系电话：(0591) 86396103\n\n\n")
	b.WriteString("                            公估师签字\n\n")
	b.WriteString("公估师：\n")
	b.WriteString("执业证号：\n")
	b.WriteString("签字：                    （签字）\n")
	fmt.Fprintf(&b, "日期：%s\n\n\n", date)
	b.WriteString("                                                    [公司印章位置]\n\n")
	b.WriteString("                           正达保险公估有限公司\n")
	fmt.Fprintf(&b, "                      %s\n\n", date)
	b.WriteString(divider + "\n")

	return b.String()
}
