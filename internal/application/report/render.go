package report

import "strings"

// Render 对模板正文做单趟占位符替换
//
// 占位符形如 [名称]，名称区分大小写且需与 values 的键完全一致。
// 未提供取值的占位符原样保留，替换进来的文本不会被再次扫描，
// 因此取值里即使含有 [xxx] 也不会触发二次替换。
func Render(body string, values map[string]string) string {
	if len(values) == 0 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	for {
		open := strings.IndexByte(body, '[')
		if open < 0 {
			b.WriteString(body)
			return b.String()
		}
		end := strings.IndexByte(body[open:], ']')
		if end < 0 {
			b.WriteString(body)
			return b.String()
		}
		end += open

		b.WriteString(body[:open])
		name := body[open+1 : end]
		if v, ok := values[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(body[open : end+1])
		}
		body = body[end+1:]
	}
}
