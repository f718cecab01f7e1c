package output

import (
	"fmt"
	"io"

	"github.com/CodMac/ng-member-order/model"
	"github.com/fatih/color"
)

// TextReporter 以 `path:line:col: message` 的形式输出诊断，终端下带颜色
type TextReporter struct {
	w        io.Writer
	location *color.Color
	category *color.Color
	summary  *color.Color
	ok       *color.Color
}

// NewTextReporter 创建文本报告器；noColor 为 true 时输出纯文本
func NewTextReporter(w io.Writer, noColor bool) *TextReporter {
	r := &TextReporter{
		w:        w,
		location: color.New(color.Bold),
		category: color.New(color.FgYellow),
		summary:  color.New(color.FgRed, color.Bold),
		ok:       color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{r.location, r.category, r.summary, r.ok} {
			c.DisableColor()
		}
	}
	return r
}

// Report 输出全部诊断及汇总行
func (r *TextReporter) Report(diagnostics []*model.Diagnostic, files int) error {
	for _, d := range diagnostics {
		if err := r.reportOne(d); err != nil {
			return err
		}
	}

	if len(diagnostics) == 0 {
		_, err := r.ok.Fprintf(r.w, "✓ %d files checked, member order is consistent\n", files)
		return err
	}
	_, err := r.summary.Fprintf(r.w, "✗ %d member order violations in %d files checked\n", len(diagnostics), files)
	return err
}

func (r *TextReporter) reportOne(d *model.Diagnostic) error {
	loc := d.Path
	if d.Location != nil {
		loc = d.Location.String()
	}
	if _, err := r.location.Fprint(r.w, loc); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, ": %s.%s ", d.Class, d.Member); err != nil {
		return err
	}
	if _, err := r.category.Fprintf(r.w, "[%s]", d.Category); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, " should be declared before %s\n", d.Previous)
	return err
}
