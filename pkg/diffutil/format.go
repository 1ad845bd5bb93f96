package diffutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// SideBySide 把对比结果排成左右两栏。
// 左栏按显示宽度补齐，中文等宽字符也能对齐。
func SideBySide(lines []Line, leftTitle, rightTitle string) string {
	// 模糊宽度字符（比如制表线）按宽度 1 计算
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	width := cond.StringWidth(leftTitle)
	for _, l := range lines {
		width = max(width, cond.StringWidth(l.Left))
	}

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-cond.StringWidth(s))
	}

	var b strings.Builder
	header := pad(leftTitle) + "     " + rightTitle
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", cond.StringWidth(header)))
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(pad(l.Left))
		b.WriteString("  ")
		b.WriteString(l.Mark)
		b.WriteString("  ")
		b.WriteString(l.Right)
		b.WriteByte('\n')
	}
	return b.String()
}
