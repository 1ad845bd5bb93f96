package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 行标记
const (
	MarkSame    = "|"
	MarkInsert  = "+"
	MarkDelete  = "-"
	MarkReplace = "~"
)

// Line 是并排对比中的一行
type Line struct {
	Left  string
	Right string
	Mark  string
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// DiffCharsToLines 还原出来的文本末尾带换行，切分后最后一个是空串
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Compare 按行比较两段文本，相邻的删除+插入合并成替换行
func Compare(before, after string) []Line {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []Line
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j := 0; j < max(len(delLines), len(insLines)); j++ {
				l := Line{Mark: MarkReplace}
				if j < len(delLines) {
					l.Left = delLines[j]
				} else {
					l.Mark = MarkInsert
				}
				if j < len(insLines) {
					l.Right = insLines[j]
				} else {
					l.Mark = MarkDelete
				}
				result = append(result, l)
			}
			i++
			continue
		}

		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, Line{Left: text, Right: text, Mark: MarkSame})
			case diffmatchpatch.DiffDelete:
				result = append(result, Line{Left: text, Mark: MarkDelete})
			case diffmatchpatch.DiffInsert:
				result = append(result, Line{Right: text, Mark: MarkInsert})
			}
		}
	}
	return result
}

// HasChanges 判断对比结果中是否存在不相同的行
func HasChanges(lines []Line) bool {
	for _, l := range lines {
		if l.Mark != MarkSame {
			return true
		}
	}
	return false
}
