package diffutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_Identical(t *testing.T) {
	text := "a\nb\nc\n"
	lines := Compare(text, text)
	assert.Len(t, lines, 3)
	assert.False(t, HasChanges(lines))
}

func TestCompare_Replace(t *testing.T) {
	before := `{
    "value": 1
}
`
	after := `{
    "value": 3
}
`
	lines := Compare(before, after)
	t.Log("\n" + SideBySide(lines, "* Expected", "* Actual"))

	assert.True(t, HasChanges(lines))
	assert.Equal(t, []Line{
		{Left: "{", Right: "{", Mark: MarkSame},
		{Left: `    "value": 1`, Right: `    "value": 3`, Mark: MarkReplace},
		{Left: "}", Right: "}", Mark: MarkSame},
	}, lines)
}

func TestCompare_InsertAndDelete(t *testing.T) {
	lines := Compare("a\nb\n", "a\nb\nc\n")
	assert.Equal(t, Line{Right: "c", Mark: MarkInsert}, lines[len(lines)-1])

	lines = Compare("a\nb\nc\n", "a\nc\n")
	assert.Contains(t, lines, Line{Left: "b", Mark: MarkDelete})
}

func TestSideBySide_ChineseCharacters(t *testing.T) {
	lines := Compare("你好\n世界\n", "你好\n地球\n")
	out := SideBySide(lines, "* Before", "* After")
	t.Log("\n" + out)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// 标题、分隔线和两行内容
	assert.Len(t, rows, 4)
	assert.Equal(t, "你好      |  你好", rows[2])
	assert.Equal(t, "世界      ~  地球", rows[3])
}
