package treeprinter

import (
	"fmt"
	"strings"
)

// 打印风格
const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// Node 是多叉树的节点，Data 可以是任意类型
type Node struct {
	Data     any
	Children []*Node
}

// Printer 是森林打印器的配置
type Printer struct {
	Style    int               // 0 = ascii, 1 = unicode
	FormatFn func(*Node) string // 可选的自定义格式化函数，为空时用 %v 打印 Data
}

type glyphs struct {
	last   string
	branch string
	space  string
}

func (p Printer) glyphs() glyphs {
	if p.Style == StyleUnicode {
		return glyphs{last: "└── ", branch: "├── ", space: "│   "}
	}
	return glyphs{last: "'-- ", branch: "|-- ", space: "|   "}
}

func (p Printer) label(n *Node) string {
	if p.FormatFn != nil {
		return p.FormatFn(n)
	}
	return fmt.Sprintf("%v", n.Data)
}

// PrintTree 打印一棵树，根节点单独一行，子节点按连接符缩进
func (p Printer) PrintTree(root *Node) string {
	if root == nil {
		return "tree is empty\n"
	}
	var b strings.Builder
	p.write(&b, root)
	return b.String()
}

// PrintForest 依次打印森林中的每一棵树
func (p Printer) PrintForest(roots []*Node) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}
	var b strings.Builder
	for _, r := range roots {
		p.write(&b, r)
	}
	return b.String()
}

func (p Printer) write(b *strings.Builder, root *Node) {
	g := p.glyphs()
	b.WriteString(p.label(root))
	b.WriteByte('\n')

	// 用显式栈代替递归，森林可能很深（未压缩的并查集链）
	type frame struct {
		node   *Node
		prefix string
		isLast bool
	}
	var stack []frame
	push := func(children []*Node, prefix string) {
		// 倒序入栈，保证出栈顺序和 Children 一致
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], prefix, i == len(children)-1})
		}
	}
	push(root.Children, "")

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node == nil {
			continue
		}

		connector, childPrefix := g.branch, top.prefix+g.space
		if top.isLast {
			connector, childPrefix = g.last, top.prefix+"    "
		}
		fmt.Fprintf(b, "%s%s%s\n", top.prefix, connector, p.label(top.node))
		push(top.node.Children, childPrefix)
	}
}

// PrintForest 使用默认 FormatFn 的快捷方式
func PrintForest(roots []*Node, style int) string {
	return Printer{Style: style}.PrintForest(roots)
}
