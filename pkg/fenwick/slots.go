package fenwick

import (
	"fmt"

	"misc_tool/pkg/treeprinter"
)

// Slot 描述一个存储槽位：保存的是逻辑区间 [Lo, Hi] 的和
type Slot[T Number] struct {
	Index int
	Lo    int
	Hi    int
	Value T
}

// Slots 返回所有槽位，Index 升序
func (t *Tree[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(t.tree))
	for i, v := range t.tree {
		out[i] = Slot[T]{Index: i, Lo: i & (i + 1), Hi: i, Value: v}
	}
	return out
}

// Forest 按更新路径组织槽位：槽位 i 的父节点是 i|(i+1)，超出长度的就是根。
// 根按下标降序排列，这样最大的区间排在最前面。
func (t *Tree[T]) Forest() []*treeprinter.Node {
	slots := t.Slots()
	nodes := make([]*treeprinter.Node, len(slots))
	for i := range slots {
		nodes[i] = &treeprinter.Node{Data: slots[i]}
	}

	var roots []*treeprinter.Node
	for i := len(nodes) - 1; i >= 0; i-- {
		parent := i | (i + 1)
		if parent >= len(nodes) {
			roots = append(roots, nodes[i])
			continue
		}
		nodes[parent].Children = append(nodes[parent].Children, nodes[i])
	}
	return roots
}

// PrintSlots 打印槽位森林，每行形如 "[7] 0..7 = 8"
func (t *Tree[T]) PrintSlots(style int) string {
	p := treeprinter.Printer{
		Style: style,
		FormatFn: func(n *treeprinter.Node) string {
			s := n.Data.(Slot[T])
			return fmt.Sprintf("[%d] %d..%d = %v", s.Index, s.Lo, s.Hi, s.Value)
		},
	}
	return p.PrintForest(t.Forest())
}
