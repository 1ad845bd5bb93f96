package disjointset

import (
	"fmt"
	"strconv"

	"misc_tool/pkg/treeprinter"

	"github.com/awalterschulze/gographviz"
)

// Forest 按当前 parent 指针构建森林（不触发路径压缩），根按下标升序。
// 未初始化的元素不出现在森林里。
func (d *DisjointSet) Forest() []*treeprinter.Node {
	nodes := make([]*treeprinter.Node, len(d.parent))
	for i, p := range d.parent {
		if p != uninitialized {
			nodes[i] = &treeprinter.Node{Data: i}
		}
	}

	var roots []*treeprinter.Node
	for i, p := range d.parent {
		switch {
		case p == uninitialized:
		case p == i:
			roots = append(roots, nodes[i])
		default:
			nodes[p].Children = append(nodes[p].Children, nodes[i])
		}
	}
	return roots
}

// PrintForest 把森林打印成文本，根节点带上 rank
//
//	0 (rank=1)
//	└── 1
func (d *DisjointSet) PrintForest(style int) string {
	p := treeprinter.Printer{
		Style: style,
		FormatFn: func(n *treeprinter.Node) string {
			i := n.Data.(int)
			if d.parent[i] == i {
				return fmt.Sprintf("%d (rank=%d)", i, d.rank[i])
			}
			return strconv.Itoa(i)
		},
	}
	return p.PrintForest(d.Forest())
}

// DOT 导出为 Graphviz 有向图，边从子节点指向父节点，根节点画成双圈
func (d *DisjointSet) DOT(name string) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	for i, p := range d.parent {
		if p == uninitialized {
			continue
		}
		attrs := map[string]string{"label": strconv.Quote(strconv.Itoa(i))}
		if p == i {
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode(name, nodeID(i), attrs); err != nil {
			return "", fmt.Errorf("添加节点 %d 失败: %w", i, err)
		}
	}
	for i, p := range d.parent {
		if p == uninitialized || p == i {
			continue
		}
		if err := g.AddEdge(nodeID(i), nodeID(p), true, nil); err != nil {
			return "", fmt.Errorf("添加边 %d -> %d 失败: %w", i, p, err)
		}
	}
	return g.String(), nil
}

func nodeID(i int) string {
	return "n" + strconv.Itoa(i)
}
