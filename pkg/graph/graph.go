package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"misc_tool/pkg/disjointset"

	"github.com/awalterschulze/gographviz"
)

// Edge 是去掉方向后的一条边
type Edge struct {
	Src    string  `json:"src"`
	Dst    string  `json:"dst"`
	Weight float64 `json:"weight"`
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -- %s (%g)", e.Src, e.Dst, e.Weight)
}

// Parse 解析 DOT 文本
func Parse(dot string) (*gographviz.Graph, error) {
	graphAst, err := gographviz.ParseString(dot)
	if err != nil {
		return nil, fmt.Errorf("无法解析 DOT: %w", err)
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, g); err != nil {
		return nil, fmt.Errorf("无法分析 DOT 图: %w", err)
	}
	return g, nil
}

// index 给图中所有节点分配下标（节点声明顺序在前，只在边里出现的节点在后）
type index struct {
	names []string
	ids   map[string]int
}

func newIndex(g *gographviz.Graph) *index {
	ix := &index{ids: make(map[string]int)}
	add := func(name string) {
		if _, ok := ix.ids[name]; !ok {
			ix.ids[name] = len(ix.names)
			ix.names = append(ix.names, name)
		}
	}
	for _, n := range g.Nodes.Nodes {
		add(n.Name)
	}
	for _, e := range g.Edges.Edges {
		add(e.Src)
		add(e.Dst)
	}
	return ix
}

func (ix *index) disjointSet() *disjointset.DisjointSet {
	return disjointset.NewInitialized(len(ix.names))
}

// Components 把图当成无向图，返回所有连通分量。
// 分量内按名字排序，分量之间按第一个名字排序。
func Components(g *gographviz.Graph) [][]string {
	ix := newIndex(g)
	ds := ix.disjointSet()
	for _, e := range g.Edges.Edges {
		ds.Union(ix.ids[e.Src], ix.ids[e.Dst])
	}

	var out [][]string
	for _, set := range ds.Sets() {
		names := make([]string, 0, len(set))
		for _, i := range set {
			names = append(names, ix.names[i])
		}
		sort.Strings(names)
		out = append(out, names)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// RedundantEdges 按声明顺序扫描边，返回两端在扫描到它之前已经连通的边（去掉后不影响连通性）。
// 自环也算冗余边。冗余边的 weight 无法解析时返回错误。
func RedundantEdges(g *gographviz.Graph) ([]Edge, error) {
	ix := newIndex(g)
	ds := ix.disjointSet()
	var out []Edge
	for _, e := range g.Edges.Edges {
		if ds.Union(ix.ids[e.Src], ix.ids[e.Dst]) {
			continue
		}
		w, err := edgeWeight(e)
		if err != nil {
			return nil, err
		}
		out = append(out, Edge{Src: e.Src, Dst: e.Dst, Weight: w})
	}
	return out, nil
}

// edgeWeight 读取 weight 属性，没有时为 1
func edgeWeight(e *gographviz.Edge) (float64, error) {
	raw, ok := e.Attrs["weight"]
	if !ok {
		return 1, nil
	}
	raw = strings.Trim(raw, `"`)
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("边 %s -> %s 的 weight %q 不是数字: %w", e.Src, e.Dst, raw, err)
	}
	return w, nil
}

// SpanningForest 用 Kruskal 算法求最小生成森林，返回选中的边和总权重。
// 权重相同的边保持声明顺序。
func SpanningForest(g *gographviz.Graph) ([]Edge, float64, error) {
	edges := make([]Edge, 0, len(g.Edges.Edges))
	for _, e := range g.Edges.Edges {
		w, err := edgeWeight(e)
		if err != nil {
			return nil, 0, err
		}
		edges = append(edges, Edge{Src: e.Src, Dst: e.Dst, Weight: w})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	ix := newIndex(g)
	ds := ix.disjointSet()
	var (
		picked []Edge
		total  float64
	)
	for _, e := range edges {
		if ds.Union(ix.ids[e.Src], ix.ids[e.Dst]) {
			picked = append(picked, e)
			total += e.Weight
		}
	}
	return picked, total, nil
}

// FormatEdges 把边列表格式化成多行文本，方便日志和测试输出
func FormatEdges(edges []Edge) string {
	lines := make([]string, 0, len(edges))
	for _, e := range edges {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
