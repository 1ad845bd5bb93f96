// Package disjointset 实现固定大小的并查集（按秩合并 + 路径压缩）。
//
// 元素是 [0, size) 内的整数下标。和大多数实现不同，New 不会自动把每个元素初始化成单元素集合，
// 使用前必须对元素调用 MakeSet（或者直接使用 NewInitialized）。对未初始化元素做查询或合并会 panic。
//
// 结构不是并发安全的：FindSet 会做路径压缩，也属于写操作，多个 goroutine 使用时需要外部加锁。
package disjointset

import (
	"fmt"
	"strings"

	"misc_tool/pkg/errorutil"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/mohae/deepcopy"
)

// uninitialized 标记从未调用过 MakeSet 的元素
const uninitialized = -1

// DisjointSet 是并查集结构
type DisjointSet struct {
	parent []int // 根节点满足 parent[i] == i
	rank   []int // 树高上界，只对根节点有意义
	size   []int // 集合元素个数，只对根节点有意义
}

// New 创建元素范围为 [0, size) 的并查集，此时还没有任何集合
func New(size int) *DisjointSet {
	if size < 0 {
		panic(fmt.Sprintf("disjointset.New: negative size %d", size))
	}
	parent := make([]int, size)
	for i := range parent {
		parent[i] = uninitialized
	}
	return &DisjointSet{parent: parent, rank: make([]int, size), size: make([]int, size)}
}

// NewInitialized 创建并查集并把每个元素都初始化成单元素集合
func NewInitialized(size int) *DisjointSet {
	d := New(size)
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len 返回元素个数
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// MakeSet 把 x 重置为只包含自己的集合。
// 只改写 x 自己的 parent 和 rank，原先挂在 x 下面的元素仍然指向 x。
func (d *DisjointSet) MakeSet(x int) {
	errorutil.CheckIndex("MakeSet", x, len(d.parent))
	old := d.parent[x]
	d.parent[x] = x
	d.rank[x] = 0
	switch {
	case old == uninitialized:
		d.size[x] = 1
	case old != x:
		// x 带着挂在它下面的元素一起离开了原来的集合，两边的个数都变了
		d.recountSizes()
	}
}

// recountSizes 按 parent 指针重新统计每个根的集合大小，不做路径压缩
func (d *DisjointSet) recountSizes() {
	for i, p := range d.parent {
		if p == i {
			d.size[i] = 0
		}
	}
	for i, p := range d.parent {
		if p == uninitialized {
			continue
		}
		root := i
		for d.parent[root] != root {
			root = d.parent[root]
		}
		d.size[root]++
	}
}

// Initialized 判断 x 是否调用过 MakeSet
func (d *DisjointSet) Initialized(x int) bool {
	errorutil.CheckIndex("Initialized", x, len(d.parent))
	return d.parent[x] != uninitialized
}

func (d *DisjointSet) mustInit(op string, x int) {
	errorutil.CheckIndex(op, x, len(d.parent))
	if d.parent[x] == uninitialized {
		panic(&errorutil.IndexError{Op: op, Index: x, Size: len(d.parent), Reason: "is not initialized by MakeSet"})
	}
}

// FindSet 返回 x 所在集合的代表元（根节点），同时把路径上每个节点直接挂到根上
func (d *DisjointSet) FindSet(x int) int {
	d.mustInit("FindSet", x)

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 第二遍压缩路径
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}
	return root
}

// Union 合并 x 和 y 所在的集合（按秩合并）。
// 秩小的根挂到秩大的根下面；秩相同时 y 的根做父节点并且秩加一。
// 已经在同一个集合时什么都不做，返回 false。
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.FindSet(x)
	rootY := d.FindSet(y)
	if rootX == rootY {
		return false // 已经在同一个集合，不能动 rank
	}

	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
		d.size[rootY] += d.size[rootX]
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
		d.size[rootX] += d.size[rootY]
	default:
		d.parent[rootX] = rootY
		d.size[rootY] += d.size[rootX]
		d.rank[rootY]++
	}
	return true
}

// IsSameSet 判断两个元素是否在同一个集合
func (d *DisjointSet) IsSameSet(x, y int) bool {
	return d.FindSet(x) == d.FindSet(y)
}

// Count 返回已初始化元素构成的集合个数，O(n)
func (d *DisjointSet) Count() int {
	n := 0
	for i, p := range d.parent {
		if p == i {
			n++
		}
	}
	return n
}

// SetSize 返回 x 所在集合的元素个数
func (d *DisjointSet) SetSize(x int) int {
	return d.size[d.FindSet(x)]
}

// Sets 返回所有集合，按代表元升序排列，集合内元素升序
func (d *DisjointSet) Sets() [][]int {
	byRoot := treemap.NewWithIntComparator()
	for i, p := range d.parent {
		if p == uninitialized {
			continue
		}
		root := d.FindSet(i)
		members, _ := byRoot.Get(root)
		if members == nil {
			byRoot.Put(root, []int{i})
			continue
		}
		byRoot.Put(root, append(members.([]int), i))
	}

	out := make([][]int, 0, byRoot.Size())
	byRoot.Each(func(_ any, members any) {
		out = append(out, members.([]int))
	})
	return out
}

// Clone 深拷贝一份，之后两者互不影响
func (d *DisjointSet) Clone() *DisjointSet {
	return &DisjointSet{
		parent: deepcopy.Copy(d.parent).([]int),
		rank:   deepcopy.Copy(d.rank).([]int),
		size:   deepcopy.Copy(d.size).([]int),
	}
}

// String 格式化成可读字符串，比如 DisjointSet{[0 1] [2 3] [4]}
func (d *DisjointSet) String() string {
	var b strings.Builder
	b.WriteString("DisjointSet{")
	for i, set := range d.Sets() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", set)
	}
	b.WriteString("}")
	return b.String()
}
