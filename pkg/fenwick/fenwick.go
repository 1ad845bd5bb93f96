// Package fenwick 实现树状数组（Fenwick Tree / Binary Indexed Tree）。
//
// 存储是 0-based 的：槽位 i 保存区间 [i&(i+1), i] 的和。
// 单点增量 Add 向上沿 i = i|(i+1) 更新，前缀和沿 i = (i&(i+1))-1 向下累加，都是 O(log n)。
// 只提供相对增量和区间求和，不提供单点赋值。
package fenwick

import (
	"fmt"
	"sort"

	"misc_tool/pkg/errorutil"

	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"
)

// Number 是树状数组支持的元素类型
type Number interface {
	constraints.Integer | constraints.Float
}

// Tree 是元素类型为 T 的树状数组
type Tree[T Number] struct {
	tree []T
}

// FenwickTree 是最常用的 int 版本
type FenwickTree = Tree[int]

// New 创建长度为 size 的 int 树状数组，所有位置为 0
func New(size int) *FenwickTree {
	return NewOf[int](size)
}

// NewOf 创建长度为 size、元素类型为 T 的树状数组
func NewOf[T Number](size int) *Tree[T] {
	if size < 0 {
		panic(fmt.Sprintf("fenwick.NewOf: negative size %d", size))
	}
	return &Tree[T]{tree: make([]T, size)}
}

// FromSlice 用已有数组 O(n) 建树，values 本身不会被修改
func FromSlice[T Number](values []T) *Tree[T] {
	t := &Tree[T]{tree: make([]T, len(values))}
	copy(t.tree, values)
	for i := range t.tree {
		// 每个槽位把自己的和推给唯一的上级槽位
		if j := i | (i + 1); j < len(t.tree) {
			t.tree[j] += t.tree[i]
		}
	}
	return t
}

// Len 返回逻辑数组长度
func (t *Tree[T]) Len() int {
	return len(t.tree)
}

// Add 给 place 位置加上 incVal，incVal 可以为负
func (t *Tree[T]) Add(place int, incVal T) {
	errorutil.CheckIndex("Add", place, len(t.tree))
	for i := place; i < len(t.tree); i = i | (i + 1) {
		t.tree[i] += incVal
	}
}

// PrefixSum 返回 [0, to] 的和，to == -1 表示空区间返回 0
func (t *Tree[T]) PrefixSum(to int) T {
	if to != -1 {
		errorutil.CheckIndex("PrefixSum", to, len(t.tree))
	}
	var sum T
	for i := to; i >= 0; i = (i & (i + 1)) - 1 {
		sum += t.tree[i]
	}
	return sum
}

// Sum 返回闭区间 [from, to] 的和。
// from 和 to 都必须在 [0, size) 内，from > to 时是空区间返回 0；
// 唯一的例外是 Sum(0, -1)，表示空前缀，size 为 0 时也可以用。
func (t *Tree[T]) Sum(from, to int) T {
	if from == 0 && to == -1 {
		return 0
	}
	errorutil.CheckIndex("Sum", from, len(t.tree))
	errorutil.CheckIndex("Sum", to, len(t.tree))
	if from > to {
		return 0
	}
	if from == 0 {
		return t.PrefixSum(to)
	}
	return t.PrefixSum(to) - t.PrefixSum(from-1)
}

// Total 返回所有位置的和
func (t *Tree[T]) Total() T {
	return t.PrefixSum(len(t.tree) - 1)
}

// Search 返回前缀和第一次 >= target 的最小下标，找不到返回 -1。
// 要求所有逻辑值非负，这样前缀和单调不减。
func (t *Tree[T]) Search(target T) int {
	n := len(t.tree)
	i := sort.Search(n, func(i int) bool {
		return t.PrefixSum(i) >= target
	})
	if i == n {
		return -1
	}
	return i
}

// Clone 深拷贝一份
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{tree: deepcopy.Copy(t.tree).([]T)}
}
