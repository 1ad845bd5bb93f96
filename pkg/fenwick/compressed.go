package fenwick

import (
	"fmt"
	"sort"

	"github.com/google/btree"
)

// Compressed 是建立在一组固定 int64 键上的树状数组（坐标压缩）。
// 键在创建时确定，之后只能对这些键做增量。
type Compressed[T Number] struct {
	keys []int64 // 升序、无重复
	tree *Tree[T]
}

// NewCompressed 用给定的键创建，键可以无序、可以重复
func NewCompressed[T Number](keys []int64) *Compressed[T] {
	set := btree.NewOrderedG[int64](8)
	for _, k := range keys {
		set.ReplaceOrInsert(k)
	}

	sorted := make([]int64, 0, set.Len())
	set.Ascend(func(k int64) bool {
		sorted = append(sorted, k)
		return true
	})
	return &Compressed[T]{keys: sorted, tree: NewOf[T](len(sorted))}
}

// Keys 返回升序的键，调用方不要修改
func (c *Compressed[T]) Keys() []int64 {
	return c.keys
}

// Len 返回不同键的个数
func (c *Compressed[T]) Len() int {
	return len(c.keys)
}

func (c *Compressed[T]) position(key int64) (int, bool) {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] >= key })
	return i, i < len(c.keys) && c.keys[i] == key
}

// Add 给 key 加上 v，key 不在创建时的键集合中返回错误
func (c *Compressed[T]) Add(key int64, v T) error {
	i, ok := c.position(key)
	if !ok {
		return fmt.Errorf("键 %d 不在压缩键集合中", key)
	}
	c.tree.Add(i, v)
	return nil
}

// Sum 返回键落在闭区间 [lo, hi] 内的所有值之和，lo > hi 返回 0
func (c *Compressed[T]) Sum(lo, hi int64) T {
	if lo > hi {
		return 0
	}
	from, _ := c.position(lo)
	// 第一个 > hi 的位置减一
	to := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] > hi }) - 1
	if from > to {
		return 0
	}
	return c.tree.Sum(from, to)
}
