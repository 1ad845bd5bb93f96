package disjointset

import (
	"fmt"

	"github.com/armon/go-radix"
)

// Keyed 是以字符串为元素的并查集，容量固定。
// 键按加入顺序分配下标，键到下标的映射存在基数树里，方便按字典序和前缀遍历。
type Keyed struct {
	set   *DisjointSet
	index *radix.Tree // key -> int
	keys  []string    // 下标 -> key
}

// NewKeyed 创建容量为 capacity 的字符串并查集
func NewKeyed(capacity int) *Keyed {
	return &Keyed{
		set:   New(capacity),
		index: radix.New(),
		keys:  make([]string, 0, capacity),
	}
}

// Len 返回已经加入的键个数
func (k *Keyed) Len() int {
	return len(k.keys)
}

// Add 加入一个键，作为单元素集合，返回它的下标。
// 键已经存在时直接返回原下标，不会把它从所在集合中拆出来。
func (k *Keyed) Add(key string) (int, error) {
	if v, ok := k.index.Get(key); ok {
		return v.(int), nil
	}
	if len(k.keys) >= k.set.Len() {
		return -1, fmt.Errorf("并查集容量 %d 已满，无法加入 %q", k.set.Len(), key)
	}
	i := len(k.keys)
	k.index.Insert(key, i)
	k.keys = append(k.keys, key)
	k.set.MakeSet(i)
	return i, nil
}

func (k *Keyed) lookup(key string) (int, error) {
	v, ok := k.index.Get(key)
	if !ok {
		return -1, fmt.Errorf("未知的键 %q", key)
	}
	return v.(int), nil
}

// Union 合并两个键所在的集合，不存在的键会先自动加入。
// 容量不够放下所有新键时返回错误，两个键都不会加入。
func (k *Keyed) Union(a, b string) (bool, error) {
	need := 0
	if _, ok := k.index.Get(a); !ok {
		need++
	}
	if _, ok := k.index.Get(b); !ok && a != b {
		need++
	}
	if len(k.keys)+need > k.set.Len() {
		return false, fmt.Errorf("并查集容量 %d 已满，无法加入 %q 和 %q", k.set.Len(), a, b)
	}

	ia, err := k.Add(a)
	if err != nil {
		return false, err
	}
	ib, err := k.Add(b)
	if err != nil {
		return false, err
	}
	return k.set.Union(ia, ib), nil
}

// Find 返回键所在集合代表元的键
func (k *Keyed) Find(key string) (string, error) {
	i, err := k.lookup(key)
	if err != nil {
		return "", err
	}
	return k.keys[k.set.FindSet(i)], nil
}

// Same 判断两个键是否在同一个集合，任何一个键不存在都返回 false
func (k *Keyed) Same(a, b string) bool {
	ia, err := k.lookup(a)
	if err != nil {
		return false
	}
	ib, err := k.lookup(b)
	if err != nil {
		return false
	}
	return k.set.IsSameSet(ia, ib)
}

// Groups 返回所有集合，集合内按字典序，集合之间按各自最小的键排序
func (k *Keyed) Groups() [][]string {
	return k.GroupsWithPrefix("")
}

// GroupsWithPrefix 只统计以 prefix 开头的键，分组依据仍然是整个并查集
func (k *Keyed) GroupsWithPrefix(prefix string) [][]string {
	var out [][]string
	slot := make(map[int]int) // 代表元下标 -> out 中的位置
	k.index.WalkPrefix(prefix, func(key string, v any) bool {
		root := k.set.FindSet(v.(int))
		pos, ok := slot[root]
		if !ok {
			pos = len(out)
			slot[root] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], key)
		return false // 返回 true 会终止遍历
	})
	return out
}
