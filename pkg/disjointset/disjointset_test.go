package disjointset

import (
	"math/rand"
	"testing"

	"misc_tool/pkg/errorutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllMade(n int) *DisjointSet {
	d := New(n)
	for i := 0; i < n; i++ {
		d.MakeSet(i)
	}
	return d
}

func TestDisjointSet_Scenario(t *testing.T) {
	d := newAllMade(5)

	d.Union(0, 1)
	d.Union(2, 3)
	assert.Equal(t, d.FindSet(0), d.FindSet(1))
	assert.Equal(t, d.FindSet(2), d.FindSet(3))
	assert.NotEqual(t, d.FindSet(0), d.FindSet(4))
	assert.NotEqual(t, d.FindSet(0), d.FindSet(2))

	d.Union(1, 3)
	assert.Equal(t, d.FindSet(0), d.FindSet(2))
	assert.True(t, d.IsSameSet(1, 2))
	assert.False(t, d.IsSameSet(4, 0))
}

func TestMakeSet_IsOwnRoot(t *testing.T) {
	d := New(3)
	for i := 0; i < 3; i++ {
		assert.False(t, d.Initialized(i))
		d.MakeSet(i)
		assert.True(t, d.Initialized(i))
		assert.Equal(t, i, d.FindSet(i))
	}
}

func TestUnion_TieMakesSecondRootParent(t *testing.T) {
	d := newAllMade(2)

	require.True(t, d.Union(0, 1))
	assert.Equal(t, 1, d.FindSet(0))
	assert.Equal(t, 1, d.rank[1])
	assert.Equal(t, 0, d.rank[0])
}

func TestUnion_ByRank(t *testing.T) {
	d := newAllMade(3)
	d.Union(0, 1) // 1 成为根，rank=1

	// 2 的秩更小，不管参数顺序都挂到 1 下面
	d.Union(1, 2)
	assert.Equal(t, 1, d.parent[2])
	assert.Equal(t, 1, d.rank[1])
}

func TestUnion_SameSetIsNoop(t *testing.T) {
	d := newAllMade(4)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(1, 3)

	parents := append([]int(nil), d.parent...)
	ranks := append([]int(nil), d.rank...)

	// 自己和自己、已经连通的两个元素
	assert.False(t, d.Union(3, 3))
	assert.False(t, d.Union(1, 3))
	assert.False(t, d.Union(0, 2))

	assert.Equal(t, ranks, d.rank)
	// FindSet 可能压缩路径，但是根不变
	for i := range parents {
		assert.Equal(t, 3, d.FindSet(i))
	}
}

func TestFindSet_PathCompression(t *testing.T) {
	d := newAllMade(4)
	d.Union(0, 1) // 0 -> 1
	d.Union(2, 3) // 2 -> 3
	d.Union(1, 3) // 1 -> 3，此时 0 -> 1 -> 3

	require.Equal(t, 1, d.parent[0])
	assert.Equal(t, 3, d.FindSet(0))
	assert.Equal(t, 3, d.parent[0], "路径压缩后 0 应该直接指向根")
	assert.Equal(t, 2, d.rank[3])
}

func TestFindSet_RootIsFixedPoint(t *testing.T) {
	d := newAllMade(10)
	for _, p := range [][2]int{{0, 1}, {2, 3}, {1, 3}, {5, 6}, {7, 5}, {9, 8}} {
		d.Union(p[0], p[1])
	}
	for i := 0; i < 10; i++ {
		r := d.FindSet(i)
		assert.Equal(t, r, d.FindSet(r), "index %d", i)
	}
}

func TestUnion_IdempotentForConnectivity(t *testing.T) {
	d := newAllMade(6)
	d.Union(0, 1)
	d.Union(2, 1)
	before := make([]int, 6)
	for i := range before {
		before[i] = d.FindSet(i)
	}

	d.Union(0, 1)
	d.Union(2, 1)
	for i := range before {
		assert.Equal(t, before[i], d.FindSet(i))
	}
}

// 随机合并后和朴素的连通分量标号比较
func TestDisjointSet_MatchesNaiveLabels(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	d := newAllMade(n)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 300; step++ {
		x, y := rng.Intn(n), rng.Intn(n)
		merged := d.Union(x, y)
		assert.Equal(t, label[x] != label[y], merged)
		relabel(label[x], label[y])

		if step%25 == 0 {
			for i := 0; i < n; i++ {
				j := rng.Intn(n)
				assert.Equal(t, label[i] == label[j], d.IsSameSet(i, j), "%d vs %d", i, j)
			}
		}
	}

	groups := make(map[int]bool)
	for _, l := range label {
		groups[l] = true
	}
	assert.Equal(t, len(groups), d.Count())
}

func TestMakeSet_DetachesOnlyItself(t *testing.T) {
	d := newAllMade(3)
	d.Union(0, 1) // 0 -> 1
	d.Union(2, 1) // 2 -> 1

	d.MakeSet(0)
	assert.Equal(t, 0, d.FindSet(0))
	assert.False(t, d.IsSameSet(0, 1))
	assert.True(t, d.IsSameSet(1, 2))
}

func TestSetSize_AfterMakeSet(t *testing.T) {
	d := newAllMade(5)
	d.Union(0, 1) // 0 -> 1
	d.Union(2, 3) // 2 -> 3
	d.Union(1, 3) // 1 -> 3，0 经过 1 到 3
	assert.Equal(t, 4, d.SetSize(2))

	// 1 带着 0 离开 3 所在的集合
	d.MakeSet(1)
	assert.Equal(t, 2, d.SetSize(0))
	assert.Equal(t, 2, d.SetSize(1))
	assert.Equal(t, 2, d.SetSize(3))
	assert.Equal(t, 1, d.SetSize(4))

	// 对根调用 MakeSet 不改变集合成员
	d.MakeSet(3)
	assert.Equal(t, 2, d.SetSize(2))
}

// 随机的 Union / MakeSet 之后，SetSize 和 Sets 统计出的个数一致
func TestSetSize_MatchesSets(t *testing.T) {
	const n = 60
	rng := rand.New(rand.NewSource(3))
	d := New(n)
	for step := 0; step < 500; step++ {
		x, y := rng.Intn(n), rng.Intn(n)
		switch {
		case !d.Initialized(x):
			d.MakeSet(x)
		case step%9 == 0:
			d.MakeSet(x)
		case d.Initialized(y):
			d.Union(x, y)
		}

		if step%20 == 0 {
			for _, set := range d.Sets() {
				for _, e := range set {
					require.Equal(t, len(set), d.SetSize(e), "step %d element %d", step, e)
				}
			}
		}
	}
}

func TestDisjointSet_Panics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *DisjointSet)
		want string
	}{
		{"MakeSet 越界", func(d *DisjointSet) { d.MakeSet(3) }, "MakeSet: index 3 out of range [0, 3)"},
		{"MakeSet 负数", func(d *DisjointSet) { d.MakeSet(-1) }, "MakeSet: index -1 out of range [0, 3)"},
		{"FindSet 越界", func(d *DisjointSet) { d.FindSet(7) }, "FindSet: index 7 out of range [0, 3)"},
		{"FindSet 未初始化", func(d *DisjointSet) { d.FindSet(2) }, "FindSet: index 2 is not initialized by MakeSet (size 3)"},
		{"Union 未初始化", func(d *DisjointSet) { d.Union(0, 2) }, "FindSet: index 2 is not initialized by MakeSet (size 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(3)
			d.MakeSet(0)
			d.MakeSet(1)
			require.PanicsWithError(t, tt.want, func() { tt.fn(d) })
		})
	}
}

func TestDisjointSet_PanicValueIsIndexError(t *testing.T) {
	d := New(1)
	defer func() {
		r := recover()
		ie, ok := r.(*errorutil.IndexError)
		require.True(t, ok, "panic 值应该是 *errorutil.IndexError, got %T", r)
		assert.Equal(t, "FindSet", ie.Op)
		assert.Equal(t, 5, ie.Index)
		assert.Equal(t, 1, ie.Size)
	}()
	d.FindSet(5)
}

func TestNewInitialized(t *testing.T) {
	d := NewInitialized(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.FindSet(i))
	}
}

func TestCountSizeAndSets(t *testing.T) {
	d := New(7)
	for i := 0; i < 6; i++ { // 6 保持未初始化
		d.MakeSet(i)
	}
	d.Union(0, 3)
	d.Union(4, 3)
	d.Union(1, 5)

	assert.Equal(t, 3, d.Count())
	assert.Equal(t, 3, d.SetSize(0))
	assert.Equal(t, 2, d.SetSize(5))
	assert.Equal(t, 1, d.SetSize(2))

	want := [][]int{{2}, {0, 3, 4}, {1, 5}}
	if diff := cmp.Diff(want, d.Sets()); diff != "" {
		t.Errorf("Sets() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "DisjointSet{[2] [0 3 4] [1 5]}", d.String())
}

func TestClone_Independent(t *testing.T) {
	d := newAllMade(4)
	d.Union(0, 1)

	c := d.Clone()
	c.Union(2, 3)
	c.MakeSet(0)

	assert.False(t, d.IsSameSet(2, 3))
	assert.True(t, d.IsSameSet(0, 1))
	assert.True(t, c.IsSameSet(2, 3))
	assert.False(t, c.IsSameSet(0, 1))
}

func TestEmptyDisjointSet(t *testing.T) {
	d := New(0)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Count())
	assert.Empty(t, d.Sets())
	assert.Equal(t, "DisjointSet{}", d.String())
	assert.Panics(t, func() { d.MakeSet(0) })
}
