package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyed_UnionFind(t *testing.T) {
	k := NewKeyed(8)

	for _, pair := range [][2]string{
		{"cart", "car"},
		{"dog", "cat"},
		{"car", "bus"},
	} {
		ok, err := k.Union(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 5, k.Len())

	assert.True(t, k.Same("cart", "bus"))
	assert.True(t, k.Same("cat", "dog"))
	assert.False(t, k.Same("cat", "car"))
	assert.False(t, k.Same("cat", "unknown"))

	// 再次合并已经连通的键不算合并
	ok, err := k.Union("bus", "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	rep1, err := k.Find("cart")
	require.NoError(t, err)
	rep2, err := k.Find("bus")
	require.NoError(t, err)
	assert.Equal(t, rep1, rep2)

	_, err = k.Find("nope")
	assert.Error(t, err)
}

func TestKeyed_AddIsIdempotent(t *testing.T) {
	k := NewKeyed(2)
	i, err := k.Add("a")
	require.NoError(t, err)
	j, err := k.Add("a")
	require.NoError(t, err)
	assert.Equal(t, i, j)
	assert.Equal(t, 1, k.Len())
}

func TestKeyed_Capacity(t *testing.T) {
	k := NewKeyed(2)
	_, err := k.Union("a", "b")
	require.NoError(t, err)

	_, err = k.Add("c")
	assert.ErrorContains(t, err, "已满")

	_, err = k.Union("a", "c")
	assert.Error(t, err)
}

func TestKeyed_UnionFullLeavesNoKey(t *testing.T) {
	k := NewKeyed(3)
	_, err := k.Add("a")
	require.NoError(t, err)
	_, err = k.Add("b")
	require.NoError(t, err)

	// 只剩一个空位，x 和 y 都放不下时一个也不加入
	_, err = k.Union("x", "y")
	assert.ErrorContains(t, err, "已满")
	assert.Equal(t, 2, k.Len())
	_, err = k.Find("x")
	assert.Error(t, err)

	// 同一个新键只占一个位置
	merged, err := k.Union("z", "z")
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 3, k.Len())

	merged, err = k.Union("a", "z")
	require.NoError(t, err)
	assert.True(t, merged)
}

func TestKeyed_Groups(t *testing.T) {
	k := NewKeyed(10)
	for _, pair := range [][2]string{
		{"car", "cart"},
		{"cat", "dog"},
		{"apple", "cart"},
		{"zebra", "zebra"},
	} {
		_, err := k.Union(pair[0], pair[1])
		require.NoError(t, err)
	}

	assert.Equal(t, [][]string{
		{"apple", "car", "cart"},
		{"cat", "dog"},
		{"zebra"},
	}, k.Groups())

	// 前缀过滤只影响列出的键，不影响分组
	assert.Equal(t, [][]string{
		{"car", "cart"},
		{"cat"},
	}, k.GroupsWithPrefix("ca"))

	assert.Empty(t, k.GroupsWithPrefix("x"))
}
