package bimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consistent checks that both directions describe the same pairs.
func consistent[K, V comparable](t *testing.T, b *BiMap[K, V]) {
	t.Helper()

	require.Len(t, b.inverse, len(b.forward))
	require.Len(t, b.order, len(b.forward))

	for k, v := range b.forward {
		back, ok := b.inverse[v]
		require.True(t, ok)
		require.Equal(t, k, back)
	}
}

func TestBiMap_PutAndLookup(t *testing.T) {
	b := New[string, int64]()
	b.Put("owner", 0)
	b.Put("work", 1)

	v, ok := b.Get("work")
	require.True(t, ok)
	assert.Equal(t, int64(1), v)

	k, ok := b.Inverse(0)
	require.True(t, ok)
	assert.Equal(t, "owner", k)

	_, ok = b.Inverse(9)
	assert.False(t, ok)
	assert.Equal(t, []string{"owner", "work"}, b.Keys())
	consistent(t, b)
}

func TestBiMap_PutOverwritesKey(t *testing.T) {
	b := New[string, int]()
	b.Put("a", 1)
	b.Put("a", 2)

	_, ok := b.Inverse(1)
	assert.False(t, ok, "stale inverse entry must be dropped")
	assert.Equal(t, 1, b.Len())
	consistent(t, b)
}

func TestBiMap_PutStealsValue(t *testing.T) {
	b := New[string, int]()
	b.Put("a", 1)
	b.Put("b", 1)

	_, ok := b.Get("a")
	assert.False(t, ok, "value 1 moved to b")

	k, _ := b.Inverse(1)
	assert.Equal(t, "b", k)
	assert.Equal(t, []string{"b"}, b.Keys())
	consistent(t, b)
}

func TestBiMap_DeleteAndClear(t *testing.T) {
	b := New[string, int]()
	b.Put("a", 1)
	b.Put("b", 2)
	b.Put("c", 3)

	b.Delete("a")
	b.DeleteValue(3)
	b.Delete("missing")
	b.DeleteValue(42)

	assert.Equal(t, []string{"b"}, b.Keys())
	consistent(t, b)

	b.Clear()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Keys())
	consistent(t, b)
}
