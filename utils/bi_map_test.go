package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBiMap(t *testing.T) {
	biMap, err := NewBiMap(
		Pair[string, int]{"one", 1},
		Pair[string, int]{"two", 2},
	)
	require.NoError(t, err)

	t.Run("Lookup", func(t *testing.T) {
		val, ok := biMap.Lookup("one")
		assert.True(t, ok)
		assert.Equal(t, 1, val)

		val, ok = biMap.Lookup("three")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("DirectLookup", func(t *testing.T) {
		assert.Equal(t, 2, biMap.DirectLookup("two"))
		assert.Equal(t, 0, biMap.DirectLookup("three"))
	})

	t.Run("RLookup", func(t *testing.T) {
		key, ok := biMap.RLookup(1)
		assert.True(t, ok)
		assert.Equal(t, "one", key)

		key, ok = biMap.RLookup(3)
		assert.False(t, ok)
		assert.Equal(t, "", key)
	})

	t.Run("KeysKeepOrder", func(t *testing.T) {
		assert.Equal(t, []string{"one", "two"}, biMap.Keys())
		assert.Equal(t, 2, biMap.Len())
	})

	t.Run("KeysReturnsCopy", func(t *testing.T) {
		keys := biMap.Keys()
		keys[0] = "changed"
		assert.Equal(t, []string{"one", "two"}, biMap.Keys())
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		_, err := NewBiMap(
			Pair[string, int]{"one", 1},
			Pair[string, int]{"one", 2},
		)
		assert.Error(t, err)
	})

	t.Run("DuplicateValue", func(t *testing.T) {
		_, err := NewBiMap(
			Pair[string, int]{"one", 1},
			Pair[string, int]{"uno", 1},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already mapped from one")
	})

	t.Run("MustBiMapPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustBiMap(Pair[int, int]{1, 1}, Pair[int, int]{2, 1})
		})
	})

	t.Run("EmptyMap", func(t *testing.T) {
		empty, err := NewBiMap[string, int]()
		require.NoError(t, err)

		_, ok := empty.Lookup("anything")
		assert.False(t, ok)
		_, ok = empty.RLookup(123)
		assert.False(t, ok)
		assert.Empty(t, empty.Keys())
	})
}
