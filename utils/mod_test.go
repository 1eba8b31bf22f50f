package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finds the first matching element", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"A", "B", "B"}, "B"), "Should return index of first match")
	})

	t.Run("returns -1 when missing", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{2, 3, 4}, 6), "Should return -1 for a missing element")
		require.False(t, Contains([]int{2, 3, 4}, 6), "Contains should agree with FindIndex")
		require.True(t, Contains([]int{2, 3, 4}, 3), "Contains should find a present element")
	})
}

func TestCount(t *testing.T) {
	t.Run("counts every occurrence", func(t *testing.T) {
		require.Equal(t, 3, Count([]int{1, 0, 1, 1}, 1), "Should count all matches")
		require.Equal(t, 0, Count([]int{}, 1), "Empty slice should count zero")
	})
}
