package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	t.Run("maps columns to letters", func(t *testing.T) {
		require.Equal(t, "A", ColumnLetter(0))
		require.Equal(t, "D", ColumnLetter(3))
		require.Equal(t, "G", ColumnLetter(6))
	})

	t.Run("panics outside the board", func(t *testing.T) {
		require.Panics(t, func() { ColumnLetter(Columns) }, "Column 7 does not exist")
	})
}

func TestParseColumn(t *testing.T) {
	t.Run("inverts ColumnLetter case-insensitively", func(t *testing.T) {
		for col := 0; col < Columns; col++ {
			got, err := ParseColumn(ColumnLetter(col))
			require.NoError(t, err)
			require.Equal(t, col, got, "Letter should map back to its column")
		}
		got, err := ParseColumn("c")
		require.NoError(t, err)
		require.Equal(t, 2, got, "Lower case letters should be accepted")
	})

	t.Run("rejects letters outside A-G", func(t *testing.T) {
		_, err := ParseColumn("H")

		require.ErrorIs(t, err, ErrInvalidColumn)
	})
}
