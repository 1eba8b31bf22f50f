package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const emptyRow = "......."

func mustParse(t *testing.T, board string) State {
	t.Helper()
	s, err := Parse(board)
	require.NoError(t, err, "Fixture board should parse")
	return s
}

// drawBoard is full with no four-in-a-row for either player
const drawBoard = "xxooxxo/ooxxoox/xxooxxo/ooxxoox/xxooxxo/ooxxoox"

func TestLegalMoves(t *testing.T) {
	t.Run("empty board allows every column in ascending order", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, NewState().LegalMoves(), "All seven columns should be legal")
	})

	t.Run("full column is excluded", func(t *testing.T) {
		s := NewState()
		var err error
		for i := 0; i < Rows; i++ {
			s, err = s.Play(2)
			require.NoError(t, err, "Column should accept six pieces")
		}

		require.Equal(t, []int{0, 1, 3, 4, 5, 6}, s.LegalMoves(), "Filled column should not be legal")
		require.False(t, s.IsLegal(2), "Filled column should not be legal")
	})

	t.Run("full board has no legal moves", func(t *testing.T) {
		s := mustParse(t, drawBoard)

		require.Empty(t, s.LegalMoves(), "Full board should have no legal moves")
	})
}

func TestApply(t *testing.T) {
	t.Run("pieces fall to the lowest empty cell", func(t *testing.T) {
		s, err := NewState().Apply(3, PlayerOne)
		require.NoError(t, err)
		s, err = s.Apply(3, PlayerTwo)
		require.NoError(t, err)

		require.Equal(t, PlayerOne, s.Cell(Rows-1, 3), "First piece should land on the bottom row")
		require.Equal(t, PlayerTwo, s.Cell(Rows-2, 3), "Second piece should stack on the first")
		require.Equal(t, Empty, s.Cell(Rows-3, 3), "Cells above the stack should stay empty")
	})

	t.Run("turn passes to the opponent of the mover", func(t *testing.T) {
		s, err := NewState().Apply(0, PlayerTwo)
		require.NoError(t, err)

		require.Equal(t, PlayerOne, s.Player(), "Opponent of the mover should be to move")
	})

	t.Run("original state is not mutated", func(t *testing.T) {
		s := NewState()
		_, err := s.Play(4)
		require.NoError(t, err)

		require.Equal(t, Empty, s.Cell(Rows-1, 4), "Applying a move should return a new copy")
		require.Equal(t, PlayerOne, s.Player(), "Applying a move should return a new copy")
	})

	t.Run("full column is an illegal move", func(t *testing.T) {
		s := mustParse(t, "x....../o....../x....../o....../x....../o......")

		_, err := s.Play(0)

		require.ErrorIs(t, err, ErrIllegalMove, "Full column should be rejected")
		var illegal *IllegalMoveError
		require.True(t, errors.As(err, &illegal), "Error should be an IllegalMoveError")
		require.Equal(t, 0, illegal.Column, "Error should report the column")
	})

	t.Run("out of range column is an illegal move", func(t *testing.T) {
		_, err := NewState().Play(Columns)

		require.ErrorIs(t, err, ErrIllegalMove, "Nonexistent column should be rejected")
	})
}

func TestFromRows(t *testing.T) {
	t.Run("rejects wrong row count", func(t *testing.T) {
		_, err := FromRows(make([][]int, 5))

		var shape *InvalidBoardShapeError
		require.ErrorAs(t, err, &shape, "Five rows should be an invalid shape")
		require.Equal(t, 5, shape.Rows, "Error should report the row count")
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		rows := NewState().Rows()
		rows[2] = make([]int, 8)

		_, err := FromRows(rows)

		var shape *InvalidBoardShapeError
		require.ErrorAs(t, err, &shape, "An eight-cell row should be an invalid shape")
		require.Equal(t, 8, shape.Columns, "Error should report the malformed row length")
	})

	t.Run("rejects unknown cell values", func(t *testing.T) {
		rows := NewState().Rows()
		rows[5][0] = 3

		_, err := FromRows(rows)

		require.ErrorIs(t, err, ErrInvalidCell, "Cell value 3 should be rejected")
	})

	t.Run("player one is to move", func(t *testing.T) {
		rows := NewState().Rows()
		rows[5][0] = 2

		s, err := FromRows(rows)

		require.NoError(t, err)
		require.Equal(t, PlayerOne, s.Player(), "Caller boards are always from player one's perspective")
		require.Equal(t, rows, s.Rows(), "Rows should round trip")
	})
}

func TestParse(t *testing.T) {
	t.Run("string form round trips", func(t *testing.T) {
		s := mustParse(t, "......./......./......./......./...o.../..xx...")

		require.Equal(t, "......./......./......./......./...o.../..xx...", s.String(), "Parse and String should agree")
		require.Equal(t, PlayerTwo, s.Cell(4, 3))
		require.Equal(t, PlayerOne, s.Cell(5, 2))
	})

	t.Run("numeric cells are accepted", func(t *testing.T) {
		s := mustParse(t, "0000000/0000000/0000000/0000000/0000000/1200000")

		require.Equal(t, PlayerOne, s.Cell(5, 0))
		require.Equal(t, PlayerTwo, s.Cell(5, 1))
	})

	t.Run("unknown characters are rejected", func(t *testing.T) {
		_, err := Parse("......./......./......./......./......./..z....")

		require.ErrorIs(t, err, ErrInvalidCell, "Unknown cell character should be rejected")
	})
}

func TestSwap(t *testing.T) {
	t.Run("exchanges pieces and player to move", func(t *testing.T) {
		s := mustParse(t, "......./......./......./......./......./xo.....")

		swapped := s.Swap()

		require.Equal(t, PlayerTwo, swapped.Cell(5, 0), "Player one's piece should become player two's")
		require.Equal(t, PlayerOne, swapped.Cell(5, 1), "Player two's piece should become player one's")
		require.Equal(t, Empty, swapped.Cell(5, 2), "Empty cells should stay empty")
		require.Equal(t, PlayerTwo, swapped.Player(), "Player to move should be swapped")
		require.Equal(t, s, swapped.Swap(), "Swapping twice should restore the state")
	})
}
