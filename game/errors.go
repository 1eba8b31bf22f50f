package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidCell   = errors.New("invalid cell value")
	ErrInvalidColumn = errors.New("invalid column")
)

// InvalidBoardShapeError reports a board matrix that is not exactly 6x7.
type InvalidBoardShapeError struct {
	Rows    int
	Columns int // Length of the first malformed row, 0 when the row count is wrong
}

func (e *InvalidBoardShapeError) Error() string {
	if e.Rows != Rows {
		return fmt.Sprintf("invalid board shape: got %d rows, want %d", e.Rows, Rows)
	}
	return fmt.Sprintf("invalid board shape: got a row of %d columns, want %d", e.Columns, Columns)
}

// IllegalMoveError reports a move into a full or nonexistent column.
type IllegalMoveError struct {
	Column int
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: column %d is not playable", e.Column)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
