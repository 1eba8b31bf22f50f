package game

import (
	"fmt"
	"strings"
)

// State is an immutable board snapshot plus the player to move.
// Operations on State always return a new copy.
type State struct {
	grid   Grid
	player Player
}

// NewState returns an empty board with player one to move.
func NewState() State {
	return State{player: PlayerOne}
}

func NewStateFromGrid(grid Grid, player Player) State {
	return State{grid: grid, player: player}
}

// FromRows builds a state from a caller-supplied matrix of 0, 1 and 2 values.
// Player one is always to move.
func FromRows(rows [][]int) (State, error) {
	if len(rows) != Rows {
		return State{}, &InvalidBoardShapeError{Rows: len(rows)}
	}
	for _, row := range rows {
		if len(row) != Columns {
			return State{}, &InvalidBoardShapeError{Rows: len(rows), Columns: len(row)}
		}
	}

	var grid Grid
	for r, row := range rows {
		for c, v := range row {
			p := Player(v)
			if p != Empty && p != PlayerOne && p != PlayerTwo {
				return State{}, fmt.Errorf("row %d column %d holds %d: %w", r, c, v, ErrInvalidCell)
			}
			grid[r][c] = p
		}
	}
	return State{grid: grid, player: PlayerOne}, nil
}

// Parse reads a board written as six rows separated by '/', top row first.
// Cells are '0' or '.' for empty, '1' or 'x' for player one, '2' or 'o' for player two.
func Parse(board string) (State, error) {
	lines := strings.Split(strings.TrimSpace(board), "/")
	rows := make([][]int, len(lines))
	for r, line := range lines {
		line = strings.TrimSpace(line)
		rows[r] = make([]int, 0, len(line))
		for _, ch := range strings.ToLower(line) {
			switch ch {
			case '0', '.':
				rows[r] = append(rows[r], int(Empty))
			case '1', 'x':
				rows[r] = append(rows[r], int(PlayerOne))
			case '2', 'o':
				rows[r] = append(rows[r], int(PlayerTwo))
			default:
				return State{}, fmt.Errorf("row %d holds %q: %w", r, ch, ErrInvalidCell)
			}
		}
	}
	return FromRows(rows)
}

func (s State) Player() Player {
	return s.player
}

func (s State) Grid() Grid {
	return s.grid
}

func (s State) Cell(row, col int) Player {
	return s.grid[row][col]
}

// Rows converts the grid back into the caller-facing matrix form.
func (s State) Rows() [][]int {
	rows := make([][]int, Rows)
	for r := range rows {
		rows[r] = make([]int, Columns)
		for c := range rows[r] {
			rows[r][c] = int(s.grid[r][c])
		}
	}
	return rows
}

// IsLegal reports whether a piece can be dropped into col.
func (s State) IsLegal(col int) bool {
	return col >= 0 && col < Columns && s.grid[0][col] == Empty
}

// LegalMoves returns every column whose top cell is empty, in ascending order.
func (s State) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if s.grid[0][c] == Empty {
			moves = append(moves, c)
		}
	}
	return moves
}

// Apply drops player's piece into the lowest empty cell of col and hands the
// turn to player's opponent.
func (s State) Apply(col int, player Player) (State, error) {
	if !s.IsLegal(col) {
		return State{}, &IllegalMoveError{Column: col}
	}
	next := s
	for r := Rows - 1; r >= 0; r-- {
		if next.grid[r][col] == Empty {
			next.grid[r][col] = player
			break
		}
	}
	next.player = player.Opponent()
	return next, nil
}

// Play applies a move for the player to move.
func (s State) Play(col int) (State, error) {
	return s.Apply(col, s.player)
}

// Swap exchanges player one's and player two's pieces and the player to move,
// so the board can be presented from the other player's perspective.
func (s State) Swap() State {
	swapped := s
	for r := range swapped.grid {
		for c := range swapped.grid[r] {
			swapped.grid[r][c] = swapped.grid[r][c].Opponent()
		}
	}
	swapped.player = s.player.Opponent()
	return swapped
}

func (s State) String() string {
	var b strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			switch s.grid[r][c] {
			case PlayerOne:
				b.WriteByte('x')
			case PlayerTwo:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		if r < Rows-1 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
