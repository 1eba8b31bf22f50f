package game

type cell struct {
	row, col int
}

// window is a contiguous run of four cells along one line orientation
type window [WindowLength]cell

// windows holds every horizontal, vertical and diagonal window of the grid
var windows = buildWindows()

func buildWindows() []window {
	directions := []cell{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{-1, 1}, // diagonal /
	}

	var ws []window
	for _, d := range directions {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Columns; c++ {
				endRow := r + d.row*(WindowLength-1)
				endCol := c + d.col*(WindowLength-1)
				if endRow < 0 || endRow >= Rows || endCol >= Columns {
					continue
				}
				var w window
				for i := range w {
					w[i] = cell{row: r + d.row*i, col: c + d.col*i}
				}
				ws = append(ws, w)
			}
		}
	}
	return ws
}

func (g *Grid) values(w window) [WindowLength]Player {
	var vs [WindowLength]Player
	for i, c := range w {
		vs[i] = g[c.row][c.col]
	}
	return vs
}

// IsWin reports whether player owns four contiguous cells in any orientation.
func (s State) IsWin(player Player) bool {
	if player == Empty {
		return false
	}
	for _, w := range windows {
		if s.owns(w, player) {
			return true
		}
	}
	return false
}

func (s State) owns(w window, player Player) bool {
	for _, c := range w {
		if s.grid[c.row][c.col] != player {
			return false
		}
	}
	return true
}

// Winner returns the winning player, or Empty if nobody has four in a row.
func (s State) Winner() Player {
	if s.IsWin(PlayerOne) {
		return PlayerOne
	}
	if s.IsWin(PlayerTwo) {
		return PlayerTwo
	}
	return Empty
}

func (s State) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if s.grid[0][c] == Empty {
			return false
		}
	}
	return true
}

// IsTerminal is true once either player has won or the board is full.
func (s State) IsTerminal() bool {
	return s.IsWin(PlayerOne) || s.IsWin(PlayerTwo) || s.IsFull()
}
