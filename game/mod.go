package game

const (
	Rows         = 6
	Columns      = 7
	CenterColumn = Columns / 2
	WindowLength = 4 // Pieces in a row needed to win
)

// Player identifies the owner of a cell. Empty marks an unoccupied cell.
type Player int

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return "none"
	}
}

// Grid is a fixed 6x7 matrix of cells. Row 0 is the top row.
type Grid [Rows][Columns]Player

// Evaluate scores a state from the given player's perspective.
type Evaluate func(s State, player Player) int
