package searcher

import (
	"fmt"

	"connectfour/game"
)

// Rollout outcomes, always from player one's perspective
const (
	Win  = 1.0
	Loss = 0.0
	Draw = 0.5
)

// Searcher finds the best next column for player one
type Searcher interface {
	FindNextMove(state game.State) (int, MoveMetrics)
}

func outcome(state game.State) float64 {
	switch state.Winner() {
	case game.PlayerOne:
		return Win
	case game.PlayerTwo:
		return Loss
	default:
		return Draw
	}
}

// mustApply plays a move the search has already checked to be legal.
// A failure means the search broke an invariant.
func mustApply(state game.State, col int, player game.Player) game.State {
	next, err := state.Apply(col, player)
	if err != nil {
		panic(fmt.Sprintf("search applied an illegal move: %v", err))
	}
	return next
}
