package agent

import (
	"errors"
	"fmt"
	"math"

	"connectfour/game"
	"connectfour/searcher"
)

var (
	ErrInvalidDepth       = errors.New("depth must be non-negative")
	ErrInvalidSimulations = errors.New("simulations must be positive")
	ErrInvalidExploration = errors.New("exploration constant must be positive")
)

type Agent interface {
	// FindMove returns the column to play for the player to move and the search metrics
	FindMove(state game.State) (int, searcher.MoveMetrics)
}

type searchAgent struct {
	searcher searcher.Searcher
}

// New wraps a searcher, which always plays as player one, into an agent that
// can play either side.
func New(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func NewMinimaxAgent(depth int, options ...searcher.Option) Agent {
	options = append([]searcher.Option{searcher.WithDepth(depth)}, options...)
	return New(searcher.NewMinimax(options...))
}

func NewMCTSAgent(simulations int, exploration float64, options ...searcher.Option) Agent {
	options = append([]searcher.Option{searcher.WithSimulations(simulations), searcher.WithExploration(exploration)}, options...)
	return New(searcher.NewMCTS(options...))
}

func (a searchAgent) FindMove(state game.State) (int, searcher.MoveMetrics) {
	// Searchers only play player one, so present player two's board swapped
	if state.Player() == game.PlayerTwo {
		state = state.Swap()
	}
	return a.searcher.FindNextMove(state)
}

// BestMoveMinimax returns the column letter chosen by alpha-beta search to
// the given depth, with player one to move.
func BestMoveMinimax(board [][]int, depth int, options ...searcher.Option) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}
	state, err := game.FromRows(board)
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}

	options = append([]searcher.Option{searcher.WithDepth(depth)}, options...)
	move, _ := searcher.NewMinimax(options...).FindNextMove(state)
	return game.ColumnLetter(move), nil
}

// BestMoveMCTS returns the column letter chosen by Monte Carlo tree search,
// with player one to move.
func BestMoveMCTS(board [][]int, simulations int, exploration float64, options ...searcher.Option) (string, error) {
	if simulations < 1 {
		return "", fmt.Errorf("simulations %d: %w", simulations, ErrInvalidSimulations)
	}
	if exploration <= 0 || math.IsNaN(exploration) || math.IsInf(exploration, 0) {
		return "", fmt.Errorf("exploration %g: %w", exploration, ErrInvalidExploration)
	}
	state, err := game.FromRows(board)
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}

	options = append([]searcher.Option{searcher.WithSimulations(simulations), searcher.WithExploration(exploration)}, options...)
	move, _ := searcher.NewMCTS(options...).FindNextMove(state)
	return game.ColumnLetter(move), nil
}
