package engine

import (
	"connectfour/game"
	"connectfour/searcher"
)

type MoveRecord struct {
	Step    int
	Player  game.Player
	Column  int
	Metrics searcher.MoveMetrics
}

type Runner interface {
	// Run plays a game until it is won or the board is full
	Run() (winner game.Player, moves []MoveRecord, err error)
}
