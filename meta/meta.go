// meta/meta.go
package meta

import (
	"fmt"
	"strings"
)

// DefaultDepth defines the minimax search depth.
const DefaultDepth = 5

// DefaultSimulations defines the number of MCTS simulations per move.
const DefaultSimulations = 10000

// DefaultExploration defines the UCT exploration constant.
const DefaultExploration = 1.4

// DefaultGoroutines defines the number of goroutines per search.
const DefaultGoroutines = 1

// MaxPlies bounds the length of a game on a 6x7 board.
const MaxPlies = 42

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Preset holds the search budget used by each difficulty level.
type Preset struct {
	Depth       int
	Simulations int
	Exploration float64
}

var presets = map[Difficulty]Preset{
	Easy:   {Depth: 2, Simulations: 2000, Exploration: 1.2},
	Medium: {Depth: DefaultDepth, Simulations: DefaultSimulations, Exploration: DefaultExploration},
	Hard:   {Depth: 8, Simulations: 20000, Exploration: 1.6},
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q: want easy, medium or hard", s)
	}
	return d, nil
}

func (d Difficulty) Preset() Preset {
	p, ok := presets[d]
	if !ok {
		return presets[Medium]
	}
	return p
}
