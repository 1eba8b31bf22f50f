package engine

import (
	"fmt"

	"connectfour/agent"
	"connectfour/game"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	State  game.State
	Agents []agent.Agent
}

// LocalEngine sets up a game on an empty board. The first agent plays player
// one and moves first.
func LocalEngine(agents ...agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	return &Engine{
		State:  game.NewState(),
		Agents: agents,
	}
}

// Run executes the game loop until the game is over.
func (e *Engine) Run() (game.Player, []MoveRecord, error) {
	log.Info().Msgf("%s is starting", e.State.Player())

	var records []MoveRecord
	for step := 1; !e.State.IsTerminal(); step++ {
		player := e.State.Player()
		column, metrics := e.Agents[player-1].FindMove(e.State)

		next, err := e.State.Play(column)
		if err != nil {
			return game.Empty, records, fmt.Errorf("%s at step %d: %w", player, step, err)
		}

		records = append(records, MoveRecord{
			Step:    step,
			Player:  player,
			Column:  column,
			Metrics: metrics,
		})
		log.Info().
			Int("step", step).
			Str("player", player.String()).
			Str("column", game.ColumnLetter(column)).
			Dur("duration", metrics.Duration).
			Msg("move played")

		e.State = next
	}

	winner := e.State.Winner()
	if winner == game.Empty {
		log.Info().Msgf("game drawn after %d moves", len(records))
	} else {
		log.Info().Msgf("game over after %d moves, winner: %s", len(records), winner)
	}
	return winner, records, nil
}
