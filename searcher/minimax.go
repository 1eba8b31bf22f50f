package searcher

import (
	"cmp"
	"math"

	"connectfour/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// WinScore is the value of a position player one has won.
const WinScore = 1_000_000_000

type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

type scoredMove struct {
	column int
	score  int
	state  game.State
}

func (m *Minimax) FindNextMove(state game.State) (int, MoveMetrics) {
	collector := m.collector()
	collector.Start()
	move := m.decide(state, collector)
	metrics := collector.Complete()

	log.Debug().
		Int("move", move).
		Int("depth", m.depth).
		Bool("pruning", m.pruning).
		Int64("nodes", metrics.Nodes).
		Dur("duration", metrics.Duration).
		Msg("minimax search complete")
	return move, metrics
}

func (m *Minimax) decide(state game.State, collector MetricsCollector) int {
	ordered := orderMoves(state, m.evaluate)
	if len(ordered) == 0 {
		return 0
	}
	if m.depth == 0 {
		return ordered[0].column
	}
	if m.goroutines > 1 {
		return m.decideParallel(ordered, collector)
	}

	bestScore := math.MinInt
	bestMove := ordered[0].column
	alpha := math.MinInt
	beta := math.MaxInt

	// alpha carries the best score across root siblings
	for _, sm := range ordered {
		score := m.minimax(sm.state, m.depth-1, alpha, beta, false, collector)
		if score > bestScore {
			bestScore = score
			bestMove = sm.column
		}
		if m.pruning && score > alpha {
			alpha = score
		}
	}
	return bestMove
}

// decideParallel searches every root branch with a full window and keeps the
// first move in ordering priority with the strictly greatest score.
func (m *Minimax) decideParallel(ordered []scoredMove, collector MetricsCollector) int {
	scores := make([]int, len(ordered))

	g := errgroup.Group{}
	g.SetLimit(m.goroutines)
	for i, sm := range ordered {
		i, sm := i, sm
		g.Go(func() error {
			scores[i] = m.minimax(sm.state, m.depth-1, math.MinInt, math.MaxInt, false, collector)
			return nil
		})
	}
	_ = g.Wait()

	bestIndex := 0
	for i, score := range scores {
		if score > scores[bestIndex] {
			bestIndex = i
		}
	}
	return ordered[bestIndex].column
}

// orderMoves plays each legal move for player one and sorts the results by
// heuristic score, best first. Equal scores keep ascending column order.
func orderMoves(state game.State, evaluate game.Evaluate) []scoredMove {
	moves := state.LegalMoves()
	scored := make([]scoredMove, len(moves))
	for i, col := range moves {
		next := mustApply(state, col, game.PlayerOne)
		scored[i] = scoredMove{
			column: col,
			score:  evaluate(next, game.PlayerOne),
			state:  next,
		}
	}

	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(b.score, a.score)
	})
	return scored
}

func (m *Minimax) minimax(state game.State, depth int, alpha, beta int, maximizing bool, collector MetricsCollector) int {
	collector.AddNode()

	if state.IsTerminal() {
		switch {
		case state.IsWin(game.PlayerOne):
			return WinScore
		case state.IsWin(game.PlayerTwo):
			return -WinScore
		default:
			return 0
		}
	}

	if depth == 0 {
		current := game.PlayerTwo
		if maximizing {
			current = game.PlayerOne
		}
		return m.evaluate(state, current)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		value := math.MinInt
		for _, col := range moves {
			child := mustApply(state, col, game.PlayerOne)
			value = max(value, m.minimax(child, depth-1, alpha, beta, false, collector))
			alpha = max(alpha, value)
			if m.pruning && alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, col := range moves {
		child := mustApply(state, col, game.PlayerTwo)
		value = min(value, m.minimax(child, depth-1, alpha, beta, true, collector))
		beta = min(beta, value)
		if m.pruning && beta <= alpha {
			break
		}
	}
	return value
}
