package searcher

import (
	"connectfour/game"
	"connectfour/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// ChildStat holds the accumulated statistics of one root move
type ChildStat struct {
	Move    int
	Visits  int
	Rewards float64
}

// WinRate is player one's mean outcome after this move
func (s ChildStat) WinRate() float64 {
	if s.Visits == 0 {
		return 0
	}
	return s.Rewards / float64(s.Visits)
}

type Result struct {
	Move     int
	Children []ChildStat
}

type MCTS struct {
	config
}

func NewMCTS(options ...Option) *MCTS {
	return &MCTS{config: newConfig(options)}
}

func (m *MCTS) FindNextMove(state game.State) (int, MoveMetrics) {
	collector := m.collector()
	collector.Start()
	result := m.search(state, collector)
	metrics := collector.Complete()

	log.Debug().
		Int("move", result.Move).
		Int("simulations", m.simulations).
		Int("goroutines", m.goroutines).
		Dur("duration", metrics.Duration).
		Msg("mcts search complete")
	return result.Move, metrics
}

// Search runs the configured number of simulations from state with player
// one to move and returns the root statistics.
func (m *MCTS) Search(state game.State) Result {
	return m.search(state, m.collector())
}

func (m *MCTS) search(state game.State, collector MetricsCollector) Result {
	rootState := game.NewStateFromGrid(state.Grid(), game.PlayerOne)

	var stats []ChildStat
	if m.goroutines > 1 {
		stats = m.searchParallel(rootState, collector)
	} else {
		stats = m.buildTree(rootState, m.simulations, m.seed, collector).rootStats()
	}

	return Result{Move: findBestMove(stats, rootState), Children: stats}
}

func (m *MCTS) buildTree(state game.State, simulations int, seed uint64, collector MetricsCollector) *tree {
	rng := rand.New(rand.NewSource(seed))
	t := newTree(state, simulations+1)
	for i := 0; i < simulations; i++ {
		leaf := t.selectThenExpand(m.exploration)
		result := rollout(t.nodes[leaf].state, rng)
		t.backup(leaf, result)

		collector.AddEpisode()
		if result == Draw {
			collector.AddDraw()
		}
	}
	collector.AddTreeNodes(len(t.nodes))
	return t
}

// searchParallel grows independent trees and sums their root statistics per move
func (m *MCTS) searchParallel(state game.State, collector MetricsCollector) []ChildStat {
	trees := make([][]ChildStat, m.goroutines)
	share := m.simulations / m.goroutines

	var g errgroup.Group
	for i := 0; i < m.goroutines; i++ {
		simulations := share
		if i == 0 {
			simulations += m.simulations % m.goroutines
		}
		if simulations == 0 {
			continue
		}
		i := i
		g.Go(func() error {
			trees[i] = m.buildTree(state, simulations, m.seed+uint64(i), collector).rootStats()
			return nil
		})
	}
	_ = g.Wait()

	return mergeStats(state.LegalMoves(), trees)
}

// mergeStats keeps the single-tree child order: moves are expanded from the
// highest legal column down.
func mergeStats(legal []int, trees [][]ChildStat) []ChildStat {
	var merged []ChildStat
	for i := len(legal) - 1; i >= 0; i-- {
		move := legal[i]
		stat := ChildStat{Move: move}
		expanded := false
		for _, stats := range trees {
			for _, s := range stats {
				if s.Move == move {
					stat.Visits += s.Visits
					stat.Rewards += s.Rewards
					expanded = true
				}
			}
		}
		if expanded {
			merged = append(merged, stat)
		}
	}
	return merged
}

// findBestMove picks the most visited root move. Ties go to the later child.
func findBestMove(stats []ChildStat, state game.State) int {
	if len(stats) == 0 {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return 0
		}
		return moves[0]
	}

	best := stats[0]
	for _, s := range stats[1:] {
		if s.Visits >= best.Visits {
			best = s
		}
	}
	return best.Move
}

var centerColumns = []int{2, 3, 4}

// rollout plays random moves to the end of the game, restricted to strategic
// moves whenever there are any, and returns player one's outcome.
func rollout(state game.State, rng *rand.Rand) float64 {
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		candidates := strategicMoves(state, moves)
		if len(candidates) == 0 {
			candidates = moves
		}
		move := candidates[rng.Intn(len(candidates))]
		state = mustApply(state, move, state.Player())
	}
	return outcome(state)
}

// strategicMoves keeps moves that win on the spot or land in a center column
func strategicMoves(state game.State, moves []int) []int {
	var strategic []int
	for _, move := range moves {
		if isStrategic(state, move) {
			strategic = append(strategic, move)
		}
	}
	return strategic
}

func isStrategic(state game.State, move int) bool {
	mover := state.Player()
	if mustApply(state, move, mover).IsWin(mover) {
		return true
	}
	return utils.Contains(centerColumns, move)
}
