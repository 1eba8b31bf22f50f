package searcher

import (
	"time"

	"connectfour/game"
	"connectfour/meta"
)

type Option func(c *config)

type config struct {
	depth       int
	simulations int
	exploration float64
	seed        uint64
	goroutines  int
	pruning     bool
	metrics     bool
	evaluate    game.Evaluate
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:       meta.DefaultDepth,
		simulations: meta.DefaultSimulations,
		exploration: meta.DefaultExploration,
		seed:        uint64(time.Now().UnixNano()),
		goroutines:  meta.DefaultGoroutines,
		pruning:     true,
		evaluate:    game.ScorePosition,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithDepth sets the minimax search depth. Depth 0 ranks root moves by their
// one-ply heuristic score only.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.depth = depth
		}
	}
}

func WithSimulations(simulations int) Option {
	return func(c *config) {
		if simulations > 0 {
			c.simulations = simulations
		}
	}
}

func WithExploration(exploration float64) Option {
	return func(c *config) {
		if exploration > 0 {
			c.exploration = exploration
		}
	}
}

// WithSeed fixes the rollout random source for reproducible searches.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithGoroutines parallelizes a search at the root
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs, searching the full tree.
func WithoutPruning() Option {
	return func(c *config) {
		c.pruning = false
	}
}

// WithEvaluator replaces the heuristic minimax uses for move ordering and
// depth-limited leaves.
func WithEvaluator(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

func (c config) collector() MetricsCollector {
	if c.metrics {
		return NewMetricsCollector()
	}
	return NewNoMetricsCollector()
}
