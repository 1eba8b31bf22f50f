package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}
	cfg, err := meta.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	board := flag.String("board", "", "Board rows top to bottom separated by '/', cells 0/. empty, 1/x player one, 2/o player two")
	mode := flag.String("mode", cfg.Mode, "Search algorithm: minimax or mcts")
	difficulty := flag.String("difficulty", "", "Preset search budget: easy, medium or hard")
	depth := flag.Int("depth", cfg.Depth, "Minimax search depth")
	simulations := flag.Int("simulations", cfg.Simulations, "MCTS simulations per move")
	exploration := flag.Float64("exploration", cfg.Exploration, "MCTS exploration constant")
	goroutines := flag.Int("goroutines", cfg.Goroutines, "Goroutines for root-parallel search")
	seed := flag.Uint64("seed", cfg.Seed, "MCTS random seed, 0 seeds from the clock")
	selfplay := flag.Bool("selfplay", false, "Play minimax (player one) against MCTS (player two)")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *difficulty != "" {
		d, err := meta.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid difficulty")
		}
		preset := d.Preset()
		*depth, *simulations, *exploration = preset.Depth, preset.Simulations, preset.Exploration
	}

	options := []searcher.Option{searcher.WithGoroutines(*goroutines)}
	if *seed != 0 {
		options = append(options, searcher.WithSeed(*seed))
	}

	if *selfplay {
		runGame(*depth, *simulations, *exploration, options)
		return
	}

	state, err := game.Parse(*board)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read board")
	}

	var column string
	switch *mode {
	case meta.ModeMinimax:
		column, err = agent.BestMoveMinimax(state.Rows(), *depth, options...)
	case meta.ModeMCTS:
		column, err = agent.BestMoveMCTS(state.Rows(), *simulations, *exploration, options...)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	fmt.Println(column)
}

func runGame(depth, simulations int, exploration float64, options []searcher.Option) {
	options = append(options, searcher.WithMetrics())
	e := engine.LocalEngine(
		agent.NewMinimaxAgent(depth, options...),
		agent.NewMCTSAgent(simulations, exploration, options...),
	)

	winner, records, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Println(e.State.String())
	fmt.Printf("winner: %s after %d moves\n", winner, len(records))
}
