package meta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	ModeMinimax = "minimax"
	ModeMCTS    = "mcts"
)

type Config struct {
	Mode        string
	Difficulty  Difficulty
	Depth       int
	Simulations int
	Exploration float64
	Goroutines  int
	Seed        uint64 // 0 seeds from the clock
	LogLevel    string
}

// LoadConfig reads the search configuration from the environment. Values not
// set explicitly fall back to the chosen difficulty's preset.
func LoadConfig() (*Config, error) {
	difficulty, err := ParseDifficulty(GetEnv("CONNECTFOUR_DIFFICULTY", string(Medium)))
	if err != nil {
		return nil, err
	}
	preset := difficulty.Preset()

	mode := strings.ToLower(GetEnv("CONNECTFOUR_MODE", ModeMinimax))
	if mode != ModeMinimax && mode != ModeMCTS {
		return nil, fmt.Errorf("unknown mode %q: want %s or %s", mode, ModeMinimax, ModeMCTS)
	}

	cfg := &Config{
		Mode:        mode,
		Difficulty:  difficulty,
		Depth:       GetEnvAsInt("CONNECTFOUR_DEPTH", preset.Depth),
		Simulations: GetEnvAsInt("CONNECTFOUR_SIMULATIONS", preset.Simulations),
		Exploration: GetEnvAsFloat("CONNECTFOUR_EXPLORATION", preset.Exploration),
		Goroutines:  GetEnvAsInt("CONNECTFOUR_GOROUTINES", DefaultGoroutines),
		Seed:        uint64(GetEnvAsInt("CONNECTFOUR_SEED", 0)),
		LogLevel:    GetEnv("CONNECTFOUR_LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Msgf("invalid integer, using default %d", defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Msgf("invalid number, using default %g", defaultValue)
		return defaultValue
	}
	return value
}
