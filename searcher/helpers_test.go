package searcher

import (
	"testing"

	"connectfour/game"

	"github.com/stretchr/testify/require"
)

const (
	// Player one completes row 5 by playing column D
	winningBoard = "......./......./......./......./oo...../xxx...o"
	// Player two completes row 5 unless player one blocks column D
	threatBoard = "......./......./......./......./....x../ooo.x.x"
	// Full board with no winner
	drawBoard = "xxooxxo/ooxxoox/xxooxxo/ooxxoox/xxooxxo/ooxxoox"
	// Player one already has four in a row
	wonBoard = "......./......./......./......./oo...../oxxxx.."
)

var midgameBoards = []string{
	"......./......./......./......./......./.......",
	"......./......./......./...o.../..xx.../..ox...",
	"......./......./..o..../..x..../.xo.o../.xxo.x.",
	"......./......./...x.../...o.../..xo.../.oxxo..",
	threatBoard,
	winningBoard,
}

func mustParse(t *testing.T, board string) game.State {
	t.Helper()
	s, err := game.Parse(board)
	require.NoError(t, err, "Fixture board should parse")
	return s
}
