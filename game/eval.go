package game

import "connectfour/utils"

// Heuristic weights. The opponent's open twos are deliberately not punished.
const (
	CenterWeight   = 3
	FourScore      = 100
	ThreeScore     = 5
	TwoScore       = 2
	BlockThreeCost = 4
)

// ScorePosition produces a heuristic score of how favorable the position is
// for player: a bonus for every piece in the center column plus the sum of
// independently scored windows across all four orientations.
func ScorePosition(s State, player Player) int {
	score := 0

	for r := 0; r < Rows; r++ {
		if s.grid[r][CenterColumn] == player {
			score += CenterWeight
		}
	}

	for _, w := range windows {
		values := s.grid.values(w)
		score += scoreWindow(values[:], player)
	}
	return score
}

func scoreWindow(values []Player, player Player) int {
	own := utils.Count(values, player)
	empty := utils.Count(values, Empty)
	opponent := utils.Count(values, player.Opponent())

	score := 0
	switch {
	case own == 4:
		score += FourScore
	case own == 3 && empty == 1:
		score += ThreeScore
	case own == 2 && empty == 2:
		score += TwoScore
	}

	if opponent == 3 && empty == 1 {
		score -= BlockThreeCost
	}
	return score
}
