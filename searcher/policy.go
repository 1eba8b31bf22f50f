package searcher

import "math"

type uct struct {
	exploration float64
	logN        float64
}

func newUCT(exploration float64, N int) uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return uct{exploration: exploration, logN: math.Log(float64(N))}
}

func (u uct) evaluate(q float64, n int) float64 {
	// Prioritize unexplored nodes
	if n == 0 {
		return math.Inf(1)
	}
	// UCT = q/n + c*sqrt(ln(N)/n)
	return q/float64(n) + u.exploration*math.Sqrt(u.logN/float64(n))
}
