package searcher

import (
	"math"

	"connectfour/game"
)

const root = 0

// noParent marks the root; noMove marks the root's producing move.
const (
	noParent = -1
	noMove   = -1
)

// node is a search tree vertex. Parent and children are arena indices, so a
// node never holds a reference that keeps its parent alive.
type node struct {
	state    game.State
	parent   int
	move     int
	untried  []int
	children []int
	rewards  float64
	visits   int
}

// tree owns every node created during one search call.
type tree struct {
	nodes []node
}

func newTree(state game.State, capacity int) *tree {
	t := &tree{nodes: make([]node, 0, capacity)}
	t.add(state, noParent, noMove)
	return t
}

func (t *tree) add(state game.State, parent, move int) int {
	t.nodes = append(t.nodes, node{
		state:   state,
		parent:  parent,
		move:    move,
		untried: state.LegalMoves(),
	})
	index := len(t.nodes) - 1
	if parent != noParent {
		t.nodes[parent].children = append(t.nodes[parent].children, index)
	}
	return index
}

// selectThenExpand descends from the root by UCT until it reaches a node
// with untried moves, expands one of them and returns the new child. A
// terminal node reached by selection is returned as is.
func (t *tree) selectThenExpand(exploration float64) int {
	current := root
	for !t.nodes[current].state.IsTerminal() {
		n := &t.nodes[current]
		if len(n.untried) > 0 {
			last := len(n.untried) - 1
			move := n.untried[last]
			n.untried = n.untried[:last]
			state := mustApply(n.state, move, n.state.Player())
			return t.add(state, current, move)
		}

		next := t.pickChild(current, exploration)
		if next == noParent {
			break
		}
		current = next
	}
	return current
}

// pickChild returns the child with the highest UCT score. Ties go to the
// first child in expansion order.
func (t *tree) pickChild(parent int, exploration float64) int {
	n := &t.nodes[parent]
	if len(n.children) == 0 {
		return noParent
	}
	policy := newUCT(exploration, n.visits)

	best := noParent
	maxScore := math.Inf(-1)
	for _, c := range n.children {
		child := &t.nodes[c]
		score := policy.evaluate(child.rewards, child.visits)
		if best == noParent || score > maxScore {
			maxScore = score
			best = c
		}
	}
	return best
}

// backup adds the same absolute outcome to every node on the path to the
// root, whichever player was to move there.
func (t *tree) backup(index int, result float64) {
	for index != noParent {
		n := &t.nodes[index]
		n.visits++
		n.rewards += result
		index = n.parent
	}
}

// rootStats lists the statistics of the root's children in expansion order
func (t *tree) rootStats() []ChildStat {
	children := t.nodes[root].children
	stats := make([]ChildStat, len(children))
	for i, c := range children {
		child := t.nodes[c]
		stats[i] = ChildStat{Move: child.move, Visits: child.visits, Rewards: child.rewards}
	}
	return stats
}
