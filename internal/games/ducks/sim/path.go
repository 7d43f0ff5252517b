package sim

import (
	"container/heap"
	"math"
)

// PathGraph is a 4-connected adjacency view over a Grid.
// Blocked and out-of-grid cells are never part of the graph.
type PathGraph struct {
	grid *Grid
}

// NewPathGraph builds a path graph over g.
func NewPathGraph(g *Grid) *PathGraph {
	return &PathGraph{grid: g}
}

// neighborOffsets is the fixed expansion order: down, right, up, left.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Neighbors returns the open cells adjacent to c.
func (p *PathGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if !p.grid.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// pathNode is an entry in the A* open set.
type pathNode struct {
	cell Cell
	g    float64
	f    float64
	h    float64
	seq  int // insertion order, last tie-breaker
}

// openSet orders nodes by f, then h, then insertion order so that results
// are reproducible for a fixed grid.
type openSet []*pathNode

func (s openSet) Len() int { return len(s) }
func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	if s[i].h != s[j].h {
		return s[i].h < s[j].h
	}
	return s[i].seq < s[j].seq
}
func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) {
	*s = append(*s, x.(*pathNode))
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return node
}

// heuristic is the Euclidean distance between cell coordinates.
func heuristic(a, b Cell) float64 {
	return math.Hypot(float64(b.Row-a.Row), float64(b.Col-a.Col))
}

// ShortestPath runs A* with unit edge cost from start to goal.
// The returned path includes both endpoints. It returns (nil, false) when
// either endpoint is blocked or goal is unreachable.
func (p *PathGraph) ShortestPath(start, goal Cell) ([]Cell, bool) {
	if p.grid.Blocked(start) || p.grid.Blocked(goal) {
		return nil, false
	}
	if start == goal {
		return []Cell{start}, true
	}

	open := &openSet{}
	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]float64{start: 0}
	closed := make(map[Cell]struct{})
	seq := 0

	h := heuristic(start, goal)
	heap.Push(open, &pathNode{cell: start, g: 0, f: h, h: h, seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if _, done := closed[current.cell]; done {
			continue // stale entry superseded by a cheaper one
		}
		if current.cell == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		closed[current.cell] = struct{}{}

		for _, n := range p.Neighbors(current.cell) {
			if _, done := closed[n]; done {
				continue
			}
			tentative := current.g + 1
			if existing, ok := gScore[n]; ok && tentative >= existing {
				continue
			}
			cameFrom[n] = current.cell
			gScore[n] = tentative
			seq++
			nh := heuristic(n, goal)
			heap.Push(open, &pathNode{cell: n, g: tentative, f: tentative + nh, h: nh, seq: seq})
		}
	}

	return nil, false
}

// Reachable reports whether a path exists between a and b.
func (p *PathGraph) Reachable(a, b Cell) bool {
	_, ok := p.ShortestPath(a, b)
	return ok
}

func reconstruct(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	var rev []Cell
	for c := goal; c != start; c = cameFrom[c] {
		rev = append(rev, c)
	}
	rev = append(rev, start)

	path := make([]Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
