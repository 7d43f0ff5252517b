package sim

import (
	"math/rand"
	"slices"
)

// LayoutParams are the entity counts placed by BuildLayout.
type LayoutParams struct {
	Trees      int
	BabyDucks  int
	RogueDucks int
}

// Layout is the one-time placement result. All slices are disjoint except
// BabyDucks, which is a subset of Trees.
type Layout struct {
	Walls      []Cell
	Trees      []Cell
	BabyDucks  []Cell
	RogueDucks []Cell
	Player     Cell
}

// IsTree reports whether c holds a tree.
func (l *Layout) IsTree(c Cell) bool {
	return slices.Contains(l.Trees, c)
}

// IsBabyDuck reports whether c hides a baby duck.
func (l *Layout) IsBabyDuck(c Cell) bool {
	return slices.Contains(l.BabyDucks, c)
}

// BuildLayout draws trees, baby ducks, rogue spawns and the player spawn from
// a shuffled interior pool and marks the trees blocked in g.
// Every sample size is checked before g is touched.
func BuildLayout(g *Grid, p LayoutParams, rng *rand.Rand) (*Layout, error) {
	pool := g.Interior()

	if err := checkCount("trees", p.Trees, len(pool)); err != nil {
		return nil, err
	}
	open := len(pool) - p.Trees
	if err := checkCount("player", 1, open); err != nil {
		return nil, err
	}
	if err := checkCount("baby_ducks", p.BabyDucks, p.Trees); err != nil {
		return nil, err
	}
	if err := checkCount("rogue_ducks", p.RogueDucks, open-1); err != nil {
		return nil, err
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	trees := append([]Cell(nil), pool[:p.Trees]...)
	rest := append([]Cell(nil), pool[p.Trees:]...)

	pi := rng.Intn(len(rest))
	player := rest[pi]
	rest = append(rest[:pi], rest[pi+1:]...)

	l := &Layout{
		Walls:      g.BoundaryRing(),
		Trees:      trees,
		BabyDucks:  sample(trees, p.BabyDucks, rng),
		RogueDucks: sample(rest, p.RogueDucks, rng),
		Player:     player,
	}
	for _, c := range l.Trees {
		g.block(c)
	}
	return l, nil
}

func checkCount(field string, requested, available int) error {
	if requested < 0 || requested > available {
		return &ConfigError{Field: field, Requested: requested, Available: max(available, 0)}
	}
	return nil
}

// sample draws n cells from src without replacement using a partial
// Fisher-Yates shuffle over a copy; src is left untouched.
func sample(src []Cell, n int, rng *rand.Rand) []Cell {
	buf := append([]Cell(nil), src...)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:n:n]
}
