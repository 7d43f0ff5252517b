package sim

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestBuildLayoutInvariants(t *testing.T) {
	p := DefaultParams()
	for seed := int64(1); seed <= 50; seed++ {
		g := NewGrid(p.Rows, p.Cols, p.TileSize)
		l, err := BuildLayout(g, p.Layout(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if len(l.Trees) != p.Trees || len(l.BabyDucks) != p.BabyDucks || len(l.RogueDucks) != p.RogueDucks {
			t.Fatalf("seed %d: counts trees=%d babies=%d rogues=%d",
				seed, len(l.Trees), len(l.BabyDucks), len(l.RogueDucks))
		}
		for _, c := range l.Walls {
			if !g.Blocked(c) {
				t.Errorf("seed %d: wall %v not blocked", seed, c)
			}
		}
		for _, c := range l.Trees {
			if g.IsBoundary(c) || !g.Blocked(c) {
				t.Errorf("seed %d: tree %v misplaced", seed, c)
			}
		}
		for _, c := range l.BabyDucks {
			if !l.IsTree(c) {
				t.Errorf("seed %d: baby duck %v outside trees", seed, c)
			}
		}
		if l.IsTree(l.Player) || g.Blocked(l.Player) {
			t.Errorf("seed %d: player %v on a blocked cell", seed, l.Player)
		}
		for _, c := range l.RogueDucks {
			if l.IsTree(c) || g.IsBoundary(c) || c == l.Player {
				t.Errorf("seed %d: rogue %v misplaced", seed, c)
			}
		}
		assertDistinct(t, l.Trees)
		assertDistinct(t, l.BabyDucks)
		assertDistinct(t, l.RogueDucks)
	}
}

func assertDistinct(t *testing.T, cells []Cell) {
	t.Helper()
	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			t.Fatalf("duplicate cell %v in %v", c, cells)
		}
		seen[c] = true
	}
}

func TestBuildLayoutSeedReproducible(t *testing.T) {
	p := DefaultParams()
	build := func() *Layout {
		g := NewGrid(p.Rows, p.Cols, p.TileSize)
		l, err := BuildLayout(g, p.Layout(), rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatal(err)
		}
		return l
	}
	a, b := build(), build()
	if !slices.Equal(a.Trees, b.Trees) || !slices.Equal(a.BabyDucks, b.BabyDucks) ||
		!slices.Equal(a.RogueDucks, b.RogueDucks) || a.Player != b.Player {
		t.Error("same seed produced different layouts")
	}
}

func TestBuildLayoutConfigErrors(t *testing.T) {
	// A 16x16 grid has 196 interior cells.
	tests := []struct {
		name  string
		p     LayoutParams
		field string
	}{
		{"too many trees", LayoutParams{Trees: 197}, "trees"},
		{"no room for player", LayoutParams{Trees: 196}, "player"},
		{"babies exceed trees", LayoutParams{Trees: 5, BabyDucks: 6}, "baby_ducks"},
		{"rogues exceed open cells", LayoutParams{Trees: 190, RogueDucks: 6}, "rogue_ducks"},
		{"negative count", LayoutParams{Trees: -1}, "trees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(16, 16, 68)
			l, err := BuildLayout(g, tt.p, rand.New(rand.NewSource(1)))
			if l != nil {
				t.Error("layout returned alongside error")
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("err = %#v, want field %q", err, tt.field)
			}
			for _, c := range g.Interior() {
				if g.Blocked(c) {
					t.Fatalf("grid mutated on failure at %v", c)
				}
			}
		})
	}
}

func TestBuildLayoutExactFit(t *testing.T) {
	g := NewGrid(16, 16, 68)
	l, err := BuildLayout(g, LayoutParams{Trees: 190, BabyDucks: 190, RogueDucks: 5}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("exact fit failed: %v", err)
	}
	if len(l.RogueDucks) != 5 || len(l.BabyDucks) != 190 {
		t.Errorf("got %d rogues, %d babies", len(l.RogueDucks), len(l.BabyDucks))
	}
}
