package sim

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

func TestRogueVelocityRoll(t *testing.T) {
	p := DefaultParams()
	for seed := int64(0); seed < 500; seed++ {
		a := newRogueDuck(r2.Vec{}, p, rand.New(rand.NewSource(seed)))
		if a.Vel.X == 0 && a.Vel.Y == 0 {
			t.Fatalf("seed %d: zero velocity", seed)
		}
		if a.Vel.X < -3 || a.Vel.X > 3 || a.Vel.Y < -3 || a.Vel.Y > 3 {
			t.Fatalf("seed %d: velocity %v out of range", seed, a.Vel)
		}
	}
}

func TestRogueZeroSpeedFallback(t *testing.T) {
	p := DefaultParams()
	p.RogueMaxSpeed = 0
	a := newRogueDuck(r2.Vec{}, p, rand.New(rand.NewSource(1)))
	if a.Vel != (r2.Vec{X: 1, Y: -1}) {
		t.Errorf("fallback velocity = %v, want (1,-1)", a.Vel)
	}
}

func countFlips(prev, next float64) int {
	if (prev > 0) != (next > 0) {
		return 1
	}
	return 0
}

func TestRogueReflectsOncePerCrossing(t *testing.T) {
	bounds := core.Box{Max: r2.Vec{X: 1088, Y: 1088}}

	tests := []struct {
		name  string
		pos   r2.Vec
		vel   r2.Vec
		flipX int
		flipY int
	}{
		{"right edge", r2.Vec{X: 1060, Y: 500}, r2.Vec{X: 3, Y: 0}, 1, 0},
		{"left edge", r2.Vec{X: 28, Y: 500}, r2.Vec{X: -3, Y: 0}, 1, 0},
		{"top edge only flips y", r2.Vec{X: 500, Y: 28}, r2.Vec{X: 2, Y: -3}, 0, 1},
		{"corner flips both", r2.Vec{X: 1062, Y: 1062}, r2.Vec{X: 3, Y: 3}, 1, 1},
		{"already past edge", r2.Vec{X: 1100, Y: 500}, r2.Vec{X: 3, Y: 1}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent{Kind: KindRogueDuck, Pos: tt.pos, Vel: tt.vel, Half: 20}
			var fx, fy int
			for i := 0; i < 15; i++ {
				before := a.Vel
				move(&a, 1, bounds, nil)
				if before.X != 0 {
					fx += countFlips(before.X, a.Vel.X)
				}
				if before.Y != 0 {
					fy += countFlips(before.Y, a.Vel.Y)
				}
			}
			if fx != tt.flipX || fy != tt.flipY {
				t.Errorf("flips x=%d y=%d, want x=%d y=%d", fx, fy, tt.flipX, tt.flipY)
			}
		})
	}
}

func TestRogueIgnoresObstacles(t *testing.T) {
	g := NewGrid(16, 16, 68)
	g.block(C(5, 6))
	obs := NewObstacles(g)
	a := Agent{Kind: KindRogueDuck, Pos: g.ToWorld(C(5, 5)), Vel: r2.Vec{X: 3}, Half: 20}
	for i := 0; i < 30; i++ {
		move(&a, 1, g.Bounds(), obs)
	}
	if a.Pos.X != g.ToWorld(C(5, 5)).X+90 {
		t.Errorf("rogue stopped at x=%v", a.Pos.X)
	}
}

func TestPlayerBlockedByTree(t *testing.T) {
	g := NewGrid(16, 16, 68)
	g.block(C(5, 6))
	obs := NewObstacles(g)
	a := newPlayer(g.ToWorld(C(5, 5)), DefaultParams())
	a.Vel = r2.Vec{X: a.Speed}

	for i := 0; i < 10; i++ {
		move(&a, 1, g.Bounds(), obs)
	}
	if a.Box().Overlaps(g.CellBox(C(5, 6))) {
		t.Fatalf("player at %v penetrated the tree", a.Pos)
	}
	if a.Pos.X != g.ToWorld(C(5, 5)).X+10 {
		t.Errorf("player x = %v, want one step before contact", a.Pos.X)
	}
}

func TestFastPlayerCannotSkipTree(t *testing.T) {
	g := NewGrid(16, 16, 68)
	g.block(C(5, 6))
	obs := NewObstacles(g)

	tests := []struct {
		name   string
		start  Cell
		speed  float64
		frames float64
		want   Cell
	}{
		{"one long frame into a tree", C(5, 5), 160, 1, C(5, 5)},
		{"clamped ticks into a tree", C(5, 5), 40, maxFramesPerTick, C(5, 5)},
		{"long frame in the open", C(8, 2), 160, 1, C(8, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newPlayer(g.ToWorld(tt.start), DefaultParams())
			a.Vel = r2.Vec{X: tt.speed}
			move(&a, tt.frames, g.Bounds(), obs)

			if a.Box().Overlaps(g.CellBox(C(5, 6))) {
				t.Fatalf("player at %v overlaps the tree", a.Pos)
			}
			if got := a.Cell(g); got != tt.want {
				t.Errorf("player ended in %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	g := NewGrid(16, 16, 68)
	obs := NewObstacles(g)
	start := g.ToWorld(C(1, 5))
	a := newPlayer(start, DefaultParams())
	a.Vel = r2.Vec{X: 10, Y: -10}

	move(&a, 1, g.Bounds(), obs)
	// y is pinned by the top wall, x keeps moving.
	if a.Pos.Y != start.Y-10 || a.Pos.X != start.X+10 {
		t.Fatalf("first step %v", a.Pos)
	}
	move(&a, 1, g.Bounds(), obs)
	if a.Pos.Y != start.Y-10 || a.Pos.X != start.X+20 {
		t.Errorf("second step %v, want y pinned", a.Pos)
	}
}

func TestObstaclesSuspendRestore(t *testing.T) {
	g := NewGrid(16, 16, 68)
	g.block(C(5, 6))
	obs := NewObstacles(g)

	obs.Suspend(C(5, 6))
	obs.Suspend(C(5, 6))
	if obs.Active(C(5, 6)) {
		t.Fatal("suspended cell still active")
	}
	obs.Restore(C(5, 6))
	obs.Restore(C(5, 6))
	if !obs.Active(C(5, 6)) {
		t.Fatal("restored cell not active")
	}
	obs.Restore(C(5, 5))
	if obs.Active(C(5, 5)) {
		t.Error("restoring an open cell made it block")
	}

	c, d, ok := obs.Nearest(g.ToWorld(C(5, 5)))
	if !ok || c != C(5, 6) || d != 68 {
		t.Errorf("Nearest = %v %v %v", c, d, ok)
	}
}
