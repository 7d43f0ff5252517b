package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks/sim"
)

var flagLayoutPath string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print a generated world",
	Long: `Generate the world for a seed and print it as text.

Legend:
  #  wall         T  tree
  D  tree hiding a duckling
  R  rogue duck spawn
  @  player spawn
  *  shortest path (with --path)

--path takes two open cells as row,col:row,col and prints the shortest
walk between them.

Examples:
  ducks layout --seed 7
  ducks layout --seed 7 --difficulty hard
  ducks layout --seed 7 --path 1,1:14,14`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagLayoutPath, "path", "", "Shortest path between two cells, as row,col:row,col")
}

func runLayout(_ *cobra.Command, _ []string) {
	e, err := setup(false)
	if err != nil {
		fatal("setup", err)
	}
	defer e.closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := sim.New(ducks.ParamsFromConfig(e.presetConfig()), rand.New(rand.NewSource(seed)))
	if err != nil {
		fatal("invalid configuration", err)
	}

	var path []sim.Cell
	if flagLayoutPath != "" {
		from, to, err := parseCellPair(flagLayoutPath)
		if err != nil {
			fatal("--path", err)
		}
		var ok bool
		path, ok = world.Graph().ShortestPath(from, to)
		if !ok {
			fatal("--path", fmt.Errorf("no path from %s to %s", from, to))
		}
	}

	fmt.Printf("Seed %d, %s\n\n", seed, e.difficulty.Title())
	writeLayout(os.Stdout, world, path)
	if path != nil {
		fmt.Printf("\nPath: %d steps\n", len(path)-1)
	}
}

// parseCellPair parses "r,c:r,c".
func parseCellPair(s string) (from, to sim.Cell, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return from, to, fmt.Errorf("want row,col:row,col, got %q", s)
	}
	if from, err = parseCell(a); err != nil {
		return from, to, err
	}
	if to, err = parseCell(b); err != nil {
		return from, to, err
	}
	return from, to, nil
}

func parseCell(s string) (sim.Cell, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return sim.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return sim.Cell{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return sim.Cell{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return sim.C(row, col), nil
}

// writeLayout prints one character per cell, top row first.
func writeLayout(w io.Writer, world *sim.Sim, path []sim.Cell) {
	g := world.Grid()
	l := world.Layout()

	var sb strings.Builder
	for row := range g.Rows() {
		for col := range g.Cols() {
			c := sim.C(row, col)
			switch {
			case g.IsBoundary(c):
				sb.WriteByte('#')
			case l.IsBabyDuck(c):
				sb.WriteByte('D')
			case l.IsTree(c):
				sb.WriteByte('T')
			case c == l.Player:
				sb.WriteByte('@')
			case slices.Contains(l.RogueDucks, c):
				sb.WriteByte('R')
			case slices.Contains(path, c):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
