package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

var (
	flagScoresCSV   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show run history",
	Long: `Display the best runs and win/loss statistics per difficulty.

Without an argument every difficulty is listed. --csv writes the full
history as CSV to stdout instead.

Examples:
  ducks scores
  ducks scores hard
  ducks scores --csv > runs.csv
  ducks scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresCSV, "csv", false, "Export the full history as CSV to stdout")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs of the given difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show per difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	e, err := setup(false)
	if err != nil {
		fatal("setup", err)
	}
	defer e.closeLog()

	difficulties := config.Presets()
	if len(args) == 1 {
		p, err := config.ParsePreset(args[0])
		if err != nil {
			fatal("scores", err)
		}
		difficulties = []config.DifficultyPreset{p}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening run history", err)
	}
	defer store.Close()

	switch {
	case flagScoresCSV:
		err = store.ExportCSV(os.Stdout)
	case flagScoresClear:
		if len(args) == 0 {
			err = fmt.Errorf("--clear needs a difficulty")
			break
		}
		err = store.ClearRuns(string(difficulties[0]))
		if err == nil {
			fmt.Printf("Cleared %s runs.\n", difficulties[0])
		}
	default:
		for i, p := range difficulties {
			if i > 0 {
				fmt.Println()
			}
			if err = printRuns(os.Stdout, store, p, flagScoresLimit, flagFPS); err != nil {
				break
			}
		}
	}
	if err != nil {
		store.Close()
		fatal("scores", err)
	}
}

// printRuns writes the top runs and stats of one difficulty.
func printRuns(w io.Writer, store *storage.Store, p config.DifficultyPreset, limit, tickRate int) error {
	runs, err := store.TopRuns(string(p), limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(string(p))
	if err != nil {
		return err
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	seconds := func(ticks uint64) string {
		d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
		return d.Round(100 * time.Millisecond).String()
	}

	fmt.Fprintf(w, "Runs - %s\n\n", p.Title())
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintf(w, "Play 'ducks play --difficulty %s' to record one!\n", p)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-9s  %-7s  %-8s  %-20s  %s\n", "Rank", "Ducklings", "Outcome", "Time", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-9s  %-7s  %-8s  %-20s  %s\n", "----", "---------", "-------", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-9d  %-7s  %-8s  %-20d  %s\n",
			i+1, r.Score, r.Outcome, seconds(r.Ticks), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Wins: %d  Losses: %d  Best: %d  Average: %.1f\n",
		stats.Games, stats.Wins, stats.Losses, stats.BestScore, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Fprintf(w, "Fastest win: %s\n", seconds(stats.FastestWin))
	}
	return nil
}
