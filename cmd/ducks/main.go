// ducks is Dutiful Ducks, a grid arcade game for the terminal: climb trees to
// find the hidden ducklings before a rogue duck catches you.
//
// Usage:
//
//	ducks play               - Play a game
//	ducks menu               - Pick a difficulty interactively
//	ducks serve              - Start SSH server for remote play
//	ducks scores [level]     - Show run history
//	ducks layout             - Print a generated world
//
// Global flags:
//
//	--config <path>       - Custom ducks.yaml
//	--difficulty <level>  - easy, normal or hard
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ducks/ducks.db)
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ducks",
	Short: "Dutiful Ducks - find the ducklings hiding in the trees",
	Long: `Dutiful Ducks is a grid arcade game for the terminal.

Walk the forest, climb into trees and collect every duckling hidden in
them. Rogue ducks bounce around the map; touching one ends the game.

Available commands:
  play     - Play a game directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View run history
  layout   - Print a generated world

Examples:
  ducks play
  ducks play --difficulty hard --seed 42
  ducks menu
  ducks serve --ssh :2222
  ducks scores --csv > runs.csv
  ducks layout --seed 7 --path 1,1:14,14`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom ducks.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.ducks/ducks.db", "Path to run history database")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default: discarded in the TUI, stderr otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutCmd)
}
