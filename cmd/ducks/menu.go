package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dutiful-ducks/internal/audio"
	"github.com/vovakirdan/dutiful-ducks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty and Tab for
the run history. Press B or Esc after a game ends to return to the menu.

Examples:
  ducks menu
  ducks menu --fps 30
  ducks menu --db ./ducks.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := setup(true)
	if err != nil {
		fatal("setup", err)
	}
	defer e.closeLog()

	player := audio.New(e.logger, flagMute)
	defer player.Close()

	store := e.openStore()
	if store != nil {
		defer store.Close()
	}

	factory := tui.NewGameFactory(e.config, player, e.logger)
	cfg := runtimeConfig()
	difficulty := e.difficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate, difficulty)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		difficulty = menuResult.Difficulty
		game, err := factory(difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		// A fixed --seed only applies to the first game
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		result, err := tui.RunGame(game, tui.GameOptions{
			Store:     store,
			Logger:    e.logger,
			Config:    cfg,
			HoldTicks: e.config.Controls.HoldTicks,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		cfg.Seed = 0
		if !result.BackToMenu {
			return
		}
	}
}
