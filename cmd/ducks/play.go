package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dutiful-ducks/internal/audio"
	"github.com/vovakirdan/dutiful-ducks/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game at the chosen difficulty.

Controls:
  Arrows/WASD  - Move (released automatically when the key stops repeating)
  Space/Tab    - Pick a tree in range, press again to cycle
  Enter        - Climb the highlighted tree / cancel descent
  1/E          - Show descent cells while in a tree, then an arrow to land
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back (when paused or over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - One slow rogue duck
  normal - Two rogue ducks
  hard   - Four fast rogue ducks

Examples:
  ducks play
  ducks play --difficulty easy
  ducks play --seed 42 --mute
  ducks play --config ./my-ducks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	e, err := setup(true)
	if err != nil {
		fatal("setup", err)
	}
	defer e.closeLog()

	player := audio.New(e.logger, flagMute)
	defer player.Close()

	game, err := tui.NewGameFactory(e.config, player, e.logger)(e.difficulty)
	if err != nil {
		fatal("invalid configuration", err)
	}

	store := e.openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.RunGame(game, tui.GameOptions{
		Store:     store,
		Logger:    e.logger,
		Config:    runtimeConfig(),
		HoldTicks: e.config.Controls.HoldTicks,
	})
	if err != nil {
		// Deferred cleanup is skipped by os.Exit
		if store != nil {
			store.Close()
		}
		player.Close()
		fatal("running game", err)
	}
}
