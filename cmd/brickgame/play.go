package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gfcarvalho/brickgame/internal/core"
	"github.com/gfcarvalho/brickgame/internal/games/asteroids"
	"github.com/gfcarvalho/brickgame/internal/games/breakout"
	"github.com/gfcarvalho/brickgame/internal/games/snake"
	"github.com/gfcarvalho/brickgame/internal/games/tetris"
	"github.com/gfcarvalho/brickgame/internal/platform/tui"
	"github.com/gfcarvalho/brickgame/internal/registry"
	"github.com/gfcarvalho/brickgame/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Steer
  Space       - Speed boost / launch ball
  Up/W        - Rotate piece (Tetris)
  Enter       - Hard drop (Tetris)
  H           - Hold swap (Tetris)
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  brickgame play snake
  brickgame play tetris --fps 30
  brickgame play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// setConfigPath routes the --config flag to the selected game's loader.
func setConfigPath(gameID, path string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(path)
	case "breakout":
		breakout.SetConfigPath(path)
	case "asteroids":
		asteroids.SetConfigPath(path)
	case "tetris":
		tetris.SetConfigPath(path)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for the game before creation
	setConfigPath(gameID, flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
