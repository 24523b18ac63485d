// brickgame is a terminal rendition of the classic handheld brick game
// console: Snake, Breakout, Asteroids, and Tetris on a shared 10x20 grid.
//
// Usage:
//
//	brickgame list              - List available games
//	brickgame play <game>       - Play a game
//	brickgame menu              - Start menu to pick games interactively
//	brickgame serve             - Start SSH server for remote play
//	brickgame scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickgame/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/gfcarvalho/brickgame/internal/games/asteroids"
	_ "github.com/gfcarvalho/brickgame/internal/games/breakout"
	_ "github.com/gfcarvalho/brickgame/internal/games/snake"
	_ "github.com/gfcarvalho/brickgame/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - the classic handheld console in your terminal",
	Long: `Brick Game recreates the pocket LCD console in the terminal: four
games played on the same 10x20 grid of blocks.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  brickgame list
  brickgame play snake
  brickgame menu
  brickgame serve --ssh :2222
  brickgame scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickgame/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
