// gsnake is a snake game steered by hand gestures from an external tracker.
//
// Usage:
//
//	gsnake play              - Play with the gesture tracker
//	gsnake play --input keyboard - Play with the keyboard only
//	gsnake sources           - List available input sources
//	gsnake serve             - Start SSH server for remote keyboard play
//	gsnake scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gsnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "gsnake",
	Short: "Gesture Snake - steer snake with your hand in the terminal",
	Long: `Gesture Snake is a terminal snake game driven by hand tracking.

An external tracker process watches your hand through the camera and
streams keypoints over a websocket; gsnake turns that motion into snake
controls. Keyboard play and recorded-session replay work without a
tracker.

Available commands:
  play     - Play the game (tracker, keyboard, or replay input)
  sources  - List available input sources
  serve    - Start SSH server for remote keyboard play
  scores   - View high scores

Examples:
  gsnake play
  gsnake play --input keyboard
  gsnake play --input replay --replay session.jsonl
  gsnake play --record session.jsonl
  gsnake serve --ssh :2222
  gsnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gsnake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
