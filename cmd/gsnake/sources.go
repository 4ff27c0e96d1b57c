package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesture-snake/internal/track"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available input sources",
	Long:  `Shows the input sources that can drive a game session.`,
	Run:   runSources,
}

var sourceDescriptions = map[string]string{
	"tracker":  "hand keypoints streamed from the gesture tracker websocket",
	"replay":   "recorded session played back from a JSONL file",
	"keyboard": "local keyboard only, no gesture pipeline",
}

func runSources(_ *cobra.Command, _ []string) {
	fmt.Println("Available input sources:")
	fmt.Println()

	names := append(track.Sources(), "keyboard")
	for _, name := range names {
		fmt.Printf("  %-10s  %s\n", name, sourceDescriptions[name])
	}

	fmt.Println()
	fmt.Println("Run 'gsnake play --input <source>' to pick one.")
}
