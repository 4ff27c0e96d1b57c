package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/control"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/game"
	"github.com/vovakirdan/gesture-snake/internal/platform/tui"
	"github.com/vovakirdan/gesture-snake/internal/storage"
	"github.com/vovakirdan/gesture-snake/internal/track"
)

var (
	flagConfig     string
	flagDifficulty string
	flagInput      string
	flagTrackerURL string
	flagReplay     string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play gesture snake",
	Long: `Start a game session.

By default the session connects to the gesture tracker and calibrates
against your hand's resting position before play begins. The keyboard
always works as a fallback alongside the tracker.

Controls:
  Hand motion     - Steer (after calibration)
  Open palm       - Speed boost
  Closed fist     - Pause/resume
  WASD/Arrows     - Steer
  Space           - Speed boost
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower snake, larger movement dead-zone
  normal - Default settings
  hard   - Faster snake, twitchier steering

Examples:
  gsnake play
  gsnake play --input keyboard
  gsnake play --difficulty hard
  gsnake play --tracker-url ws://192.168.0.10:8765/track
  gsnake play --input replay --replay session.jsonl
  gsnake play --record session.jsonl
  gsnake play --config ./my-gsnake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagInput, "input", "tracker", "Input source: tracker, keyboard, replay")
	playCmd.Flags().StringVar(&flagTrackerURL, "tracker-url", "", "Tracker websocket URL (overrides config)")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Path to a recorded session to play back")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the input stream to this path")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagTrackerURL != "" {
		cfg.Tracker.URL = flagTrackerURL
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := game.New(cfg.Game, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	source, bridge, err := buildInput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var recorder *track.Recorder
	if flagRecord != "" {
		if source == nil {
			fmt.Fprintln(os.Stderr, "Error: --record needs a tracker or replay input")
			os.Exit(1)
		}
		recorder, err = track.NewRecorder(flagRecord)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Engine:    engine,
		Bridge:    bridge,
		Source:    source,
		Recorder:  recorder,
		Store:     store,
		Runtime:   runtime,
		InputName: flagInput,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildInput creates the sample source and gesture bridge for the chosen
// input mode. Keyboard mode returns both as nil.
func buildInput(cfg config.Config) (track.Source, *control.Bridge, error) {
	switch flagInput {
	case "keyboard":
		return nil, nil, nil

	case "tracker", "replay":
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gsnake"})
		source, err := track.NewSource(flagInput, track.Options{
			Tracker:    cfg.Tracker,
			ReplayPath: flagReplay,
			Logger:     logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return source, control.NewBridge(cfg.Gesture), nil

	default:
		return nil, nil, fmt.Errorf("unknown input %q (tracker, keyboard, replay)", flagInput)
	}
}
