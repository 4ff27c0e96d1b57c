package config

import (
	_ "embed"
)

//go:embed defaults/gsnake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors the
// embedded defaults/gsnake.yaml and serves as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			GridWidth:  20,
			GridHeight: 20,
			CellSize:   20,
			BaseSpeed:  10,
			BoostSpeed: 5,
			FoodScore:  10,
		},
		Gesture: GestureConfig{
			MovementThreshold:  30,
			HistorySize:        10,
			PauseCooldownTicks: 30,
			BoostCooldownTicks: 10,
			PalmMinReach:       40,
			PalmMinSpread:      50,
			FistMaxReach:       30,
		},
		Tracker: TrackerConfig{
			URL:             "ws://localhost:8765/track",
			DialTimeoutSecs: 5,
			ReconnectSecs:   2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
