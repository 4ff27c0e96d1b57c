package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known. The empty preset is
// valid and leaves the config untouched.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset adjusts game pacing and gesture sensitivity for a preset.
// Easy slows the snake and widens the dead-zone; hard does the opposite.
// Normal and the empty preset keep the configured values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.BaseSpeed = 12
		cfg.Game.BoostSpeed = 6
		cfg.Gesture.MovementThreshold = 40
	case DifficultyHard:
		cfg.Game.BaseSpeed = 7
		cfg.Game.BoostSpeed = 4
		cfg.Gesture.MovementThreshold = 22
	}
}
