// Package config provides YAML-based configuration loading and difficulty
// presets for the gesture snake game.
package config

// Config is the top-level configuration for a game session.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Gesture GestureConfig `yaml:"gesture"`
	Tracker TrackerConfig `yaml:"tracker"`
}

// GameConfig defines the grid and pacing of the snake simulation.
type GameConfig struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	CellSize   int `yaml:"cell_size"` // Cell edge in pixels, reported to renderers

	// Movement cadence in poll ticks per discrete step.
	BaseSpeed  int `yaml:"base_speed"`
	BoostSpeed int `yaml:"boost_speed"`

	FoodScore int `yaml:"food_score"`
}

// GestureConfig tunes the gesture classifier. All distances are in the same
// pixel units as the incoming tracking coordinates.
type GestureConfig struct {
	MovementThreshold  float64 `yaml:"movement_threshold"` // Dead-zone radius for direction changes
	HistorySize        int     `yaml:"history_size"`       // Smoothing window length
	PauseCooldownTicks int     `yaml:"pause_cooldown_ticks"`
	BoostCooldownTicks int     `yaml:"boost_cooldown_ticks"`
	PalmMinReach       float64 `yaml:"palm_min_reach"`  // Mean wrist-to-fingertip distance for an open palm
	PalmMinSpread      float64 `yaml:"palm_min_spread"` // First-to-last fingertip distance for an open palm
	FistMaxReach       float64 `yaml:"fist_max_reach"`  // Mean wrist-to-fingertip distance for a fist
}

// TrackerConfig points at the external pose-detection service.
type TrackerConfig struct {
	URL             string `yaml:"url"`               // WebSocket endpoint, e.g. ws://localhost:8765/track
	DialTimeoutSecs int    `yaml:"dial_timeout_secs"` // Initial connection timeout
	ReconnectSecs   int    `yaml:"reconnect_secs"`    // Delay between reconnect attempts
}

// Normalize fills zero-valued fields with defaults.
func (c *GameConfig) Normalize() {
	def := DefaultConfig().Game
	if c.GridWidth == 0 {
		c.GridWidth = def.GridWidth
	}
	if c.GridHeight == 0 {
		c.GridHeight = def.GridHeight
	}
	if c.CellSize == 0 {
		c.CellSize = def.CellSize
	}
	if c.BaseSpeed == 0 {
		c.BaseSpeed = def.BaseSpeed
	}
	if c.BoostSpeed == 0 {
		c.BoostSpeed = def.BoostSpeed
	}
	if c.FoodScore == 0 {
		c.FoodScore = def.FoodScore
	}
}

// Normalize fills zero-valued fields with defaults.
func (c *GestureConfig) Normalize() {
	def := DefaultConfig().Gesture
	if c.MovementThreshold == 0 {
		c.MovementThreshold = def.MovementThreshold
	}
	if c.HistorySize == 0 {
		c.HistorySize = def.HistorySize
	}
	if c.PauseCooldownTicks == 0 {
		c.PauseCooldownTicks = def.PauseCooldownTicks
	}
	if c.BoostCooldownTicks == 0 {
		c.BoostCooldownTicks = def.BoostCooldownTicks
	}
	if c.PalmMinReach == 0 {
		c.PalmMinReach = def.PalmMinReach
	}
	if c.PalmMinSpread == 0 {
		c.PalmMinSpread = def.PalmMinSpread
	}
	if c.FistMaxReach == 0 {
		c.FistMaxReach = def.FistMaxReach
	}
}

// Normalize fills zero-valued fields with defaults.
func (c *TrackerConfig) Normalize() {
	def := DefaultConfig().Tracker
	if c.URL == "" {
		c.URL = def.URL
	}
	if c.DialTimeoutSecs == 0 {
		c.DialTimeoutSecs = def.DialTimeoutSecs
	}
	if c.ReconnectSecs == 0 {
		c.ReconnectSecs = def.ReconnectSecs
	}
}

// Normalize fills zero-valued fields across all sections.
func (c *Config) Normalize() {
	c.Game.Normalize()
	c.Gesture.Normalize()
	c.Tracker.Normalize()
}
