package game

import "github.com/vovakirdan/gesture-snake/internal/core"

// StateType labels the engine's state machine position.
type StateType string

const (
	StateRunning  StateType = "running"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	FoodX    int
	FoodY    int
	State    StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (e *Engine) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case e.gameOver:
		state = StateGameOver
	case e.paused:
		state = StatePaused
	}

	head := e.snake[0]
	return Snapshot{
		Tick:     e.tick,
		Score:    e.score,
		SnakeLen: len(e.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      e.direction,
		FoodX:    e.food.X,
		FoodY:    e.food.Y,
		State:    state,
	}
}
