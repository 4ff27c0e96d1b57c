// Package game implements the deterministic grid-based snake simulation.
// It consumes direction/boost commands from the control bridge and an
// external pause toggle, and exposes read-only state for renderers.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
)

// initialLength is the number of cells the snake is seeded with.
const initialLength = 3

// Cell is a grid coordinate. The engine never sees pixel-space positions;
// steering arrives purely as Direction symbols.
type Cell struct {
	X, Y int
}

// Engine is the snake state machine. States are running, paused and game
// over; paused and game over are reachable only from running, and game over
// is terminal until Reset.
//
// The engine runs a fixed-timestep sub-simulation inside the caller's poll
// loop: every Update advances a step counter, and only when the counter
// reaches the current speed threshold does one discrete movement step occur.
type Engine struct {
	cfg config.GameConfig
	rng *rand.Rand

	tick uint64

	snake []Cell // Head at index 0
	food  Cell

	direction core.Direction // Committed: applied at the last movement step
	nextDir   core.Direction // Buffered: applied at the next movement step

	score      int
	gameOver   bool
	paused     bool
	stepTicker int
}

// New creates an engine. Zero-valued config fields take defaults; explicit
// dimensions must fit the starting snake, otherwise construction fails. The
// seeded grid always has at least one free cell for the first food spawn.
func New(cfg config.GameConfig, seed int64) (*Engine, error) {
	cfg.Normalize()

	if cfg.GridHeight < 1 || cfg.GridWidth/2 < initialLength-1 {
		return nil, fmt.Errorf("game: grid %dx%d cannot fit the starting snake", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.BaseSpeed < 1 || cfg.BoostSpeed < 1 {
		return nil, fmt.Errorf("game: movement speeds must be at least 1 tick per step")
	}

	e := &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.Reset()
	return e, nil
}

// Reset restarts the simulation: a three-cell snake centered on the grid
// heading right, zero score, cleared flags and freshly spawned food.
// The control bridge must be reset at the same time.
func (e *Engine) Reset() {
	cx := e.cfg.GridWidth / 2
	cy := e.cfg.GridHeight / 2

	e.snake = []Cell{
		{X: cx, Y: cy}, // Head
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	e.direction = core.DirRight
	e.nextDir = core.DirRight
	e.score = 0
	e.gameOver = false
	e.paused = false
	e.stepTicker = 0
	e.tick = 0
	e.food = e.spawnFood()
}

// Update advances the simulation by one poll tick. A non-none direction that
// does not reverse the committed direction replaces the buffered one; the
// buffer is applied at the next movement step. Boost halves the tick count
// per step. No-op while paused or after game over.
func (e *Engine) Update(dir core.Direction, boost bool) {
	if e.gameOver || e.paused {
		return
	}
	e.tick++

	// Second reversal filter, independent of the bridge's: the bridge
	// checks against the last requested direction, the engine against the
	// last committed one. Both are needed at reversal boundaries.
	if dir != core.DirNone && dir != e.direction.Opposite() {
		e.nextDir = dir
	}

	speed := e.cfg.BaseSpeed
	if boost {
		speed = e.cfg.BoostSpeed
	}

	e.stepTicker++
	if e.stepTicker >= speed {
		e.stepTicker = 0
		e.step()
	}
}

// step performs one discrete movement step.
func (e *Engine) step() {
	e.direction = e.nextDir

	head := e.snake[0]
	var newHead Cell
	switch e.direction {
	case core.DirUp:
		newHead = Cell{X: head.X, Y: head.Y - 1}
	case core.DirDown:
		newHead = Cell{X: head.X, Y: head.Y + 1}
	case core.DirLeft:
		newHead = Cell{X: head.X - 1, Y: head.Y}
	case core.DirRight:
		newHead = Cell{X: head.X + 1, Y: head.Y}
	}

	// Wall collision.
	if newHead.X < 0 || newHead.X >= e.cfg.GridWidth ||
		newHead.Y < 0 || newHead.Y >= e.cfg.GridHeight {
		e.gameOver = true
		return
	}

	// Self collision against the whole body, current tail included: moving
	// into the cell the tail is about to vacate still ends the game.
	if e.isSnakeAt(newHead) {
		e.gameOver = true
		return
	}

	e.snake = append([]Cell{newHead}, e.snake...)

	if newHead == e.food {
		e.score += e.cfg.FoodScore
		// Tail stays: the snake grows by one cell. A snake covering every
		// cell leaves nowhere to respawn food; the game ends won.
		if len(e.snake) == e.cfg.GridWidth*e.cfg.GridHeight {
			e.gameOver = true
			return
		}
		e.food = e.spawnFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}
}

// spawnFood draws random cells until one is not occupied by the snake.
// Construction and the full-grid check after growth guarantee a free cell
// exists.
func (e *Engine) spawnFood() Cell {
	for {
		c := Cell{
			X: e.rng.Intn(e.cfg.GridWidth),
			Y: e.rng.Intn(e.cfg.GridHeight),
		}
		if !e.isSnakeAt(c) {
			return c
		}
	}
}

// isSnakeAt checks if the snake occupies the given cell.
func (e *Engine) isSnakeAt(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// TogglePause flips the paused state. Pausing a terminated game is a no-op.
func (e *Engine) TogglePause() {
	if !e.gameOver {
		e.paused = !e.paused
	}
}

// Snake returns a copy of the occupied cells, head first.
func (e *Engine) Snake() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Food returns the current food cell.
func (e *Engine) Food() Cell {
	return e.food
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Direction returns the committed movement direction.
func (e *Engine) Direction() core.Direction {
	return e.direction
}

// GridSize returns the grid dimensions in cells.
func (e *Engine) GridSize() (int, int) {
	return e.cfg.GridWidth, e.cfg.GridHeight
}

// CellSize returns the configured cell edge in pixels.
func (e *Engine) CellSize() int {
	return e.cfg.CellSize
}

// State summarizes the engine status for the platform layer.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.gameOver,
		Paused:   e.paused,
	}
}
