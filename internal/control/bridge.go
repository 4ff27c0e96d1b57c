// Package control applies snake-domain policy over raw classifier output:
// 180-degree reversal rejection, level-triggered boost and edge-triggered
// one-shot pause.
package control

import (
	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// Bridge converts per-tick gesture classifications into game commands.
// Like the classifier it is single-owner: one driver calls Update once per
// tick and reads the command state in between.
type Bridge struct {
	classifier *gesture.Classifier

	direction core.Direction
	// lastRequested is the reversal reference. It tracks the last direction
	// the bridge accepted, which can run ahead of what the engine has
	// actually committed; the engine applies its own filter against the
	// committed direction.
	lastRequested core.Direction

	boostActive  bool
	pauseOneShot bool
}

// NewBridge creates a bridge with its own classifier.
func NewBridge(cfg config.GestureConfig) *Bridge {
	return &Bridge{
		classifier: gesture.NewClassifier(cfg),
	}
}

// Update feeds one tick of tracking data through the classifier and applies
// the direction, boost and pause policies.
func (b *Bridge) Update(pos *core.Vec, kp gesture.KeypointSet) {
	b.classifier.Update(pos, kp)

	dir := b.classifier.ClassifyDirection()
	open := b.classifier.IsOpenPalm(kp)
	fist := b.classifier.IsClosedFist(kp)

	b.updateDirection(dir)
	b.updateBoost(open)
	b.updatePause(fist)
}

// updateDirection accepts a new direction unless it reverses the last
// accepted one. DirNone leaves the current direction untouched, so the last
// good reading stays sticky through noisy ticks.
func (b *Bridge) updateDirection(dir core.Direction) {
	if dir == core.DirNone {
		return
	}

	if b.lastRequested == core.DirNone {
		// First ever direction: accept unconditionally.
		b.direction = dir
		b.lastRequested = dir
		return
	}

	if dir != b.lastRequested.Opposite() {
		b.direction = dir
		b.lastRequested = dir
	}
}

// updateBoost implements the level-triggered boost: active this tick only if
// the palm is open and the boost cooldown fires, so a continuously open palm
// re-arms boost on the cooldown cadence. A closed palm forces boost off and
// lets the cooldown decay on its own.
func (b *Bridge) updateBoost(open bool) {
	b.boostActive = open && b.classifier.TriggerBoost()
}

// updatePause implements the edge-triggered pause: while the fist is closed
// the cooldown-gated trigger can set the one-shot flag. Opening the fist
// drops an unconsumed trigger rather than queuing it.
func (b *Bridge) updatePause(fist bool) {
	if fist {
		if b.classifier.TriggerPause() {
			b.pauseOneShot = true
		}
	} else {
		b.pauseOneShot = false
	}
}

// Direction returns the current direction command, DirNone before the first
// accepted classification.
func (b *Bridge) Direction() core.Direction {
	return b.direction
}

// Boost reports whether boost is active this tick.
func (b *Bridge) Boost() bool {
	return b.boostActive
}

// ConsumePauseTrigger returns the one-shot pause flag and clears it, so each
// physical fist closure yields at most one true reading when polled once per
// tick.
func (b *Bridge) ConsumePauseTrigger() bool {
	if b.pauseOneShot {
		b.pauseOneShot = false
		return true
	}
	return false
}

// Calibrate delegates to the classifier.
func (b *Bridge) Calibrate(pos *core.Vec) {
	b.classifier.Calibrate(pos)
}

// Calibrated reports whether the classifier has a neutral reference.
func (b *Bridge) Calibrated() bool {
	return b.classifier.Calibrated()
}

// Reset clears bridge state and resets the classifier. Call this together
// with the engine's Reset when restarting a game.
func (b *Bridge) Reset() {
	b.classifier.Reset()
	b.direction = core.DirNone
	b.lastRequested = core.DirNone
	b.boostActive = false
	b.pauseOneShot = false
}
