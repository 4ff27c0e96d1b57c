package gesture

import (
	"math"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
)

// minSamples is the smallest history the direction classifier will act on.
const minSamples = 3

// Classifier analyzes a stream of tracking positions and keypoint snapshots.
// It keeps a sliding window of recent positions for direction smoothing and
// tick-counted cooldowns that rate-limit the pause and boost gestures.
//
// The classifier is single-owner: one driver calls Update once per tick and
// reads classifications in between. No internal locking.
type Classifier struct {
	cfg config.GestureConfig

	// Sliding window of recent positions, oldest first.
	history []core.Vec

	neutral    core.Vec
	calibrated bool

	current core.Direction
	last    core.Direction

	pauseCooldown int
	boostCooldown int
}

// NewClassifier creates a classifier with the given tuning. Zero-valued
// fields fall back to defaults.
func NewClassifier(cfg config.GestureConfig) *Classifier {
	cfg.Normalize()
	return &Classifier{
		cfg:     cfg,
		history: make([]core.Vec, 0, cfg.HistorySize),
	}
}

// Calibrate records pos as the neutral reference and restarts the history
// window from it. A nil pos is ignored.
func (c *Classifier) Calibrate(pos *core.Vec) {
	if pos == nil {
		return
	}
	c.neutral = *pos
	c.calibrated = true
	c.history = c.history[:0]
	c.push(*pos)
}

// Calibrated reports whether a neutral position has been recorded.
func (c *Classifier) Calibrated() bool {
	return c.calibrated
}

// Neutral returns the calibration reference, if one was recorded.
func (c *Classifier) Neutral() (core.Vec, bool) {
	return c.neutral, c.calibrated
}

// Update feeds one tick of tracking data. With a present position it appends
// to the history window (evicting the oldest sample on overflow) and
// advances both cooldowns. An absent position is a no-op: cooldowns only
// decay while the hand is actually tracked, so a lost detection cannot
// re-arm a gesture.
func (c *Classifier) Update(pos *core.Vec, _ KeypointSet) {
	if pos == nil {
		return
	}

	c.push(*pos)

	if c.pauseCooldown > 0 {
		c.pauseCooldown--
	}
	if c.boostCooldown > 0 {
		c.boostCooldown--
	}
}

// push appends a position to the sliding window.
func (c *Classifier) push(p core.Vec) {
	if len(c.history) >= c.cfg.HistorySize {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, p)
}

// ClassifyDirection computes the dominant movement direction over the
// history window: displacement from oldest to newest sample, winning axis by
// absolute magnitude (vertical wins ties), dead-zoned by the movement
// threshold. Returns DirNone with fewer than three samples or sub-threshold
// movement.
func (c *Classifier) ClassifyDirection() core.Direction {
	if len(c.history) < minSamples {
		return core.DirNone
	}

	d := c.history[len(c.history)-1].Sub(c.history[0])

	var dir core.Direction
	if math.Abs(d.X) > math.Abs(d.Y) {
		if math.Abs(d.X) < c.cfg.MovementThreshold {
			return core.DirNone
		}
		if d.X > 0 {
			dir = core.DirRight
		} else {
			dir = core.DirLeft
		}
	} else {
		if math.Abs(d.Y) < c.cfg.MovementThreshold {
			return core.DirNone
		}
		// Screen coordinates: Y grows downward.
		if d.Y > 0 {
			dir = core.DirDown
		} else {
			dir = core.DirUp
		}
	}

	c.last = c.current
	c.current = dir
	return dir
}

// Direction returns the most recent non-none classification.
func (c *Classifier) Direction() core.Direction {
	return c.current
}

// IsOpenPalm detects a spread, extended hand: wrist plus at least three
// fingertips present, mean wrist-to-fingertip distance above the reach
// threshold and the first-to-last fingertip spread above the spread
// threshold.
func (c *Classifier) IsOpenPalm(kp KeypointSet) bool {
	wrist, tips, ok := c.handShape(kp)
	if !ok {
		return false
	}

	reach := meanDist(wrist, tips)
	spread := tips[0].Dist(tips[len(tips)-1])

	return reach > c.cfg.PalmMinReach && spread > c.cfg.PalmMinSpread
}

// IsClosedFist detects a fist: wrist plus at least three fingertips present
// with the mean wrist-to-fingertip distance below the fist threshold.
func (c *Classifier) IsClosedFist(kp KeypointSet) bool {
	wrist, tips, ok := c.handShape(kp)
	if !ok {
		return false
	}
	return meanDist(wrist, tips) < c.cfg.FistMaxReach
}

// handShape extracts the wrist and present fingertips, requiring at least
// three fingertips for a usable hand shape.
func (c *Classifier) handShape(kp KeypointSet) (core.Vec, []core.Vec, bool) {
	wrist, ok := kp.Get(LandmarkWrist)
	if !ok {
		return core.Vec{}, nil, false
	}
	tips := kp.presentFingertips()
	if len(tips) < 3 {
		return core.Vec{}, nil, false
	}
	return wrist, tips, true
}

// meanDist returns the mean Euclidean distance from origin to each point.
func meanDist(origin core.Vec, points []core.Vec) float64 {
	var sum float64
	for _, p := range points {
		sum += origin.Dist(p)
	}
	return sum / float64(len(points))
}

// TriggerPause fires the pause gesture if its cooldown has expired, arming
// a fresh cooldown. A false return does not touch the running cooldown.
// This is a rate limiter, not a detector: callers check IsClosedFist first.
func (c *Classifier) TriggerPause() bool {
	if c.pauseCooldown == 0 {
		c.pauseCooldown = c.cfg.PauseCooldownTicks
		return true
	}
	return false
}

// TriggerBoost fires the boost gesture if its cooldown has expired.
func (c *Classifier) TriggerBoost() bool {
	if c.boostCooldown == 0 {
		c.boostCooldown = c.cfg.BoostCooldownTicks
		return true
	}
	return false
}

// Reset clears the history window, the direction state and the calibration.
// Cooldowns deliberately survive a reset: they keep a fist held through a
// restart from immediately re-triggering pause in the new game.
func (c *Classifier) Reset() {
	c.history = c.history[:0]
	c.current = core.DirNone
	c.last = core.DirNone
	c.calibrated = false
	c.neutral = core.Vec{}
}
