package gesture

import (
	"testing"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
)

func newTestClassifier() *Classifier {
	return NewClassifier(config.DefaultConfig().Gesture)
}

func feed(c *Classifier, positions ...core.Vec) {
	for i := range positions {
		c.Update(&positions[i], nil)
	}
}

func TestClassifyNeedsThreeSamples(t *testing.T) {
	c := newTestClassifier()

	feed(c, core.Vec{X: 0, Y: 0}, core.Vec{X: 100, Y: 0})

	if dir := c.ClassifyDirection(); dir != core.DirNone {
		t.Errorf("ClassifyDirection with 2 samples = %v, expected none", dir)
	}

	feed(c, core.Vec{X: 200, Y: 0})
	if dir := c.ClassifyDirection(); dir != core.DirRight {
		t.Errorf("ClassifyDirection with 3 samples = %v, expected right", dir)
	}
}

func TestClassifyDirectionSigns(t *testing.T) {
	tests := []struct {
		name string
		end  core.Vec
		want core.Direction
	}{
		{"positive x is right", core.Vec{X: 80, Y: 0}, core.DirRight},
		{"negative x is left", core.Vec{X: -80, Y: 0}, core.DirLeft},
		{"positive y is down", core.Vec{X: 0, Y: 80}, core.DirDown},
		{"negative y is up", core.Vec{X: 0, Y: -80}, core.DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClassifier()
			feed(c, core.Vec{}, core.Vec{X: tc.end.X / 2, Y: tc.end.Y / 2}, tc.end)
			if dir := c.ClassifyDirection(); dir != tc.want {
				t.Errorf("ClassifyDirection = %v, expected %v", dir, tc.want)
			}
		})
	}
}

func TestClassifyThresholdIsExclusive(t *testing.T) {
	// Rejection is abs(d) < threshold, so a displacement of exactly the
	// threshold registers.
	c := newTestClassifier()
	feed(c, core.Vec{}, core.Vec{X: 15}, core.Vec{X: 30})
	if dir := c.ClassifyDirection(); dir != core.DirRight {
		t.Errorf("Displacement == threshold should register, got %v", dir)
	}

	c = newTestClassifier()
	feed(c, core.Vec{}, core.Vec{X: 10}, core.Vec{X: 29.9})
	if dir := c.ClassifyDirection(); dir != core.DirNone {
		t.Errorf("Displacement below threshold should be dead-zoned, got %v", dir)
	}
}

func TestClassifyAxisTieGoesVertical(t *testing.T) {
	// Horizontal wins only on strict inequality; an exact tie resolves to
	// the vertical branch.
	c := newTestClassifier()
	feed(c, core.Vec{}, core.Vec{X: 20, Y: 20}, core.Vec{X: 40, Y: 40})
	if dir := c.ClassifyDirection(); dir != core.DirDown {
		t.Errorf("Axis tie = %v, expected down (vertical branch)", dir)
	}
}

func TestClassifyUsesSlidingWindow(t *testing.T) {
	c := newTestClassifier()

	// Fill the window moving right, then keep feeding a fixed position.
	// Once the rightward samples are evicted the displacement collapses.
	for i := 0; i < 10; i++ {
		feed(c, core.Vec{X: float64(i * 20)})
	}
	if dir := c.ClassifyDirection(); dir != core.DirRight {
		t.Fatalf("Expected right while moving, got %v", dir)
	}

	for i := 0; i < 10; i++ {
		feed(c, core.Vec{X: 180})
	}
	if dir := c.ClassifyDirection(); dir != core.DirNone {
		t.Errorf("Stationary window should classify none, got %v", dir)
	}
	if len(c.history) != 10 {
		t.Errorf("History should stay at capacity 10, got %d", len(c.history))
	}
}

func TestUpdateAbsentPositionIsNoOp(t *testing.T) {
	c := newTestClassifier()
	feed(c, core.Vec{X: 1}, core.Vec{X: 2})

	if !c.TriggerPause() {
		t.Fatal("First TriggerPause should fire")
	}

	before := c.pauseCooldown
	c.Update(nil, nil)
	c.Update(nil, nil)

	if len(c.history) != 2 {
		t.Errorf("Absent position should not touch history, len = %d", len(c.history))
	}
	if c.pauseCooldown != before {
		t.Errorf("Absent position should not tick cooldowns, got %d want %d", c.pauseCooldown, before)
	}
}

func TestCalibrate(t *testing.T) {
	c := newTestClassifier()
	feed(c, core.Vec{X: 1}, core.Vec{X: 2}, core.Vec{X: 3})

	pos := core.Vec{X: 320, Y: 240}
	c.Calibrate(&pos)

	if !c.Calibrated() {
		t.Error("Calibrate should mark the classifier calibrated")
	}
	neutral, ok := c.Neutral()
	if !ok || neutral != pos {
		t.Errorf("Neutral = %v, expected %v", neutral, pos)
	}
	if len(c.history) != 1 || c.history[0] != pos {
		t.Errorf("Calibrate should restart history from the neutral sample, got %v", c.history)
	}

	// Nil position must not crash or change state.
	c.Calibrate(nil)
	if !c.Calibrated() {
		t.Error("Calibrate(nil) should be a no-op")
	}
}

func TestOpenPalmDetection(t *testing.T) {
	c := newTestClassifier()

	openHand := KeypointSet{
		LandmarkWrist:  {X: 100, Y: 200},
		LandmarkThumb:  {X: 40, Y: 140},
		LandmarkIndex:  {X: 80, Y: 120},
		LandmarkMiddle: {X: 100, Y: 110},
		LandmarkRing:   {X: 120, Y: 120},
		LandmarkPinky:  {X: 150, Y: 140},
	}
	if !c.IsOpenPalm(openHand) {
		t.Error("Spread extended hand should read as open palm")
	}

	// Fingers extended but bunched together: reach passes, spread fails.
	bunched := KeypointSet{
		LandmarkWrist:  {X: 100, Y: 200},
		LandmarkThumb:  {X: 95, Y: 120},
		LandmarkIndex:  {X: 100, Y: 118},
		LandmarkMiddle: {X: 105, Y: 120},
	}
	if c.IsOpenPalm(bunched) {
		t.Error("Bunched fingers should not read as open palm")
	}

	if c.IsOpenPalm(nil) {
		t.Error("Nil keypoints should not read as open palm")
	}
	if c.IsOpenPalm(KeypointSet{LandmarkThumb: {X: 1, Y: 1}}) {
		t.Error("Missing wrist should not read as open palm")
	}

	twoFingers := KeypointSet{
		LandmarkWrist: {X: 100, Y: 200},
		LandmarkThumb: {X: 40, Y: 140},
		LandmarkPinky: {X: 150, Y: 140},
	}
	if c.IsOpenPalm(twoFingers) {
		t.Error("Fewer than 3 fingertips should not read as open palm")
	}
}

func TestOpenPalmSpreadUsesPresentFingertips(t *testing.T) {
	c := newTestClassifier()

	// Thumb and pinky missing: spread is measured index-to-ring, which is
	// narrow here even though every present fingertip is far from the wrist.
	hand := KeypointSet{
		LandmarkWrist:  {X: 100, Y: 200},
		LandmarkIndex:  {X: 90, Y: 110},
		LandmarkMiddle: {X: 100, Y: 105},
		LandmarkRing:   {X: 110, Y: 110},
	}
	if c.IsOpenPalm(hand) {
		t.Error("Narrow spread between present fingertips should fail the palm check")
	}
}

func TestClosedFistDetection(t *testing.T) {
	c := newTestClassifier()

	fist := KeypointSet{
		LandmarkWrist:  {X: 100, Y: 200},
		LandmarkThumb:  {X: 95, Y: 185},
		LandmarkIndex:  {X: 100, Y: 180},
		LandmarkMiddle: {X: 105, Y: 182},
		LandmarkRing:   {X: 108, Y: 185},
	}
	if !c.IsClosedFist(fist) {
		t.Error("Fingertips near the wrist should read as a fist")
	}

	open := KeypointSet{
		LandmarkWrist:  {X: 100, Y: 200},
		LandmarkThumb:  {X: 40, Y: 140},
		LandmarkIndex:  {X: 80, Y: 120},
		LandmarkPinky:  {X: 150, Y: 140},
	}
	if c.IsClosedFist(open) {
		t.Error("Extended fingers should not read as a fist")
	}

	if c.IsClosedFist(KeypointSet{LandmarkWrist: {X: 1, Y: 1}}) {
		t.Error("Too few fingertips should not read as a fist")
	}
}

func TestTriggerCooldowns(t *testing.T) {
	c := newTestClassifier()

	if !c.TriggerPause() {
		t.Fatal("First pause trigger should fire")
	}
	if c.TriggerPause() {
		t.Error("Pause trigger should be on cooldown")
	}

	// A failed trigger must not reset the cooldown; only updates tick it.
	for i := 0; i < 30; i++ {
		if c.TriggerPause() {
			t.Fatalf("Pause trigger fired %d ticks early", 30-i)
		}
		p := core.Vec{X: float64(i)}
		c.Update(&p, nil)
	}
	if !c.TriggerPause() {
		t.Error("Pause trigger should re-arm after 30 tracked ticks")
	}

	if !c.TriggerBoost() {
		t.Fatal("First boost trigger should fire")
	}
	for i := 0; i < 10; i++ {
		p := core.Vec{X: float64(i)}
		c.Update(&p, nil)
	}
	if !c.TriggerBoost() {
		t.Error("Boost trigger should re-arm after 10 tracked ticks")
	}
}

func TestResetKeepsCooldowns(t *testing.T) {
	c := newTestClassifier()
	pos := core.Vec{X: 5, Y: 5}
	c.Calibrate(&pos)
	feed(c, core.Vec{X: 40}, core.Vec{X: 80})
	c.ClassifyDirection()
	c.TriggerPause()

	c.Reset()

	if len(c.history) != 0 {
		t.Error("Reset should clear history")
	}
	if c.Calibrated() {
		t.Error("Reset should clear calibration")
	}
	if c.Direction() != core.DirNone {
		t.Error("Reset should clear direction state")
	}
	// Cooldowns survive a reset so a held fist cannot instantly re-pause
	// the restarted game.
	if c.TriggerPause() {
		t.Error("Pause cooldown should survive Reset")
	}
}
