// Package gesture turns raw tracking samples into discrete game intents.
// It consumes per-tick position/keypoint snapshots from the perception
// boundary and produces a direction classification plus debounced open-palm
// and closed-fist flags. All coordinates are in screen/pixel space.
package gesture

import "github.com/vovakirdan/gesture-snake/internal/core"

// Landmark names a tracked body/hand reference point.
// A missing landmark is a valid low-confidence state, not an error.
type Landmark string

// Known landmarks. Fingertips follow a fixed enumeration order used by the
// palm spread measurement.
const (
	LandmarkWrist    Landmark = "wrist"
	LandmarkThumb    Landmark = "thumb"
	LandmarkIndex    Landmark = "index"
	LandmarkMiddle   Landmark = "middle"
	LandmarkRing     Landmark = "ring"
	LandmarkPinky    Landmark = "pinky"
	LandmarkNose     Landmark = "nose"
	LandmarkLeftEye  Landmark = "left_eye"
	LandmarkRightEye Landmark = "right_eye"
)

// Fingertips lists the five fingertip landmarks in enumeration order.
var Fingertips = []Landmark{
	LandmarkThumb,
	LandmarkIndex,
	LandmarkMiddle,
	LandmarkRing,
	LandmarkPinky,
}

// KeypointSet maps landmarks to detected positions. Absent landmarks are
// simply not present in the map; a nil set is equivalent to an empty one.
type KeypointSet map[Landmark]core.Vec

// Get returns the position of a landmark and whether it was detected.
func (k KeypointSet) Get(l Landmark) (core.Vec, bool) {
	if k == nil {
		return core.Vec{}, false
	}
	p, ok := k[l]
	return p, ok
}

// presentFingertips returns fingertip positions that were detected, in the
// fixed enumeration order.
func (k KeypointSet) presentFingertips() []core.Vec {
	var tips []core.Vec
	for _, l := range Fingertips {
		if p, ok := k.Get(l); ok {
			tips = append(tips, p)
		}
	}
	return tips
}
