// Package track is the capture/perception boundary. Pose detection itself is
// an external collaborator (a camera + model process); this package only
// transports its per-tick samples into the core. Sources never smooth or
// classify: the gesture pipeline owns all temporal logic.
package track

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// Sample is one tick of tracking data. A nil Position or missing keypoints
// are valid low-confidence states, not errors.
type Sample struct {
	Position   *core.Vec
	Keypoints  gesture.KeypointSet
	Confidence float64
}

// Source supplies one sample per poll. A source must return each physical
// detection at most once; polls with no fresh detection return an absent
// sample (nil position, no keypoints).
type Source interface {
	// Sample returns the latest unconsumed sample, or an absent one.
	Sample() Sample

	// Close releases the source's resources.
	Close() error
}

// Options carries everything a source constructor might need.
type Options struct {
	Tracker    config.TrackerConfig
	ReplayPath string
	Logger     *log.Logger
}

// Factory constructs a source by name.
type Factory func(opts Options) (Source, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// RegisterSource adds a source factory to the registry. Source
// implementations call this from init(). Panics on duplicate names.
func RegisterSource(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("track: source %q already registered", name))
	}
	factories[name] = f
}

// NewSource instantiates a registered source by name.
func NewSource(name string, opts Options) (Source, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("track: unknown source %q", name)
	}
	return f(opts)
}

// Sources returns the registered source names, sorted.
func Sources() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wirePoint is a 2D point on the wire.
type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// wireSample is the JSON frame format shared by the websocket feed and
// recorded replay files. A null/omitted position means no detection.
type wireSample struct {
	Position   *wirePoint           `json:"position"`
	Confidence float64              `json:"confidence"`
	Keypoints  map[string]wirePoint `json:"keypoints,omitempty"`
}

// decodeSample parses one wire frame.
func decodeSample(data []byte) (Sample, error) {
	var w wireSample
	if err := json.Unmarshal(data, &w); err != nil {
		return Sample{}, fmt.Errorf("track: cannot decode sample: %w", err)
	}

	s := Sample{Confidence: w.Confidence}
	if w.Position != nil {
		s.Position = &core.Vec{X: w.Position.X, Y: w.Position.Y}
	}
	if len(w.Keypoints) > 0 {
		s.Keypoints = make(gesture.KeypointSet, len(w.Keypoints))
		for name, p := range w.Keypoints {
			s.Keypoints[gesture.Landmark(name)] = core.Vec{X: p.X, Y: p.Y}
		}
	}
	return s, nil
}

// encodeSample serializes one sample to the wire format.
func encodeSample(s Sample) ([]byte, error) {
	w := wireSample{Confidence: s.Confidence}
	if s.Position != nil {
		w.Position = &wirePoint{X: s.Position.X, Y: s.Position.Y}
	}
	if len(s.Keypoints) > 0 {
		w.Keypoints = make(map[string]wirePoint, len(s.Keypoints))
		for name, p := range s.Keypoints {
			w.Keypoints[string(name)] = wirePoint{X: p.X, Y: p.Y}
		}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("track: cannot encode sample: %w", err)
	}
	return data, nil
}
