package track

import (
	"bufio"
	"fmt"
	"os"
)

func init() {
	RegisterSource("replay", newReplaySource)
}

// replaySource plays back a recorded session: one JSON frame per line, one
// line per poll. After the last line every poll returns an absent sample,
// which freezes the snake on its last heading.
type replaySource struct {
	file    *os.File
	scanner *bufio.Scanner
}

// newReplaySource opens the JSONL file named by Options.ReplayPath.
func newReplaySource(opts Options) (Source, error) {
	if opts.ReplayPath == "" {
		return nil, fmt.Errorf("track: replay source needs a file path")
	}

	f, err := os.Open(opts.ReplayPath)
	if err != nil {
		return nil, fmt.Errorf("track: cannot open replay %s: %w", opts.ReplayPath, err)
	}

	return &replaySource{
		file:    f,
		scanner: bufio.NewScanner(f),
	}, nil
}

// Sample returns the next recorded frame, or an absent sample at EOF.
// Malformed lines read as absent so an interrupted recording stays usable.
func (r *replaySource) Sample() Sample {
	if r.scanner == nil || !r.scanner.Scan() {
		r.scanner = nil
		return Sample{}
	}

	sample, err := decodeSample(r.scanner.Bytes())
	if err != nil {
		return Sample{}
	}
	return sample
}

// Close closes the underlying file.
func (r *replaySource) Close() error {
	return r.file.Close()
}

// Recorder writes samples to a JSONL file for later replay.
type Recorder struct {
	file *os.File
	w    *bufio.Writer
}

// NewRecorder creates (or truncates) a recording file.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("track: cannot create recording %s: %w", path, err)
	}
	return &Recorder{
		file: f,
		w:    bufio.NewWriter(f),
	}, nil
}

// Write appends one sample as a JSONL line.
func (r *Recorder) Write(s Sample) error {
	data, err := encodeSample(s)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("track: cannot write recording: %w", err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("track: cannot write recording: %w", err)
	}
	return nil
}

// Close flushes and closes the recording file.
func (r *Recorder) Close() error {
	if err := r.w.Flush(); err != nil {
		r.file.Close()
		return fmt.Errorf("track: cannot flush recording: %w", err)
	}
	return r.file.Close()
}
