package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/input"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	clock     clock.Clock
	start     time.Time
	recording bool
}

// NewRecorder creates a recorder timed by clk, starting now
func NewRecorder(clk clock.Clock) *Recorder {
	start := clk.Now()
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			StartTime: start.Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		clock:     clk,
		start:     start,
		recording: true,
	}
}

// RecordFrame records a single frame's input transitions
func (r *Recorder) RecordFrame(events []input.Event) {
	if !r.recording {
		return
	}
	t := r.clock.Now().Sub(r.start).Milliseconds()
	r.data.Frames = append(r.data.Frames, encodeFrame(t, events))
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
