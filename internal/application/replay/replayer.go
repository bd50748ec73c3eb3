package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/input"
)

// Frame is one replayed frame
type Frame struct {
	Elapsed time.Duration
	Events  []input.Event
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from validated replay data
func NewReplayer(data ReplayData) (*Replayer, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay: %w", err)
	}
	return &Replayer{data: data}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the current frame and advances
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	// Validated in NewReplayer.
	events, _ := fi.Events()
	return Frame{
		Elapsed: time.Duration(fi.T) * time.Millisecond,
		Events:  events,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: a frame every step,
// carrying the events given for its index.
func CreateTestReplayData(frames int, step time.Duration, events map[int][]input.Event) ReplayData {
	data := ReplayData{
		Version:   Version,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = encodeFrame((time.Duration(i) * step).Milliseconds(), events[i])
	}

	return data
}
