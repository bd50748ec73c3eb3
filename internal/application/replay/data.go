package replay

import (
	"fmt"

	"github.com/younwookim/samurai-duel/internal/domain/input"
)

// Version is written into every recording.
const Version = "2.0"

// FrameInput records the input transitions of a single frame
type FrameInput struct {
	T int64    `json:"t"`           // Milliseconds since recording start
	P []string `json:"p,omitempty"` // Pressed actions
	R []string `json:"r,omitempty"` // Released actions
}

// ReplayData contains all data needed to replay a match session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks that frame times never go backwards and every action is
// known.
func (d ReplayData) Validate() error {
	var last int64
	for i, f := range d.Frames {
		if f.T < last {
			return fmt.Errorf("frame %d: time %dms goes backwards", i, f.T)
		}
		last = f.T
		if _, err := f.Events(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Events converts the frame back into input events, presses first.
func (f FrameInput) Events() ([]input.Event, error) {
	if len(f.P)+len(f.R) == 0 {
		return nil, nil
	}
	events := make([]input.Event, 0, len(f.P)+len(f.R))
	for _, name := range f.P {
		a, err := input.ParseAction(name)
		if err != nil {
			return nil, err
		}
		events = append(events, input.Press(a))
	}
	for _, name := range f.R {
		a, err := input.ParseAction(name)
		if err != nil {
			return nil, err
		}
		events = append(events, input.Release(a))
	}
	return events, nil
}

func encodeFrame(t int64, events []input.Event) FrameInput {
	fi := FrameInput{T: t}
	for _, ev := range events {
		if ev.Pressed {
			fi.P = append(fi.P, string(ev.Action))
		} else {
			fi.R = append(fi.R, string(ev.Action))
		}
	}
	return fi
}
