// Package replay records host input snapshots to JSON and plays them back.
package replay

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/system"
)

// FormatVersion is written to every replay and checked on load
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int          `json:"f"`            // Frame number
	K  []ebiten.Key `json:"k,omitempty"`  // Held keys
	T  string       `json:"t,omitempty"`  // Typed text
	MX int          `json:"mx"`           // MouseX
	MY int          `json:"my"`           // MouseY
	B  uint8        `json:"b,omitempty"`  // Mouse button mask
	WX float64      `json:"wx,omitempty"` // Wheel X
	WY float64      `json:"wy,omitempty"` // Wheel Y
	Fo bool         `json:"fo,omitempty"` // Focused
	H  bool         `json:"h,omitempty"`  // Hidden (minimized)
	PX int          `json:"px,omitempty"` // Window X
	PY int          `json:"py,omitempty"` // Window Y
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromSnapshot(f int, s system.Snapshot) FrameInput {
	return FrameInput{
		F:  f,
		K:  s.PressedKeys(),
		T:  s.Text,
		MX: s.CursorX,
		MY: s.CursorY,
		B:  uint8(s.Buttons),
		WX: s.WheelX,
		WY: s.WheelY,
		Fo: s.Focused,
		H:  s.Hidden,
		PX: s.WindowX,
		PY: s.WindowY,
	}
}

// Snapshot converts the frame back into host input. Keys are sorted since
// replay files may be edited by hand.
func (fi FrameInput) Snapshot() system.Snapshot {
	keys := slices.Clone(fi.K)
	slices.Sort(keys)
	return system.Snapshot{
		Keys:    keys,
		Text:    fi.T,
		CursorX: fi.MX,
		CursorY: fi.MY,
		Buttons: event.MouseButtons(fi.B),
		WheelX:  fi.WX,
		WheelY:  fi.WY,
		Focused: fi.Fo,
		Hidden:  fi.H,
		WindowX: fi.PX,
		WindowY: fi.PY,
	}
}
