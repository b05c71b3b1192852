// Package system holds the host-side input plumbing: polling ebiten once per
// tick and turning consecutive polls into discrete events.
package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gamebox/internal/application/event"
)

// Snapshot holds the raw input and window state for one tick
type Snapshot struct {
	Keys    []ebiten.Key // held keys, sorted
	Text    string       // characters typed this tick
	CursorX int
	CursorY int
	Buttons event.MouseButtons
	WheelX  float64
	WheelY  float64
	Focused bool
	Hidden  bool // minimized
	WindowX int
	WindowY int
}

// IsKeyPressed reports whether key is held. Implements event.KeyState.
func (s Snapshot) IsKeyPressed(key ebiten.Key) bool {
	_, found := slices.BinarySearch(s.Keys, key)
	return found
}

// PressedKeys returns the held keys. Implements event.KeyState.
func (s Snapshot) PressedKeys() []ebiten.Key {
	return slices.Clone(s.Keys)
}

// Modifiers returns the modifier mask implied by the held keys
func (s Snapshot) Modifiers() event.Modifiers {
	var m event.Modifiers
	for _, k := range s.Keys {
		switch k {
		case ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
			m |= event.ModShift
		case ebiten.KeyControlLeft, ebiten.KeyControlRight:
			m |= event.ModControl
		case ebiten.KeyAltLeft, ebiten.KeyAltRight:
			m |= event.ModAlt
		case ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
			m |= event.ModMeta
		}
	}
	return m
}

// InputSystem reads ebiten's input state
type InputSystem struct {
	keys  []ebiten.Key
	chars []rune
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current input state. It never runs out of input.
func (s *InputSystem) Poll() (Snapshot, bool) {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	s.chars = ebiten.AppendInputChars(s.chars[:0])

	keys := slices.Clone(s.keys)
	slices.Sort(keys)

	var buttons event.MouseButtons
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if ebiten.IsMouseButtonPressed(b) {
			buttons |= event.ButtonMask(b)
		}
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	px, py := ebiten.WindowPosition()

	return Snapshot{
		Keys:    keys,
		Text:    string(s.chars),
		CursorX: mx,
		CursorY: my,
		Buttons: buttons,
		WheelX:  wx,
		WheelY:  wy,
		Focused: ebiten.IsFocused(),
		Hidden:  ebiten.IsWindowMinimized(),
		WindowX: px,
		WindowY: py,
	}, true
}
