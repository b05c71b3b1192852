package event

import "github.com/hajimehoshi/ebiten/v2"

// Modifiers is a bitmask of held modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m2 is held
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// String returns the held modifiers joined with '+', or "none"
func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{{ModShift, "shift"}, {ModControl, "ctrl"}, {ModAlt, "alt"}, {ModMeta, "meta"}} {
		if m.Has(mod.bit) {
			if s != "" {
				s += "+"
			}
			s += mod.name
		}
	}
	return s
}

// MouseButtons is a bitmask of held mouse buttons
type MouseButtons uint8

// ButtonMask returns the mask bit for a single button
func ButtonMask(b ebiten.MouseButton) MouseButtons {
	return 1 << uint(b)
}

// Has reports whether button b is held
func (m MouseButtons) Has(b ebiten.MouseButton) bool {
	return m&ButtonMask(b) != 0
}

// KeyState is a live view of which keys are held, passed to key_down handlers
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
	PressedKeys() []ebiten.Key
}

// Window is the handle passed to load handlers
type Window interface {
	Size() (width, height int)
	Title() string
	SetTitle(title string)
}
