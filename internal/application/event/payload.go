package event

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/state"
)

// Event is the payload of a dispatched event
type Event interface {
	Category() Category
}

// LoadEvent fires once per state type, the first time it becomes current
type LoadEvent struct {
	Window Window
}

// UpdateEvent fires every tick
type UpdateEvent struct {
	DT float64 // seconds
}

// DrawEvent fires every frame
type DrawEvent struct {
	Screen *ebiten.Image
}

// KeyPressEvent fires when a key goes down
type KeyPressEvent struct {
	Key  ebiten.Key
	Mods Modifiers
}

// KeyReleaseEvent fires when a key goes up
type KeyReleaseEvent struct {
	Key  ebiten.Key
	Mods Modifiers
}

// KeyDownEvent fires every tick after update with the held-key state
type KeyDownEvent struct {
	Keys KeyState
}

// TextEvent carries characters typed since the last tick
type TextEvent struct {
	Text string
}

// MouseDragEvent fires when the cursor moves with at least one button held
type MouseDragEvent struct {
	X, Y    int
	DX, DY  int
	Buttons MouseButtons
	Mods    Modifiers
}

// MouseMotionEvent fires when the cursor moves with no button held
type MouseMotionEvent struct {
	X, Y   int
	DX, DY int
}

// MousePressEvent fires when a mouse button goes down
type MousePressEvent struct {
	X, Y   int
	Button ebiten.MouseButton
	Mods   Modifiers
}

// MouseReleaseEvent fires when a mouse button goes up
type MouseReleaseEvent struct {
	X, Y   int
	Button ebiten.MouseButton
	Mods   Modifiers
}

// MouseScrollEvent fires when the wheel moves
type MouseScrollEvent struct {
	X, Y             int
	ScrollX, ScrollY float64
}

// WindowFocusEvent fires when the window gains focus
type WindowFocusEvent struct{}

// WindowBlurEvent fires when the window loses focus
type WindowBlurEvent struct{}

// WindowHideEvent fires when the window is minimized
type WindowHideEvent struct{}

// WindowShowEvent fires when the window is restored
type WindowShowEvent struct{}

// WindowMoveEvent fires when the window moves on screen
type WindowMoveEvent struct {
	X, Y int
}

// StateEnterEvent fires on a state that just became current through switch or push.
// From is nil for the very first transition.
type StateEnterEvent struct {
	From state.State
	Args []any
}

// StateLeaveEvent fires on the current state before it is replaced, covered or popped
type StateLeaveEvent struct {
	Args []any
}

// StateResumeEvent fires on a state uncovered by pop
type StateResumeEvent struct {
	Args []any
}

func (LoadEvent) Category() Category         { return Load }
func (UpdateEvent) Category() Category       { return Update }
func (DrawEvent) Category() Category         { return Draw }
func (KeyPressEvent) Category() Category     { return KeyPress }
func (KeyReleaseEvent) Category() Category   { return KeyRelease }
func (KeyDownEvent) Category() Category      { return KeyDown }
func (TextEvent) Category() Category         { return Text }
func (MouseDragEvent) Category() Category    { return MouseDrag }
func (MouseMotionEvent) Category() Category  { return MouseMotion }
func (MousePressEvent) Category() Category   { return MousePress }
func (MouseReleaseEvent) Category() Category { return MouseRelease }
func (MouseScrollEvent) Category() Category  { return MouseScroll }
func (WindowFocusEvent) Category() Category  { return WindowFocus }
func (WindowBlurEvent) Category() Category   { return WindowBlur }
func (WindowHideEvent) Category() Category   { return WindowHide }
func (WindowShowEvent) Category() Category   { return WindowShow }
func (WindowMoveEvent) Category() Category   { return WindowMove }
func (StateEnterEvent) Category() Category   { return StateEnter }
func (StateLeaveEvent) Category() Category   { return StateLeave }
func (StateResumeEvent) Category() Category  { return StateResume }
