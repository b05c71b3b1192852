// Package dispatch routes events to the handlers of the current state.
//
// The Dispatcher sits between the host window system and the registry: the
// host calls one entry point per event category, the dispatcher resolves the
// handlers registered for that category by the current state's type, and
// invokes them in registration order with the current state and the payload.
//
// The Dispatcher also implements state.Notifier, so lifecycle notifications
// (load, state_enter, state_leave, state_resume) raised by the state stack
// reach the handlers of the state they are about.
package dispatch

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/application/state"
)

// Observer is told about every dispatch
type Observer interface {
	ObserveDispatch(category event.Category, handlers int)
	ObserveHandlerError(category event.Category)
}

// Dispatcher fans events out to the handlers of the current state.
// It is not safe for concurrent use.
type Dispatcher struct {
	registry *registry.Registry
	stack    *state.Stack
	window   event.Window
	observer Observer
	logger   *slog.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithWindow sets the window handle passed to load handlers
func WithWindow(w event.Window) Option {
	return func(d *Dispatcher) { d.window = w }
}

// WithObserver sets the dispatch observer
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New creates a dispatcher reading handlers from reg and the current state from stack.
// The caller wires lifecycle notifications with stack.SetNotifier(d).
func New(reg *registry.Registry, stack *state.Stack, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		stack:    stack,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch delivers ev to the current state's handlers.
// With no current state it does nothing.
func (d *Dispatcher) Dispatch(ev event.Event) error {
	cur, ok := d.stack.Current()
	if !ok {
		return nil
	}
	return d.dispatchTo(cur, ev)
}

// dispatchTo resolves handlers for s's type and runs them in order.
// The handler list and s are fixed before the first call, so transitions
// made by a handler do not change who receives this event.
func (d *Dispatcher) dispatchTo(s state.State, ev event.Event) error {
	category := ev.Category()
	handlers := d.registry.Resolve(category, state.TypeOf(s))
	if d.observer != nil {
		d.observer.ObserveDispatch(category, len(handlers))
	}

	for _, h := range handlers {
		if err := h(s, ev); err != nil {
			if d.observer != nil {
				d.observer.ObserveHandlerError(category)
			}
			d.logger.Debug("handler failed",
				"category", category.String(),
				"state", state.TypeOf(s).String(),
				"error", err)
			return err
		}
	}
	return nil
}

// Load notifies s of its one-time load, passing the window handle
func (d *Dispatcher) Load(s state.State) error {
	return d.dispatchTo(s, event.LoadEvent{Window: d.window})
}

// Enter notifies s that it became current, coming from the given state
func (d *Dispatcher) Enter(s, from state.State, args ...any) error {
	return d.dispatchTo(s, event.StateEnterEvent{From: from, Args: args})
}

// Leave notifies s that it is about to stop being current
func (d *Dispatcher) Leave(s state.State, args ...any) error {
	return d.dispatchTo(s, event.StateLeaveEvent{Args: args})
}

// Resume notifies s that the state above it was popped
func (d *Dispatcher) Resume(s state.State, args ...any) error {
	return d.dispatchTo(s, event.StateResumeEvent{Args: args})
}

// Update runs the update handlers, then the key_down handlers with keys.
// An update handler error skips key_down.
func (d *Dispatcher) Update(dt float64, keys event.KeyState) error {
	if err := d.Dispatch(event.UpdateEvent{DT: dt}); err != nil {
		return err
	}
	return d.KeyDown(keys)
}

// KeyDown delivers the held-key snapshot
func (d *Dispatcher) KeyDown(keys event.KeyState) error {
	return d.Dispatch(event.KeyDownEvent{Keys: keys})
}

// Draw delivers the screen to draw on
func (d *Dispatcher) Draw(screen *ebiten.Image) error {
	return d.Dispatch(event.DrawEvent{Screen: screen})
}

// KeyPress delivers a key going down
func (d *Dispatcher) KeyPress(key ebiten.Key, mods event.Modifiers) error {
	return d.Dispatch(event.KeyPressEvent{Key: key, Mods: mods})
}

// KeyRelease delivers a key coming up
func (d *Dispatcher) KeyRelease(key ebiten.Key, mods event.Modifiers) error {
	return d.Dispatch(event.KeyReleaseEvent{Key: key, Mods: mods})
}

// Text delivers characters typed this tick
func (d *Dispatcher) Text(text string) error {
	return d.Dispatch(event.TextEvent{Text: text})
}

// MouseDrag delivers cursor movement with buttons held
func (d *Dispatcher) MouseDrag(x, y, dx, dy int, buttons event.MouseButtons, mods event.Modifiers) error {
	return d.Dispatch(event.MouseDragEvent{X: x, Y: y, DX: dx, DY: dy, Buttons: buttons, Mods: mods})
}

// MouseMotion delivers cursor movement with no buttons held
func (d *Dispatcher) MouseMotion(x, y, dx, dy int) error {
	return d.Dispatch(event.MouseMotionEvent{X: x, Y: y, DX: dx, DY: dy})
}

// MousePress delivers a mouse button going down
func (d *Dispatcher) MousePress(x, y int, button ebiten.MouseButton, mods event.Modifiers) error {
	return d.Dispatch(event.MousePressEvent{X: x, Y: y, Button: button, Mods: mods})
}

// MouseRelease delivers a mouse button coming up
func (d *Dispatcher) MouseRelease(x, y int, button ebiten.MouseButton, mods event.Modifiers) error {
	return d.Dispatch(event.MouseReleaseEvent{X: x, Y: y, Button: button, Mods: mods})
}

// MouseScroll delivers a wheel movement at the cursor
func (d *Dispatcher) MouseScroll(x, y int, scrollX, scrollY float64) error {
	return d.Dispatch(event.MouseScrollEvent{X: x, Y: y, ScrollX: scrollX, ScrollY: scrollY})
}

// WindowFocus delivers the window gaining focus
func (d *Dispatcher) WindowFocus() error { return d.Dispatch(event.WindowFocusEvent{}) }

// WindowBlur delivers the window losing focus
func (d *Dispatcher) WindowBlur() error { return d.Dispatch(event.WindowBlurEvent{}) }

// WindowHide delivers the window being minimized
func (d *Dispatcher) WindowHide() error { return d.Dispatch(event.WindowHideEvent{}) }

// WindowShow delivers the window being restored
func (d *Dispatcher) WindowShow() error { return d.Dispatch(event.WindowShowEvent{}) }

// WindowMove delivers the window's new position
func (d *Dispatcher) WindowMove(x, y int) error {
	return d.Dispatch(event.WindowMoveEvent{X: x, Y: y})
}
