// Package scene binds states that implement lifecycle and input methods
// directly, as an alternative to registering one handler per category.
//
// A state type opts into a category by implementing the matching interface:
//
//	type Title struct{}
//	func (t *Title) Update(dt float64) error { ... }
//	func (t *Title) Draw(screen *ebiten.Image) error { ... }
//
//	n, err := scene.Bind[*Title](reg) // n == 2
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/application/state"
)

// Loader runs once, the first time a state of its type becomes current
type Loader interface {
	Load(w event.Window) error
}

// Enterer runs each time the state becomes current through switch or push
type Enterer interface {
	Enter(from state.State, args ...any) error
}

// Leaver runs before the state is replaced, covered, or popped
type Leaver interface {
	Leave(args ...any) error
}

// Resumer runs when the state above it is popped
type Resumer interface {
	Resume(args ...any) error
}

type Updater interface {
	Update(dt float64) error
}

type Drawer interface {
	Draw(screen *ebiten.Image) error
}

type KeyPresser interface {
	KeyPress(key ebiten.Key, mods event.Modifiers) error
}

type KeyReleaser interface {
	KeyRelease(key ebiten.Key, mods event.Modifiers) error
}

// Bind registers a handler on reg for every interface above that S
// implements. It returns the number of handlers registered.
func Bind[S state.State](reg *registry.Registry) (int, error) {
	var zero S
	var binds []func() error

	if _, ok := any(zero).(Loader); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.LoadEvent) error {
				return any(s).(Loader).Load(ev.Window)
			})
		})
	}
	if _, ok := any(zero).(Enterer); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.StateEnterEvent) error {
				return any(s).(Enterer).Enter(ev.From, ev.Args...)
			})
		})
	}
	if _, ok := any(zero).(Leaver); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.StateLeaveEvent) error {
				return any(s).(Leaver).Leave(ev.Args...)
			})
		})
	}
	if _, ok := any(zero).(Resumer); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.StateResumeEvent) error {
				return any(s).(Resumer).Resume(ev.Args...)
			})
		})
	}
	if _, ok := any(zero).(Updater); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.UpdateEvent) error {
				return any(s).(Updater).Update(ev.DT)
			})
		})
	}
	if _, ok := any(zero).(Drawer); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.DrawEvent) error {
				return any(s).(Drawer).Draw(ev.Screen)
			})
		})
	}
	if _, ok := any(zero).(KeyPresser); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.KeyPressEvent) error {
				return any(s).(KeyPresser).KeyPress(ev.Key, ev.Mods)
			})
		})
	}
	if _, ok := any(zero).(KeyReleaser); ok {
		binds = append(binds, func() error {
			return registry.On(reg, func(s S, ev event.KeyReleaseEvent) error {
				return any(s).(KeyReleaser).KeyRelease(ev.Key, ev.Mods)
			})
		})
	}

	for i, bind := range binds {
		if err := bind(); err != nil {
			return i, err
		}
	}
	return len(binds), nil
}
