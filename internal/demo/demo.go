// Package demo is a three-state sample game: a title menu, a play field and
// a pause overlay pushed on top of it.
package demo

import (
	"log/slog"

	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/application/scene"
	"github.com/younwookim/gamebox/internal/application/state"
)

// Navigator performs state transitions. *game.Game and *state.Stack satisfy it.
type Navigator interface {
	Switch(next state.State, args ...any) error
	Push(next state.State, args ...any) error
	Pop(args ...any) error
}

// App holds the demo states
type App struct {
	Menu  *Menu
	Play  *Play
	Pause *Pause
}

// Register creates the demo states and wires their handlers into reg.
// Start the demo with nav.Switch(app.Menu).
func Register(reg *registry.Registry, nav Navigator, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "demo")

	app := &App{
		Menu:  &Menu{},
		Play:  newPlay(),
		Pause: &Pause{nav: nav, logger: logger},
	}
	app.Menu.next = func() error { return nav.Switch(app.Play) }
	app.Play.pause = func() error { return nav.Push(app.Pause) }
	app.Pause.quit = func() error { return nav.Switch(app.Menu) }

	for _, wire := range []func(*registry.Registry) error{
		app.Menu.register,
		app.Play.register,
	} {
		if err := wire(reg); err != nil {
			return nil, err
		}
	}
	if _, err := scene.Bind[*Pause](reg); err != nil {
		return nil, err
	}
	return app, nil
}
