// Package game adapts the state stack and dispatcher to ebiten's game loop.
//
// Each tick Game polls an InputSource for a system.Snapshot, turns the change
// since the previous tick into discrete events, dispatches them to the
// current state, and then dispatches update and key_down.
package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/dispatch"
	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/application/state"
	"github.com/younwookim/gamebox/internal/application/system"
	"github.com/younwookim/gamebox/internal/container"
	"github.com/younwookim/gamebox/internal/infrastructure/config"
)

// InputSource yields one snapshot per tick. ok is false once input is exhausted.
type InputSource interface {
	Poll() (s system.Snapshot, ok bool)
}

// FrameRecorder receives every polled snapshot
type FrameRecorder interface {
	RecordFrame(s system.Snapshot)
}

// TickObserver is told how long each Update took
type TickObserver interface {
	ObserveTick(d time.Duration)
}

// Observer receives dispatch, transition and tick observations
type Observer interface {
	dispatch.Observer
	state.TransitionObserver
	TickObserver
}

// Game implements ebiten.Game and event.Window
type Game struct {
	stack      *state.Stack
	dispatcher *dispatch.Dispatcher
	input      InputSource
	recorder   FrameRecorder
	ticks      TickObserver
	pending    *container.PriorityQueue[event.Event]
	prev       system.Snapshot
	primed     bool
	drawErr    error
	window     config.WindowConfig
	dt         float64
	running    bool
	logger     *slog.Logger
}

// Option configures a Game
type Option func(*gameOptions)

type gameOptions struct {
	input    InputSource
	recorder FrameRecorder
	observer Observer
	logger   *slog.Logger
}

// WithInputSource replaces the live ebiten input, e.g. with a replay
func WithInputSource(src InputSource) Option {
	return func(o *gameOptions) { o.input = src }
}

// WithRecorder records every polled snapshot
func WithRecorder(r FrameRecorder) Option {
	return func(o *gameOptions) { o.recorder = r }
}

// WithObserver reports dispatches, transitions and tick durations
func WithObserver(obs Observer) Option {
	return func(o *gameOptions) { o.observer = obs }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(o *gameOptions) { o.logger = l }
}

// New creates a Game dispatching the handlers in reg. No state is current
// until the first Switch.
func New(reg *registry.Registry, window config.WindowConfig, opts ...Option) *Game {
	o := gameOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.input == nil {
		o.input = system.NewInputSystem()
	}

	if window.TPS <= 0 {
		window.TPS = ebiten.DefaultTPS
	}

	g := &Game{
		input:    o.input,
		recorder: o.recorder,
		pending:  container.NewPriorityQueue[event.Event](),
		window:   window,
		dt:       1.0 / float64(window.TPS),
		logger:   o.logger,
	}

	stackOpts := []state.Option{state.WithLogger(o.logger)}
	dispatchOpts := []dispatch.Option{dispatch.WithWindow(g), dispatch.WithLogger(o.logger)}
	if o.observer != nil {
		stackOpts = append(stackOpts, state.WithObserver(o.observer))
		dispatchOpts = append(dispatchOpts, dispatch.WithObserver(o.observer))
		g.ticks = o.observer
	}

	g.stack = state.NewStack(stackOpts...)
	g.dispatcher = dispatch.New(reg, g.stack, dispatchOpts...)
	g.stack.SetNotifier(g.dispatcher)
	return g
}

// Switch replaces the current state with next
func (g *Game) Switch(next state.State, args ...any) error {
	return g.stack.Switch(next, args...)
}

// Push suspends the current state and enters next on top of it
func (g *Game) Push(next state.State, args ...any) error {
	return g.stack.Push(next, args...)
}

// Pop leaves the current state and resumes the one below it
func (g *Game) Pop(args ...any) error {
	return g.stack.Pop(args...)
}

// Current returns the state receiving events
func (g *Game) Current() (state.State, bool) {
	return g.stack.Current()
}

// Depth returns the number of states on the stack
func (g *Game) Depth() int {
	return g.stack.Depth()
}

// Update polls input, dispatches the raw events it implies, then update and
// key_down. Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.ticks != nil {
		start := time.Now()
		defer func() { g.ticks.ObserveTick(time.Since(start)) }()
	}

	if err := g.drawErr; err != nil {
		g.drawErr = nil
		return err
	}

	snap, ok := g.input.Poll()
	if !ok {
		g.logger.Info("input exhausted, stopping")
		return ebiten.Termination
	}
	if g.recorder != nil {
		g.recorder.RecordFrame(snap)
	}

	// The first snapshot is only a baseline.
	if g.primed {
		system.Diff(g.prev, snap, g.pending)
	}
	g.prev, g.primed = snap, true

	for {
		ev, _, ok := g.pending.Dequeue()
		if !ok {
			break
		}
		if err := g.dispatcher.Dispatch(ev); err != nil {
			g.pending.Clear()
			return err
		}
	}

	return g.dispatcher.Update(g.dt, snap)
}

// Draw dispatches draw to the current state. A handler error ends the run
// on the next Update. Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.dispatcher.Draw(screen); err != nil && g.drawErr == nil {
		g.drawErr = err
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.window.Width, g.window.Height
}

// Size returns the logical screen size. Implements event.Window.
func (g *Game) Size() (int, int) {
	return g.window.Width, g.window.Height
}

// Title returns the window title. Implements event.Window.
func (g *Game) Title() string {
	return g.window.Title
}

// SetTitle changes the window title. Implements event.Window.
func (g *Game) SetTitle(title string) {
	g.window.Title = title
	if g.running {
		ebiten.SetWindowTitle(title)
	}
}

// Run opens the window and blocks until the game ends
func (g *Game) Run() error {
	w := g.window
	ebiten.SetWindowSize(int(float64(w.Width)*w.Scale), int(float64(w.Height)*w.Scale))
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.TPS)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g.running = true
	defer func() { g.running = false }()

	g.logger.Info("game started", "width", w.Width, "height", w.Height, "tps", w.TPS)
	return ebiten.RunGame(g)
}
