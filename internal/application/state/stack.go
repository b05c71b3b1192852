package state

import (
	"log/slog"
	"reflect"

	"github.com/younwookim/gamebox/internal/container"
)

// Stack holds the live states, top = current, and drives lifecycle
// notifications through its Notifier.
//
// Stack is not safe for concurrent use. Transitions may be started from
// inside a notification (a handler calling Push, for example).
type Stack struct {
	states   container.Stack[State]
	gen      uint64 // bumped on every push or pop of states
	loaded   map[reflect.Type]struct{}
	notifier Notifier
	observer TransitionObserver
	logger   *slog.Logger
}

// Option configures a Stack
type Option func(*Stack)

// WithNotifier sets the lifecycle notifier
func WithNotifier(n Notifier) Option {
	return func(s *Stack) { s.notifier = n }
}

// WithObserver sets the transition observer
func WithObserver(o TransitionObserver) Option {
	return func(s *Stack) { s.observer = o }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) { s.logger = l }
}

// NewStack creates an empty stack
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		loaded:   make(map[reflect.Type]struct{}),
		notifier: nopNotifier{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNotifier replaces the lifecycle notifier.
// A nil notifier disables notifications.
func (s *Stack) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	s.notifier = n
}

// Switch replaces the current state with next.
// The previous state, if any, is notified of leave and removed.
func (s *Stack) Switch(next State, args ...any) error {
	if next == nil {
		return ErrNilState(TransitionSwitch)
	}

	prev, hasPrev := s.states.Peek()
	if hasPrev {
		if err := s.leave(TransitionSwitch, prev, args); err != nil {
			return err
		}
		s.pop()
	}

	return s.enter(TransitionSwitch, prev, next, args)
}

// Push covers the current state with next.
// The previous state is notified of leave but stays on the stack.
func (s *Stack) Push(next State, args ...any) error {
	if next == nil {
		return ErrNilState(TransitionPush)
	}

	prev, hasPrev := s.states.Peek()
	if hasPrev {
		if err := s.leave(TransitionPush, prev, args); err != nil {
			return err
		}
	}

	return s.enter(TransitionPush, prev, next, args)
}

// leave notifies cur of leave. A transition made by the leave handlers
// supersedes op, which then stops with ErrInterrupted.
func (s *Stack) leave(op Transition, cur State, args []any) error {
	gen := s.gen
	if err := s.notifier.Leave(cur, args...); err != nil {
		return err
	}
	if s.gen != gen {
		return ErrInterrupted(op, typeName(cur))
	}
	return nil
}

func (s *Stack) push(st State) {
	s.states.Push(st)
	s.gen++
}

func (s *Stack) pop() {
	s.states.Pop()
	s.gen++
}

// enter pushes next, loads its type on first sight and notifies enter
func (s *Stack) enter(op Transition, prev, next State, args []any) error {
	s.push(next)

	t := TypeOf(next)
	if _, seen := s.loaded[t]; !seen {
		// Marked before notifying so a load handler that transitions into
		// the same type cannot load it twice.
		s.loaded[t] = struct{}{}
		s.logger.Debug("state loaded", "state", t.String())
		if err := s.notifier.Load(next); err != nil {
			return err
		}
	}

	if err := s.notifier.Enter(next, prev, args...); err != nil {
		return err
	}

	s.observe(op, prev, next)
	return nil
}

// Pop removes the current state and resumes the one beneath it.
// Popping the last state is a usage error; the stack is left untouched.
func (s *Stack) Pop(args ...any) error {
	if depth := s.states.Len(); depth <= 1 {
		return ErrNothingToPop(depth)
	}

	top, _ := s.states.Peek()
	if err := s.leave(TransitionPop, top, args); err != nil {
		return err
	}
	s.pop()

	next, _ := s.states.Peek()
	if err := s.notifier.Resume(next, args...); err != nil {
		return err
	}

	s.observe(TransitionPop, top, next)
	return nil
}

func (s *Stack) observe(op Transition, from, to State) {
	depth := s.states.Len()
	s.logger.Debug("state transition",
		"op", op.String(),
		"from", typeName(from),
		"to", typeName(to),
		"depth", depth)
	if s.observer != nil {
		s.observer.ObserveTransition(op, depth)
	}
}

// Current returns the top-of-stack state
func (s *Stack) Current() (State, bool) {
	return s.states.Peek()
}

// Depth returns the number of states on the stack
func (s *Stack) Depth() int {
	return s.states.Len()
}

// States returns a copy of the stack, top first
func (s *Stack) States() []State {
	return s.states.Items()
}

// Phase returns PhaseEmpty before the first transition, PhaseActive after
func (s *Stack) Phase() Phase {
	if s.states.IsEmpty() {
		return PhaseEmpty
	}
	return PhaseActive
}

// Loaded reports whether a state of type t has already received load
func (s *Stack) Loaded(t reflect.Type) bool {
	_, ok := s.loaded[t]
	return ok
}

func typeName(s State) string {
	if s == nil {
		return "<nil>"
	}
	return TypeOf(s).String()
}

type nopNotifier struct{}

func (nopNotifier) Load(State) error                 { return nil }
func (nopNotifier) Enter(State, State, ...any) error { return nil }
func (nopNotifier) Leave(State, ...any) error        { return nil }
func (nopNotifier) Resume(State, ...any) error       { return nil }
