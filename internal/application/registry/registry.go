// Package registry stores event handlers keyed by event category and by the
// state type that declares them, and resolves the handlers that apply to the
// current state.
package registry

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/state"
)

// Handler reacts to one event on behalf of the state it was registered for.
// A returned error is passed up to the host loop unchanged.
type Handler func(s state.State, ev event.Event) error

// Registry maps category -> declaring state type -> handlers in registration order.
// It is not safe for concurrent use.
type Registry struct {
	commands map[event.Category]map[reflect.Type][]Handler
	logger   *slog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registration messages
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		commands: make(map[event.Category]map[reflect.Type][]Handler),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends h to the handlers for (category, stateType).
// Duplicate registrations are kept and fire once each.
func (r *Registry) Register(category event.Category, stateType reflect.Type, h Handler) error {
	if !category.Valid() {
		return ErrUnknownCategory(category)
	}
	if stateType == nil || stateType.Kind() == reflect.Interface {
		return ErrUndecidableState(category, stateType)
	}
	if h == nil {
		return ErrNilHandler(category)
	}

	byState, ok := r.commands[category]
	if !ok {
		byState = make(map[reflect.Type][]Handler)
		r.commands[category] = byState
	}
	byState[stateType] = append(byState[stateType], h)

	r.logger.Debug("handler registered",
		"category", category.String(),
		"state", stateType.String(),
		"position", len(byState[stateType]))
	return nil
}

// Resolve returns the handlers registered for (category, stateType) in
// registration order. The slice is a copy: registrations made while the
// caller iterates do not affect it. A pair with no handlers yields an empty slice.
func (r *Registry) Resolve(category event.Category, stateType reflect.Type) []Handler {
	return slices.Clone(r.commands[category][stateType])
}

// Count returns how many handlers are registered for (category, stateType)
func (r *Registry) Count(category event.Category, stateType reflect.Type) int {
	return len(r.commands[category][stateType])
}

// On registers fn for the state type S and the category named by the payload type E.
//
//	registry.On(reg, func(m *Menu, ev event.KeyPressEvent) error { ... })
func On[S state.State, E event.Event](r *Registry, fn func(S, E) error) error {
	stateType := reflect.TypeFor[S]()
	eventType := reflect.TypeFor[E]()
	// Payloads are dispatched by value, so only concrete non-pointer types match
	if k := eventType.Kind(); k == reflect.Interface || k == reflect.Pointer {
		return ErrUndecidableEvent(eventType)
	}

	var zero E
	category := zero.Category()
	if fn == nil {
		return ErrNilHandler(category)
	}

	return r.Register(category, stateType, func(s state.State, ev event.Event) error {
		return fn(s.(S), ev.(E))
	})
}

// MustOn is like On but panics on a usage error.
// Intended for registration during program start-up.
func MustOn[S state.State, E event.Event](r *Registry, fn func(S, E) error) {
	if err := On(r, fn); err != nil {
		panic(err)
	}
}
