package registry

import (
	"reflect"

	"github.com/samber/oops"

	"github.com/younwookim/gamebox/internal/application/event"
)

// Error codes for registration usage errors.
const (
	CodeUndecidableState = "UNDECIDABLE_STATE"
	CodeUndecidableEvent = "UNDECIDABLE_EVENT"
	CodeNilHandler       = "NIL_HANDLER"
)

// ErrUndecidableState creates an error for a handler whose declaring state
// type cannot be determined (nil or an interface type).
func ErrUndecidableState(category event.Category, t reflect.Type) error {
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return oops.Code(CodeUndecidableState).
		With("category", category.String()).
		With("state_type", name).
		Errorf("register %s: declaring state type %s is not a concrete type", category, name)
}

// ErrUndecidableEvent creates an error for a typed handler whose payload
// type does not name a single category.
func ErrUndecidableEvent(t reflect.Type) error {
	return oops.Code(CodeUndecidableEvent).
		With("event_type", t.String()).
		Errorf("register: payload type %s does not identify a category", t)
}

// ErrUnknownCategory creates an error for a category outside the closed set.
func ErrUnknownCategory(category event.Category) error {
	return oops.Code(event.CodeUnknownCategory).
		With("category", int(category)).
		Errorf("register: unknown event category %d", int(category))
}

// ErrNilHandler creates an error for registering a nil handler.
func ErrNilHandler(category event.Category) error {
	return oops.Code(CodeNilHandler).
		With("category", category.String()).
		Errorf("register %s: handler must not be nil", category)
}
