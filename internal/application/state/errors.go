package state

import "github.com/samber/oops"

// Error codes for stack usage errors.
const (
	CodeNothingToPop = "NOTHING_TO_POP"
	CodeNilState     = "NIL_STATE"
	CodeInterrupted  = "TRANSITION_INTERRUPTED"
)

// ErrNothingToPop creates an error for popping a stack that would become empty.
func ErrNothingToPop(depth int) error {
	return oops.Code(CodeNothingToPop).
		With("depth", depth).
		Errorf("pop: only %d state(s) remain, nothing to pop", depth)
}

// ErrNilState creates an error for a transition into a nil state.
func ErrNilState(op Transition) error {
	return oops.Code(CodeNilState).
		With("op", op.String()).
		Errorf("%s: state must not be nil", op)
}

// ErrInterrupted creates an error for a transition superseded by one started
// from the leaving state's leave handlers.
func ErrInterrupted(op Transition, leaving string) error {
	return oops.Code(CodeInterrupted).
		With("op", op.String()).
		With("leaving", leaving).
		Errorf("%s: stack changed while %s was leaving", op, leaving)
}
