// Package state implements the state stack: the ordered set of live
// application states and the enter/leave/resume/load lifecycle around it.
package state

import "reflect"

// State is one screen or mode of the application (menu, play, pause...).
// Any value can be a state. Handler routing and one-time loading are keyed
// by its dynamic type, so all instances of one type share handlers.
type State any

// TypeOf returns the identity used to route events for s
func TypeOf(s State) reflect.Type {
	return reflect.TypeOf(s)
}

// Phase represents the lifecycle phase of the stack itself
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseActive
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "Empty"
	case PhaseActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Transition identifies a stack operation
type Transition int

const (
	TransitionSwitch Transition = iota
	TransitionPush
	TransitionPop
)

// String returns the string representation of the transition
func (t Transition) String() string {
	switch t {
	case TransitionSwitch:
		return "switch"
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Notifier receives lifecycle notifications from the stack.
// Each call names the state the notification is about.
type Notifier interface {
	Load(s State) error
	Enter(s, from State, args ...any) error
	Leave(s State, args ...any) error
	Resume(s State, args ...any) error
}

// TransitionObserver is told about every completed transition
type TransitionObserver interface {
	ObserveTransition(t Transition, depth int)
}
