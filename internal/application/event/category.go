// Package event defines the closed set of event categories the engine routes
// and the payload carried by each one.
package event

import (
	"github.com/samber/oops"
)

// Category identifies one kind of input, window or lifecycle event
type Category int

const (
	Load Category = iota
	Update
	Draw
	KeyPress
	KeyRelease
	KeyDown
	Text
	MouseDrag
	MouseMotion
	MousePress
	MouseRelease
	MouseScroll
	WindowFocus
	WindowBlur
	WindowHide
	WindowShow
	WindowMove
	StateEnter
	StateLeave
	StateResume

	categoryCount
)

// CodeUnknownCategory is the oops code for names or values outside the category set.
const CodeUnknownCategory = "UNKNOWN_CATEGORY"

var categoryNames = [categoryCount]string{
	Load:         "load",
	Update:       "update",
	Draw:         "draw",
	KeyPress:     "key_press",
	KeyRelease:   "key_release",
	KeyDown:      "key_down",
	Text:         "text",
	MouseDrag:    "mouse_drag",
	MouseMotion:  "mouse_motion",
	MousePress:   "mouse_press",
	MouseRelease: "mouse_release",
	MouseScroll:  "mouse_scroll",
	WindowFocus:  "window_focus",
	WindowBlur:   "window_blur",
	WindowHide:   "window_hide",
	WindowShow:   "window_show",
	WindowMove:   "window_move",
	StateEnter:   "state_enter",
	StateLeave:   "state_leave",
	StateResume:  "state_resume",
}

// String returns the snake_case name of the category
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Categories returns every category in declaration order
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory returns the category with the given name
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, oops.Code(CodeUnknownCategory).
		With("name", name).
		Errorf("unknown event category %q", name)
}
