package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/container"
)

// Delivery ranks for events raised within one tick; lower ranks are
// dispatched first, equal ranks in the order they were raised.
const (
	RankWindow = iota
	RankKey
	RankText
	RankMouse
)

// Diff compares two consecutive snapshots and enqueues the events the change implies
func Diff(prev, cur Snapshot, out *container.PriorityQueue[event.Event]) {
	diffWindow(prev, cur, out)
	diffKeys(prev, cur, out)

	if cur.Text != "" {
		out.Enqueue(event.TextEvent{Text: cur.Text}, RankText)
	}

	diffMouse(prev, cur, out)
}

func diffWindow(prev, cur Snapshot, out *container.PriorityQueue[event.Event]) {
	if cur.Focused != prev.Focused {
		if cur.Focused {
			out.Enqueue(event.WindowFocusEvent{}, RankWindow)
		} else {
			out.Enqueue(event.WindowBlurEvent{}, RankWindow)
		}
	}
	if cur.Hidden != prev.Hidden {
		if cur.Hidden {
			out.Enqueue(event.WindowHideEvent{}, RankWindow)
		} else {
			out.Enqueue(event.WindowShowEvent{}, RankWindow)
		}
	}
	if cur.WindowX != prev.WindowX || cur.WindowY != prev.WindowY {
		out.Enqueue(event.WindowMoveEvent{X: cur.WindowX, Y: cur.WindowY}, RankWindow)
	}
}

func diffKeys(prev, cur Snapshot, out *container.PriorityQueue[event.Event]) {
	mods := cur.Modifiers()
	for _, k := range cur.Keys {
		if !prev.IsKeyPressed(k) {
			out.Enqueue(event.KeyPressEvent{Key: k, Mods: mods}, RankKey)
		}
	}
	for _, k := range prev.Keys {
		if !slices.Contains(cur.Keys, k) {
			out.Enqueue(event.KeyReleaseEvent{Key: k, Mods: mods}, RankKey)
		}
	}
}

func diffMouse(prev, cur Snapshot, out *container.PriorityQueue[event.Event]) {
	x, y := cur.CursorX, cur.CursorY
	mods := cur.Modifiers()

	if dx, dy := x-prev.CursorX, y-prev.CursorY; dx != 0 || dy != 0 {
		if cur.Buttons != 0 {
			out.Enqueue(event.MouseDragEvent{X: x, Y: y, DX: dx, DY: dy, Buttons: cur.Buttons, Mods: mods}, RankMouse)
		} else {
			out.Enqueue(event.MouseMotionEvent{X: x, Y: y, DX: dx, DY: dy}, RankMouse)
		}
	}

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		was, is := prev.Buttons.Has(b), cur.Buttons.Has(b)
		switch {
		case is && !was:
			out.Enqueue(event.MousePressEvent{X: x, Y: y, Button: b, Mods: mods}, RankMouse)
		case was && !is:
			out.Enqueue(event.MouseReleaseEvent{X: x, Y: y, Button: b, Mods: mods}, RankMouse)
		}
	}

	if cur.WheelX != 0 || cur.WheelY != 0 {
		out.Enqueue(event.MouseScrollEvent{X: x, Y: y, ScrollX: cur.WheelX, ScrollY: cur.WheelY}, RankMouse)
	}
}
