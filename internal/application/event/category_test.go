package event

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamebox/internal/errutil"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{Load, "load"},
		{Update, "update"},
		{Draw, "draw"},
		{KeyPress, "key_press"},
		{KeyRelease, "key_release"},
		{KeyDown, "key_down"},
		{Text, "text"},
		{MouseDrag, "mouse_drag"},
		{MouseMotion, "mouse_motion"},
		{MousePress, "mouse_press"},
		{MouseRelease, "mouse_release"},
		{MouseScroll, "mouse_scroll"},
		{WindowFocus, "window_focus"},
		{WindowBlur, "window_blur"},
		{WindowHide, "window_hide"},
		{WindowShow, "window_show"},
		{WindowMove, "window_move"},
		{StateEnter, "state_enter"},
		{StateLeave, "state_leave"},
		{StateResume, "state_resume"},
		{Category(99), "unknown"},
		{Category(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCategories(t *testing.T) {
	all := Categories()

	assert.Len(t, all, 20)
	assert.Equal(t, Load, all[0])
	assert.Equal(t, StateResume, all[len(all)-1])
	for _, c := range all {
		assert.True(t, c.Valid(), c.String())
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("key_text")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeUnknownCategory)
}

func TestPayload_Category(t *testing.T) {
	events := []Event{
		LoadEvent{}, UpdateEvent{}, DrawEvent{}, KeyPressEvent{}, KeyReleaseEvent{},
		KeyDownEvent{}, TextEvent{}, MouseDragEvent{}, MouseMotionEvent{}, MousePressEvent{},
		MouseReleaseEvent{}, MouseScrollEvent{}, WindowFocusEvent{}, WindowBlurEvent{},
		WindowHideEvent{}, WindowShowEvent{}, WindowMoveEvent{}, StateEnterEvent{},
		StateLeaveEvent{}, StateResumeEvent{},
	}

	// One payload type per category, in declaration order
	require.Len(t, events, len(Categories()))
	for i, ev := range events {
		assert.Equal(t, Category(i), ev.Category())
	}
}

func TestModifiers(t *testing.T) {
	m := ModShift | ModControl

	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModShift|ModControl))
	assert.False(t, m.Has(ModAlt))
	assert.Equal(t, "shift+ctrl", m.String())
	assert.Equal(t, "none", Modifiers(0).String())
}

func TestMouseButtons(t *testing.T) {
	b := ButtonMask(ebiten.MouseButtonLeft) | ButtonMask(ebiten.MouseButtonMiddle)

	assert.True(t, b.Has(ebiten.MouseButtonLeft))
	assert.True(t, b.Has(ebiten.MouseButtonMiddle))
	assert.False(t, b.Has(ebiten.MouseButtonRight))
}
