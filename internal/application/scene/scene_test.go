package scene

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamebox/internal/application/dispatch"
	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/application/state"
)

// full implements every bindable interface
type full struct{ log []string }

func (f *full) Load(w event.Window) error { f.log = append(f.log, "load"); return nil }
func (f *full) Enter(from state.State, args ...any) error {
	f.log = append(f.log, fmt.Sprint("enter ", from == nil, args))
	return nil
}
func (f *full) Leave(args ...any) error { f.log = append(f.log, "leave"); return nil }
func (f *full) Resume(args ...any) error {
	f.log = append(f.log, fmt.Sprint("resume ", args))
	return nil
}
func (f *full) Update(dt float64) error  { f.log = append(f.log, "update"); return nil }
func (f *full) Draw(*ebiten.Image) error { f.log = append(f.log, "draw"); return nil }
func (f *full) KeyPress(key ebiten.Key, mods event.Modifiers) error {
	f.log = append(f.log, "press "+key.String()+" "+mods.String())
	return nil
}
func (f *full) KeyRelease(key ebiten.Key, _ event.Modifiers) error {
	f.log = append(f.log, "release "+key.String())
	return nil
}

// partial implements only Update and Draw
type partial struct{ updates int }

func (p *partial) Update(float64) error     { p.updates++; return nil }
func (p *partial) Draw(*ebiten.Image) error { return errors.New("no screen") }

type plain struct{}

type other struct{}

func setup(t *testing.T) (*registry.Registry, *state.Stack, *dispatch.Dispatcher) {
	t.Helper()
	reg := registry.New()
	stack := state.NewStack()
	d := dispatch.New(reg, stack)
	stack.SetNotifier(d)
	return reg, stack, d
}

func TestBind_Counts(t *testing.T) {
	reg := registry.New()

	n, err := Bind[*full](reg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = Bind[*partial](reg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, reg.Count(event.Update, state.TypeOf(&partial{})))
	assert.Equal(t, 0, reg.Count(event.KeyPress, state.TypeOf(&partial{})))

	n, err = Bind[*plain](reg)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBind_DrivesLifecycle(t *testing.T) {
	reg, stack, d := setup(t)
	_, err := Bind[*full](reg)
	require.NoError(t, err)

	f := &full{}
	require.NoError(t, stack.Switch(f, "go"))
	require.NoError(t, stack.Push(&other{}))
	require.NoError(t, stack.Pop("back"))
	require.NoError(t, d.Update(1.0/60, nil))
	require.NoError(t, d.Draw(nil))
	require.NoError(t, d.KeyPress(ebiten.KeyA, event.ModShift))
	require.NoError(t, d.KeyRelease(ebiten.KeyA, 0))

	assert.Equal(t, []string{
		"load",
		"enter true [go]",
		"leave",
		"resume [back]",
		"update",
		"draw",
		"press A shift",
		"release A",
	}, f.log)
}

func TestBind_ErrorsPropagate(t *testing.T) {
	reg, stack, d := setup(t)
	_, err := Bind[*partial](reg)
	require.NoError(t, err)

	p := &partial{}
	require.NoError(t, stack.Switch(p))
	require.NoError(t, d.Update(0.5, nil))
	assert.Equal(t, 1, p.updates)
	assert.EqualError(t, d.Draw(nil), "no screen")
}

func TestBind_Twice(t *testing.T) {
	reg, stack, d := setup(t)
	_, err := Bind[*partial](reg)
	require.NoError(t, err)
	_, err = Bind[*partial](reg)
	require.NoError(t, err)

	p := &partial{}
	require.NoError(t, stack.Switch(p))
	require.NoError(t, d.Update(0.5, nil))
	assert.Equal(t, 2, p.updates, "binding twice registers twice, like repeated On")
}
