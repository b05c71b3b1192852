package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
)

const (
	menuTitle    = "GAMEBOX"
	titleDropSec = 1.2
)

// Menu shows a title that drops in, and starts play on Enter
type Menu struct {
	width, height int
	titleY        float32
	settled       bool
	drop          *gween.Tween
	next          func() error
}

// TitleY returns the current title baseline
func (m *Menu) TitleY() float32 { return m.titleY }

// Settled reports whether the title animation finished
func (m *Menu) Settled() bool { return m.settled }

func (m *Menu) register(reg *registry.Registry) error {
	for _, err := range []error{
		registry.On(reg, func(m *Menu, ev event.LoadEvent) error {
			m.width, m.height = ev.Window.Size()
			ev.Window.SetTitle("gamebox")
			return nil
		}),
		registry.On(reg, func(m *Menu, _ event.StateEnterEvent) error {
			m.drop = gween.New(-10, float32(m.height)/3, titleDropSec, ease.OutBounce)
			m.titleY, m.settled = -10, false
			return nil
		}),
		registry.On(reg, func(m *Menu, ev event.UpdateEvent) error {
			if m.drop != nil && !m.settled {
				m.titleY, m.settled = m.drop.Update(float32(ev.DT))
			}
			return nil
		}),
		registry.On(reg, func(m *Menu, ev event.KeyPressEvent) error {
			if ev.Key == ebiten.KeyEnter {
				return m.next()
			}
			return nil
		}),
		registry.On(reg, func(m *Menu, ev event.DrawEvent) error {
			x := m.width/2 - len(menuTitle)*3
			ebitenutil.DebugPrintAt(ev.Screen, menuTitle, x, int(m.titleY))
			if m.settled {
				ebitenutil.DebugPrintAt(ev.Screen, "press Enter", m.width/2-33, m.height/2+20)
			}
			return nil
		}),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}
