package demo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/container"
)

const (
	playerSpeed   = 120.0 // pixels per second
	minPlayerSize = 4.0
	maxPlayerSize = 64.0
	scrollStep    = 2.0
	trailLength   = 16
)

var (
	colorPlayer = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorClick  = color.RGBA{R: 255, G: 210, B: 0, A: 255}
)

// Point is a screen position
type Point struct{ X, Y int }

// Play moves a square with the arrow keys or WASD and marks mouse clicks
type Play struct {
	width, height int
	x, y          float64
	size          float64
	dt            float64
	clicks        *container.Queue[Point]
	pause         func() error
}

func newPlay() *Play {
	return &Play{size: 16, clicks: container.NewQueue[Point]()}
}

// Position returns the square's top-left corner
func (p *Play) Position() (float64, float64) { return p.x, p.y }

// Size returns the square's edge length
func (p *Play) Size() float64 { return p.size }

// Clicks returns the recent click positions, oldest first
func (p *Play) Clicks() []Point { return p.clicks.Items() }

var moveKeys = []struct {
	keys   []ebiten.Key
	dx, dy float64
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, -1, 0},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, 1, 0},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, 0, -1},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, 0, 1},
}

func (p *Play) move(keys event.KeyState) {
	step := playerSpeed * p.dt
	for _, m := range moveKeys {
		for _, k := range m.keys {
			if keys.IsKeyPressed(k) {
				p.x += m.dx * step
				p.y += m.dy * step
				break
			}
		}
	}
	p.clamp()
}

func (p *Play) clamp() {
	p.x = min(max(p.x, 0), float64(p.width)-p.size)
	p.y = min(max(p.y, 0), float64(p.height)-p.size)
}

func (p *Play) center() {
	p.x = (float64(p.width) - p.size) / 2
	p.y = (float64(p.height) - p.size) / 2
}

func (p *Play) register(reg *registry.Registry) error {
	for _, err := range []error{
		registry.On(reg, func(p *Play, ev event.LoadEvent) error {
			p.width, p.height = ev.Window.Size()
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.StateEnterEvent) error {
			p.center()
			p.clicks.Clear()
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.UpdateEvent) error {
			p.dt = ev.DT
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.KeyDownEvent) error {
			if ev.Keys != nil {
				p.move(ev.Keys)
			}
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.KeyPressEvent) error {
			if ev.Key == ebiten.KeyEscape {
				return p.pause()
			}
			return nil
		}),
		registry.On(reg, func(p *Play, _ event.WindowBlurEvent) error {
			return p.pause()
		}),
		registry.On(reg, func(p *Play, ev event.MousePressEvent) error {
			p.clicks.Enqueue(Point{X: ev.X, Y: ev.Y})
			if p.clicks.Len() > trailLength {
				p.clicks.Dequeue()
			}
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.MouseScrollEvent) error {
			p.size = min(max(p.size+ev.ScrollY*scrollStep, minPlayerSize), maxPlayerSize)
			p.clamp()
			return nil
		}),
		registry.On(reg, func(p *Play, ev event.DrawEvent) error {
			p.draw(ev.Screen)
			return nil
		}),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Play) draw(screen *ebiten.Image) {
	for _, c := range p.clicks.Items() {
		vector.DrawFilledRect(screen, float32(c.X-2), float32(c.Y-2), 4, 4, colorClick, false)
	}
	vector.DrawFilledRect(screen, float32(p.x), float32(p.y), float32(p.size), float32(p.size), colorPlayer, false)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("pos %.0f,%.0f  size %.0f  [Esc] pause", p.x, p.y, p.size))
}
