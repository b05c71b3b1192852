package demo

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/state"
)

var colorOverlay = color.RGBA{A: 160}

// Pause covers the play field. Escape resumes, Q returns to the menu.
type Pause struct {
	nav    Navigator
	quit   func() error
	logger *slog.Logger
}

func (p *Pause) Enter(from state.State, _ ...any) error {
	p.logger.Debug("paused", "over", fmt.Sprintf("%T", from))
	return nil
}

func (p *Pause) KeyPress(key ebiten.Key, _ event.Modifiers) error {
	switch key {
	case ebiten.KeyEscape:
		return p.nav.Pop()
	case ebiten.KeyQ:
		if err := p.nav.Pop(); err != nil {
			return err
		}
		return p.quit()
	}
	return nil
}

func (p *Pause) Draw(screen *ebiten.Image) error {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2-20)
	ebitenutil.DebugPrintAt(screen, "[Esc] resume  [Q] menu", w/2-66, h/2)
	return nil
}
