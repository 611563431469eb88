// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"thermal-td/internal/app"
	"thermal-td/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth  = 170
	panelHeight = 46
	panelOffset = 44 // от центра башни
	lineHeight  = 16
	hudMargin   = 10
)

// InfoPanel показывает нагрев подсвеченной башни, пока не погасла подсветка.
type InfoPanel struct {
	fontFace font.Face
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{fontFace: face}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	for i, t := range snap.Towers {
		if t.Highlight <= 0 {
			continue
		}
		x := float32(t.X) + panelOffset
		y := float32(t.Y) - panelHeight/2
		alpha := uint8(200 * t.Highlight)
		vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, color.RGBA{0, 0, 0, alpha}, false)

		state := "ready"
		if t.Overheated {
			state = "OVERHEATED"
		}
		text.Draw(screen, fmt.Sprintf("tower #%d  %s", i+1, state), p.fontFace, int(x)+6, int(y)+lineHeight, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("heat %3.0f%%", t.HeatRatio*100), p.fontFace, int(x)+6, int(y)+2*lineHeight, config.TextLightColor)
	}
}

// DrawHUD выводит строку состояния и подсказку после поражения
func (p *InfoPanel) DrawHUD(screen *ebiten.Image, snap app.Snapshot) {
	status := fmt.Sprintf("towers %d/%d   enemies %d   heat level %d   %.0fs",
		len(snap.Towers), config.MaxTowers, len(snap.Enemies), snap.DifficultyLevel, snap.Elapsed)
	text.Draw(screen, status, p.fontFace, hudMargin, hudMargin+lineHeight, config.TextLightColor)

	if snap.Lost {
		msg := "BREACH! tap to restart"
		w := font.MeasureString(p.fontFace, msg).Round()
		text.Draw(screen, msg, p.fontFace, int(snap.Width)/2-w/2, int(snap.Height)/2, config.TextLightColor)
	}
}
