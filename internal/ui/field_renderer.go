// internal/ui/field_renderer.go
package ui

import (
	"image"
	"image/color"

	"thermal-td/internal/app"
	"thermal-td/internal/config"
	"thermal-td/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует снимок симуляции: фон, радиусы башен, башни и врагов.
// Сам ничего в симуляции не меняет.
type FieldRenderer struct {
	colors     render.FieldColors
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

func NewFieldRenderer(colors render.FieldColors) *FieldRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &FieldRenderer{
		colors:     colors,
		whiteImage: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// DefaultFieldColors палитра из config
func DefaultFieldColors() render.FieldColors {
	return render.FieldColors{
		Background:  config.BackgroundColor,
		Enemy:       config.EnemyColor,
		RangeRing:   config.RangeRingColor,
		Overheated:  config.OverheatedColor,
		LostOverlay: config.LostOverlayColor,
		Text:        config.TextLightColor,
	}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.colors.Background)

	for _, e := range snap.Enemies {
		r.drawEnemy(screen, float32(e.X), float32(e.Y))
	}

	for _, t := range snap.Towers {
		x, y := float32(t.X), float32(t.Y)
		body := render.HeatColor(t.HeatRatio, t.Overheated, r.colors.Overheated)
		vector.DrawFilledCircle(screen, x, y, config.TowerBodyRadius, body, true)
		vector.StrokeCircle(screen, x, y, float32(t.Radius), config.RingStrokeWidth, r.colors.RangeRing, true)
		if t.Highlight > 0 {
			vector.DrawFilledCircle(screen, x, y, config.TowerHighlightRadius, render.HighlightColor(t.Highlight), true)
		}
	}

	if snap.Lost {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), r.colors.LostOverlay, false)
	}
}

// drawEnemy рисует врага треугольником вершиной вверх
func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, x, y float32) {
	var path vector.Path
	path.MoveTo(x, y-config.EnemyTop)
	path.LineTo(x+config.EnemyHalfWidth, y+config.EnemyBottom)
	path.LineTo(x-config.EnemyHalfWidth, y+config.EnemyBottom)
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	c := r.colors.Enemy
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(c.R) / 255
		r.vertices[i].ColorG = float32(c.G) / 255
		r.vertices[i].ColorB = float32(c.B) / 255
		r.vertices[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(r.vertices, r.indices, r.whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
