// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the palette used to draw the play field.
type FieldColors struct {
	Background  color.RGBA
	Enemy       color.RGBA
	RangeRing   color.RGBA
	Overheated  color.RGBA
	LostOverlay color.RGBA
	Text        color.RGBA
}

// HeatColor maps a tower's heat ratio to its body color: cool towers are blue,
// hot ones shift to orange. Overheated towers use a fixed warning color.
func HeatColor(ratio float64, overheated bool, overheatedColor color.RGBA) color.RGBA {
	if overheated {
		return overheatedColor
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{
		R: uint8(51 + ratio*204),
		G: uint8(115 + (1-ratio)*102),
		B: uint8(255 - ratio*255),
		A: 255,
	}
}

// HighlightColor returns the translucent white halo drawn around an inspected tower.
func HighlightColor(highlight float64) color.RGBA {
	if highlight <= 0 {
		return color.RGBA{}
	}
	if highlight > 1 {
		highlight = 1
	}
	a := uint8(highlight * 50)
	// Premultiplied alpha, as image/color expects.
	return color.RGBA{R: a, G: a, B: a, A: a}
}
