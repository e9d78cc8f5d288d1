// pkg/render/color.go
package render

import "image/color"

// Palette holds all the colors the renderer needs.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Path       color.RGBA
	Projectile color.RGBA
	Flash      color.RGBA
	Range      color.RGBA
	Text       color.RGBA
	HealthBar  color.RGBA
	Overlay    color.RGBA
	PathWidth  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// HealthColor goes from green to red as the fraction drops.
func HealthColor(fraction float64) color.RGBA {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return color.RGBA{
		R: uint8(255 * (1 - fraction)),
		G: uint8(205 * fraction),
		B: 50,
		A: 255,
	}
}
