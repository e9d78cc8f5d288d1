// internal/ui/shapes.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage *ebiten.Image

// fillPolygon заливает многоугольник, заданный вершинами.
func fillPolygon(dst *ebiten.Image, clr color.Color, points ...[2]float32) {
	if len(points) < 3 {
		return
	}
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}

	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolygon обводит многоугольник.
func strokePolygon(dst *ebiten.Image, width float32, clr color.Color, points ...[2]float32) {
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], width, clr, true)
	}
}

// clickScale — короткий «отскок» кнопки после нажатия.
func clickScale(elapsedSeconds float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsedSeconds*8))
}
