// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton переключает множитель скорости игры по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickScale(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		left := [2]float32{b.X - width + dx, b.Y - height/2}
		tip := [2]float32{b.X + dx, b.Y}
		bottom := [2]float32{b.X - width + dx, b.Y + height/2}
		fillPolygon(screen, clr, left, tip, bottom)
		strokePolygon(screen, 1, color.White, left, tip, bottom)
	}
}

// IsClicked — попадание по кругу, форма кнопки сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// Toggle переходит к следующему состоянию и возвращает его индекс.
func (b *SpeedButton) Toggle() int {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	return b.CurrentState
}
