package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Face             font.Face
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face, clr color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Face:             face,
		Color:            clr,
		BossColor:        color.RGBA{200, 30, 30, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор по центру X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := ToRoman(waveNumber)
	textColor := i.Color
	if waveNumber%5 == 0 {
		textColor = i.BossColor // каждая пятая волна — «босс»
	}

	bounds := text.BoundString(i.Face, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Face, x, y, textColor)
}
