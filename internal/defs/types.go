// internal/defs/types.go
package defs

import "image/color"

// Visuals — параметры отрисовки и ассеты. Ядро симуляции их не читает,
// они передаются хосту как есть.
type Visuals struct {
	Color        color.RGBA `yaml:"color"`
	RadiusFactor float64    `yaml:"radius_factor"`
	Sprite       string     `yaml:"sprite,omitempty"`
	Sound        string     `yaml:"sound,omitempty"`
}
