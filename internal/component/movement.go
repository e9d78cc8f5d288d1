// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пикселей в секунду)
type Velocity struct {
	Speed float64
}

// Path — компонент пути: фиксированная последовательность точек
// и индекс следующей ещё не достигнутой точки.
type Path struct {
	Waypoints    []Position
	CurrentIndex int
}

// Finished сообщает, что последняя точка пути достигнута.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
