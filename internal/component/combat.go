package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Combat — компонент для атакующих башен
type Combat struct {
	Range        float64 // Радиус действия в пикселях
	Damage       int
	FireInterval float64 // Минимальный интервал между выстрелами, мс
	Elapsed      float64 // Время с последнего выстрела, мс
}

// Ready сообщает, что перезарядка завершена.
func (c *Combat) Ready() bool {
	return c.Elapsed >= c.FireInterval
}

// Generator — пассивный доход денежной башни
type Generator struct {
	Amount   int
	Interval float64 // мс
	Elapsed  float64 // мс с последнего начисления
}
