package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID  string // ID из определений врагов
	Reward int    // Деньги за уничтожение
}
