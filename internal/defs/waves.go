package defs

// WaveEntry — один тип врага в волне и его относительный вес при выборе.
type WaveEntry struct {
	EnemyID string `yaml:"enemy_id"`
	Weight  int    `yaml:"weight"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Entries         []WaveEntry `yaml:"entries"`
	Count           int         `yaml:"count"`             // Количество врагов в волне
	SpawnIntervalMs float64     `yaml:"spawn_interval_ms"` // Интервал между появлением врагов
}

// WaveFor возвращает определение волны с номером number (с единицы).
// После конца таблицы повторяются последние repeat волн.
func WaveFor(waves []WaveDefinition, number, repeat int) (WaveDefinition, bool) {
	if len(waves) == 0 || number < 1 {
		return WaveDefinition{}, false
	}
	if number <= len(waves) {
		return waves[number-1], true
	}
	if repeat <= 0 || repeat > len(waves) {
		repeat = len(waves)
	}
	start := len(waves) - repeat
	return waves[start+(number-len(waves)-1)%repeat], true
}
