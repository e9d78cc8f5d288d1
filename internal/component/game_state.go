package component

// Wave — состояние текущей волны
type Wave struct {
	Number         int
	EnemiesToSpawn int
	SpawnTimer     float64 // мс
	SpawnInterval  float64 // мс
}

// GamePhase — фаза игры
type GamePhase int

const (
	BuildPhase GamePhase = iota
	WavePhase
	OverPhase
)

func (p GamePhase) String() string {
	switch p {
	case BuildPhase:
		return "build"
	case WavePhase:
		return "wave"
	case OverPhase:
		return "game over"
	default:
		return "unknown"
	}
}
