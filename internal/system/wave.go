package system

import (
	"errors"
	"fmt"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

var (
	ErrUnknownEnemyType = defs.ErrUnknownEnemyType
	ErrNoWaves          = errors.New("no waves configured")
)

type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	waypoints       []component.Position
	waves           []defs.WaveDefinition
	repeat          int
	nextWave        int
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg *config.Config) *WaveSystem {
	waypoints := make([]component.Position, len(cfg.Path))
	for i, p := range cfg.Path {
		waypoints[i] = component.Position{X: p.X, Y: p.Y}
	}
	return &WaveSystem{
		ecs:             ecs,
		library:         library,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		waypoints:       waypoints,
		waves:           cfg.Waves,
		repeat:          cfg.RepeatWaves,
		nextWave:        1,
	}
}

// Waypoints возвращает путь врагов. Срез общий, менять его нельзя.
func (s *WaveSystem) Waypoints() []component.Position {
	return s.waypoints
}

// NextWave — номер волны, которая начнётся при следующем StartWave.
func (s *WaveSystem) NextWave() int {
	return s.nextWave
}

func (s *WaveSystem) Update(deltaMs float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}

	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaMs
		for wave.EnemiesToSpawn > 0 && wave.SpawnTimer >= wave.SpawnInterval {
			wave.SpawnTimer -= wave.SpawnInterval
			wave.EnemiesToSpawn--
			def, _ := defs.WaveFor(s.waves, wave.Number, s.repeat)
			enemyID := s.rng.ChooseWeighted(def.Entries)
			if _, err := s.SpawnEnemy(enemyID); err != nil {
				logging.Error("WaveSystem: wave %d: %v", wave.Number, err)
			}
		}
		return
	}

	if len(s.ecs.Enemies) == 0 {
		s.ecs.Wave = nil
		if s.ecs.Phase == component.WavePhase {
			s.ecs.Phase = component.BuildPhase
		}
		s.eventDispatcher.Emit(event.WaveEnded, event.WaveData{Number: wave.Number})
	}
}

// StartWave запускает следующую волну из таблицы.
func (s *WaveSystem) StartWave() (*component.Wave, error) {
	def, ok := defs.WaveFor(s.waves, s.nextWave, s.repeat)
	if !ok {
		return nil, ErrNoWaves
	}

	wave := &component.Wave{
		Number:         s.nextWave,
		EnemiesToSpawn: def.Count,
		SpawnInterval:  def.SpawnIntervalMs,
		SpawnTimer:     def.SpawnIntervalMs, // первый враг появляется сразу
	}
	s.nextWave++
	s.ecs.Wave = wave
	s.ecs.Phase = component.WavePhase

	s.eventDispatcher.Emit(event.WaveStarted, event.WaveData{Number: wave.Number, Count: wave.EnemiesToSpawn})
	return wave, nil
}

// SpawnEnemy ставит врага в начало пути.
func (s *WaveSystem) SpawnEnemy(defID string) (types.EntityID, error) {
	def, ok := s.library.Enemy(defID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyType, defID)
	}

	id := s.ecs.NewEntity()
	start := s.waypoints[0]
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: s.waypoints, CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(config.GridSize / 2 * def.Visuals.RadiusFactor),
		Sprite: def.Visuals.Sprite,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  defID,
		Reward: def.Reward,
	}

	s.eventDispatcher.Emit(event.EnemySpawned, event.EnemyData{EnemyID: id, DefID: defID, Reward: def.Reward})
	return id, nil
}
