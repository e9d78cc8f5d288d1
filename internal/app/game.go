// internal/app/game.go
package app

import (
	"fmt"

	"github.com/google/uuid"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// Simulation owns every entity, the economy and the systems, and advances
// them one frame at a time. It is not safe for concurrent use: the host must
// call it from a single goroutine.
type Simulation struct {
	SessionID uuid.UUID

	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	GeneratorSystem    *system.GeneratorSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher

	cfg     *config.Config
	library *defs.Library
	economy *economy.Economy

	isPaused     bool
	speed        float64
	gameOverSent bool
}

// NewSimulation validates cfg and builds a simulation around it.
func NewSimulation(cfg *config.Config) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	library, err := defs.NewLibrary(cfg.Towers, cfg.Enemies)
	if err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	if err := library.ValidateWaves(cfg.Waves); err != nil {
		return nil, fmt.Errorf("invalid waves: %w", err)
	}

	ecs := entity.NewECS()
	econ := economy.New(cfg.StartingMoney, cfg.Lives)
	eventDispatcher := event.NewDispatcher(func() float64 { return ecs.GameTime })

	s := &Simulation{
		SessionID:          uuid.New(),
		ECS:                ecs,
		MovementSystem:     system.NewMovementSystem(ecs, econ, eventDispatcher, cfg.WaypointEpsilon),
		WaveSystem:         system.NewWaveSystem(ecs, library, eventDispatcher, utils.NewPRNGService(cfg.Seed), cfg),
		CombatSystem:       system.NewCombatSystem(ecs, eventDispatcher, library, cfg.ProjectileSpeed),
		ProjectileSystem:   system.NewProjectileSystem(ecs, eventDispatcher, cfg.HitRadius, cfg.FlashDurationMs),
		GeneratorSystem:    system.NewGeneratorSystem(ecs, econ, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		EventDispatcher:    eventDispatcher,
		cfg:                cfg,
		library:            library,
		economy:            econ,
		speed:              1,
	}

	if cfg.AutoNextWave {
		eventDispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(event.Event) {
			if err := s.StartWave(); err != nil {
				logging.Debug("auto wave: %v", err)
			}
		}))
	}

	logging.Info("simulation %s created: money=%d lives=%d towers=%d enemies=%d waves=%d",
		s.SessionID, cfg.StartingMoney, cfg.Lives, len(cfg.Towers), len(cfg.Enemies), len(cfg.Waves))
	return s, nil
}

// Tick advances the simulation by deltaMs of game time and returns the events
// produced since the previous tick. Order: waves spawn, enemies move, towers
// fire, projectiles fly and resolve, dead enemies are removed, money towers
// pay out, then the loss condition is checked.
func (s *Simulation) Tick(deltaMs float64) []event.Event {
	if s.isPaused || s.gameOverSent || deltaMs <= 0 {
		return nil
	}

	dt := deltaMs * s.speed
	s.ECS.GameTime += dt

	s.WaveSystem.Update(dt)
	s.MovementSystem.Update(dt)
	s.CombatSystem.Update(dt)
	s.ProjectileSystem.Update(dt)
	s.cleanupDestroyedEntities()
	s.GeneratorSystem.Update(dt)
	s.VisualEffectSystem.Update(dt)
	s.checkGameOver()

	return s.EventDispatcher.Drain()
}

// cleanupDestroyedEntities removes every enemy whose health dropped to zero
// during this tick, after all projectiles were resolved.
func (s *Simulation) cleanupDestroyedEntities() {
	for _, id := range s.ECS.EnemyIDs() {
		health, hasHealth := s.ECS.Healths[id]
		if !hasHealth || health.Value > 0 {
			continue
		}
		health.Value = 0

		enemy := s.ECS.Enemies[id]
		s.ECS.RemoveEntity(id)
		s.EventDispatcher.Emit(event.EnemyKilled, event.EnemyData{EnemyID: id, DefID: enemy.DefID, Reward: enemy.Reward})
		system.CreditMoney(s.economy, s.EventDispatcher, enemy.Reward, event.EnemyKilled)
	}
}

func (s *Simulation) checkGameOver() {
	if s.gameOverSent || !s.economy.IsGameOver() {
		return
	}
	s.gameOverSent = true
	s.ECS.Phase = component.OverPhase

	wave := s.WaveSystem.NextWave() - 1
	s.EventDispatcher.Emit(event.GameOver, event.GameOverData{
		SessionID: s.SessionID.String(),
		Wave:      wave,
		Time:      s.ECS.GameTime,
	})
	logging.Info("simulation %s: game over at wave %d after %.0f ms", s.SessionID, wave, s.ECS.GameTime)
}

// StartWave begins the next enemy wave.
func (s *Simulation) StartWave() error {
	if s.gameOverSent {
		return ErrGameOver
	}
	if s.ECS.Wave != nil {
		return ErrWaveInProgress
	}
	wave, err := s.WaveSystem.StartWave()
	if err != nil {
		return err
	}
	logging.Info("wave %d started: %d enemies", wave.Number, wave.EnemiesToSpawn)
	return nil
}

// SpawnEnemy puts one enemy of the given definition at the start of the path.
func (s *Simulation) SpawnEnemy(defID string) (types.EntityID, error) {
	if s.gameOverSent {
		return 0, ErrGameOver
	}
	return s.WaveSystem.SpawnEnemy(defID)
}

// --- Public Accessors & Mutators ---

func (s *Simulation) Economy() *economy.Economy { return s.economy }
func (s *Simulation) Config() *config.Config    { return s.cfg }
func (s *Simulation) Library() *defs.Library    { return s.library }
func (s *Simulation) GameTime() float64         { return s.ECS.GameTime }
func (s *Simulation) IsGameOver() bool          { return s.gameOverSent }

// Waypoints returns the enemy path. The slice is shared and must not be modified.
func (s *Simulation) Waypoints() []component.Position {
	return s.WaveSystem.Waypoints()
}

// Subscribe registers a listener for one event type. Listeners run
// synchronously inside the call that emits the event.
func (s *Simulation) Subscribe(eventType event.EventType, listener event.Listener) {
	s.EventDispatcher.Subscribe(eventType, listener)
}

func (s *Simulation) SubscribeAll(listener event.Listener) {
	s.EventDispatcher.SubscribeAll(listener)
}

// Pause freezes the game clock: ticks are ignored until Resume.
func (s *Simulation) Pause()         { s.isPaused = true }
func (s *Simulation) Resume()        { s.isPaused = false }
func (s *Simulation) IsPaused() bool { return s.isPaused }

// SetSpeed sets the game time multiplier. Non-positive values are ignored.
func (s *Simulation) SetSpeed(multiplier float64) {
	if multiplier > 0 {
		s.speed = multiplier
	}
}

func (s *Simulation) Speed() float64 { return s.speed }
