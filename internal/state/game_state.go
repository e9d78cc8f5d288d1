// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/types"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"
)

// SessionHook вызывается для каждой новой симуляции (в том числе после рестарта),
// например чтобы подписать на неё метрики.
type SessionHook func(sim *app.Simulation)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// GameState — состояние игры: ввод игрока, тик симуляции и отрисовка.
type GameState struct {
	sm            *StateMachine
	cfg           *config.Config
	onSession     SessionHook
	sim           *app.Simulation
	renderer      *render.Renderer
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator

	selectedKind  defs.TowerKind
	selectedTower types.EntityID // 0 — ничего не выбрано
	lastWave      int
	message       string
	messageTime   time.Time
}

func NewGameState(sm *StateMachine, cfg *config.Config, onSession SessionHook) (*GameState, error) {
	sim, err := app.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	if onSession != nil {
		onSession(sim)
	}

	palette := &render.Palette{
		Background: config.BackgroundColor,
		Grid:       config.GridColor,
		Path:       config.PathColor,
		Projectile: config.ProjectileColor,
		Flash:      config.DamageFlashColor,
		Range:      config.RangeColor,
		Text:       config.TextColor,
		HealthBar:  config.HealthBarColor,
		Overlay:    config.OverlayColor,
		PathWidth:  config.PathWidth,
	}
	renderer := render.NewRenderer(sim.Waypoints(), config.ScreenWidth, config.ScreenHeight, palette)

	speedColors := []color.Color{
		color.RGBA{70, 130, 180, 255},
		color.RGBA{255, 165, 0, 255},
		color.RGBA{220, 60, 60, 255},
	}
	buttonY := float32(config.ButtonSize * 2)
	g := &GameState{
		sm:            sm,
		cfg:           cfg,
		onSession:     onSession,
		sim:           sim,
		renderer:      renderer,
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-config.ButtonSize*5, buttonY, config.ButtonSize, speedColors[:len(config.SpeedMultipliers)]),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-config.ButtonSize*2, buttonY, config.ButtonSize, config.TextColor, config.TextColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDLineHeight*2, renderer.Face(), config.TextColor),
	}
	if len(cfg.Towers) > 0 {
		g.selectedKind = cfg.Towers[0].Kind
	}
	return g, nil
}

func (g *GameState) Enter() {
	g.sim.Resume()
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaMs float64) {
	if g.sim.IsGameOver() {
		g.updateGameOver()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return
	}

	g.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selectedTower = 0
	}

	for _, e := range g.sim.Tick(deltaMs) {
		g.onEvent(e)
	}
}

func (g *GameState) handleKeys() {
	for i, key := range towerKeys {
		if i < len(g.cfg.Towers) && inpututil.IsKeyJustPressed(key) {
			g.selectedKind = g.cfg.Towers[i].Kind
			g.selectedTower = 0
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.report(g.sim.StartWave())
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		if g.selectedTower != 0 {
			g.report(g.sim.UpgradeTower(g.selectedTower))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if g.selectedTower != 0 {
			refund, err := g.sim.SellTower(g.selectedTower)
			if g.report(err) {
				g.notify(fmt.Sprintf("sold for %d", refund))
			}
			g.selectedTower = 0
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleSpeed()
	}
}

func (g *GameState) handleClick(x, y int) {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeed()
		return
	case g.pauseButton.IsClicked(x, y):
		g.pause()
		return
	}

	if id, found := g.sim.TowerAt(float64(x), float64(y), config.TowerRadius); found {
		g.selectedTower = id
		return
	}
	g.selectedTower = 0

	col, row := x/config.GridSize, y/config.GridSize
	if col < 0 || row < 0 || col >= config.GridCols || row >= config.GridRows {
		return
	}
	pos := component.Position{
		X: float64(col*config.GridSize + config.GridSize/2),
		Y: float64(row*config.GridSize + config.GridSize/2),
	}
	if id, err := g.sim.PlaceTower(g.selectedKind, pos); g.report(err) {
		g.selectedTower = id
	}
}

func (g *GameState) cycleSpeed() {
	state := g.speedButton.Toggle()
	g.sim.SetSpeed(config.SpeedMultipliers[state%len(config.SpeedMultipliers)])
}

func (g *GameState) pause() {
	g.sim.Pause()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) updateGameOver() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		next, err := NewGameState(g.sm, g.cfg, g.onSession)
		if err != nil {
			logging.Error("restart failed: %v", err)
			return
		}
		g.sm.SetState(next)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.cfg, g.onSession))
	}
}

// report показывает ошибку игроку и возвращает true, если ошибки не было.
func (g *GameState) report(err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, app.ErrInsufficientFunds):
		g.notify("not enough money")
	case errors.Is(err, app.ErrPositionOccupied):
		g.notify("position occupied")
	case errors.Is(err, app.ErrWaveInProgress):
		g.notify("wave in progress")
	default:
		g.notify(err.Error())
	}
	logging.Debug("action rejected: %v", err)
	return false
}

func (g *GameState) notify(msg string) {
	g.message = msg
	g.messageTime = time.Now()
}

func (g *GameState) onEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		g.lastWave = e.Data.(event.WaveData).Number
	case event.WaveEnded:
		g.notify(fmt.Sprintf("wave %d cleared", e.Data.(event.WaveData).Number))
	case event.TowerSold:
		if e.Data.(event.TowerData).TowerID == g.selectedTower {
			g.selectedTower = 0
		}
	case event.GameOver:
		g.selectedTower = 0
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.ECS, g.selectedTower)
	g.renderer.DrawHUD(screen, g.hudLines())
	g.waveIndicator.Draw(screen, g.lastWave)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.sim.IsGameOver() {
		g.renderer.DrawOverlay(screen, fmt.Sprintf("GAME OVER - wave %d. R to restart, Esc for menu", g.lastWave))
	}
}

func (g *GameState) hudLines() []string {
	econ := g.sim.Economy()
	lines := []string{
		fmt.Sprintf("Money: %d   Lives: %d   Speed: x%.0f   Phase: %s", econ.Money(), econ.Lives(), g.sim.Speed(), g.sim.ECS.Phase),
	}

	if def, ok := g.sim.Library().Tower(g.selectedKind); ok {
		lines = append(lines, fmt.Sprintf("Build: %s (%d)   [1-%d] kind, [Space] wave, [P] pause, [Tab] speed",
			def.Name, def.Cost, min(len(g.cfg.Towers), len(towerKeys))))
	}

	if tower, ok := g.sim.ECS.Towers[g.selectedTower]; ok {
		cost, _ := g.sim.UpgradeCost(g.selectedTower)
		refund := app.SellRefund(tower.Invested, g.cfg.SellPercentage)
		lines = append(lines, fmt.Sprintf("Tower %s lvl %d   [U] upgrade %d, [S] sell %d", tower.Kind, tower.Level, cost, refund))
	}

	if g.message != "" && time.Since(g.messageTime) < config.MessageTimeout {
		lines = append(lines, g.message)
	}
	return lines
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// Resume снимает паузу, вызывается из PauseState.
func (g *GameState) Resume() {
	g.sim.Resume()
	g.pauseButton.SetPaused(false)
}

// Renderer нужен PauseState для затемнения экрана.
func (g *GameState) Renderer() *render.Renderer {
	return g.renderer
}
