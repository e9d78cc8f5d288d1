// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"
)

// MenuState — стартовый экран
type MenuState struct {
	sm        *StateMachine
	cfg       *config.Config
	onSession SessionHook
}

func NewMenuState(sm *StateMachine, cfg *config.Config, onSession SessionHook) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, onSession: onSession}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaMs float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	game, err := NewGameState(m.sm, m.cfg, m.onSession)
	if err != nil {
		logging.Error("cannot start game: %v", err)
		return
	}
	m.sm.SetState(game)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"PATH DEFENSE",
		"",
		"Space - start",
		"1/2/3 - tower kind, click - build or select",
		"U - upgrade, S - sell, P - pause, Tab - speed",
	}
	for i, line := range lines {
		width := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-width)/2, config.ScreenHeight/3+i*config.HUDLineHeight*2, config.TextColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
