// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру под затемнением. Часы симуляции
// стоят, пока состояние активно.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaMs float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.game.pauseButton.IsClicked(x, y)
	}

	if unpause {
		s.stateMachine.SetState(s.game) // GameState.Enter снимает паузу
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.game.Renderer().DrawOverlay(screen, "PAUSED")
}

func (s *PauseState) Exit() {}
