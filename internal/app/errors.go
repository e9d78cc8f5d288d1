package app

import (
	"errors"

	"go-path-defense/internal/economy"
	"go-path-defense/internal/system"
)

// ErrInsufficientFunds: the operation was rejected and money is unchanged.
var ErrInsufficientFunds = economy.ErrInsufficientFunds

// ErrInvalidHandle: the tower id does not exist (never placed or already sold).
var ErrInvalidHandle = errors.New("invalid handle")

var (
	ErrUnknownTowerType = errors.New("unknown tower type")
	ErrPositionOccupied = errors.New("position occupied")
	ErrUnknownEnemyType = system.ErrUnknownEnemyType
	ErrGameOver         = errors.New("game over")
	ErrWaveInProgress   = errors.New("wave in progress")
)
