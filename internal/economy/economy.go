// Package economy holds the player's money and lives counters.
package economy

import "errors"

var (
	// ErrInsufficientFunds is returned by Spend when the balance is lower than the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for negative amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Economy tracks money and lives. Money never drops below zero and lives
// stop at zero, which is the game-over condition.
type Economy struct {
	money int
	lives int
}

// New creates an economy with the given starting balance and lives.
func New(money, lives int) *Economy {
	if money < 0 {
		money = 0
	}
	if lives < 0 {
		lives = 0
	}
	return &Economy{money: money, lives: lives}
}

func (e *Economy) Money() int { return e.money }
func (e *Economy) Lives() int { return e.lives }

// CanAfford reports whether the current balance covers amount.
func (e *Economy) CanAfford(amount int) bool {
	return e.money >= amount
}

// Spend debits amount. On failure the balance is left untouched.
func (e *Economy) Spend(amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if !e.CanAfford(amount) {
		return ErrInsufficientFunds
	}
	e.money -= amount
	return nil
}

// Credit adds amount to the balance. Non-positive amounts are ignored.
func (e *Economy) Credit(amount int) {
	if amount <= 0 {
		return
	}
	e.money += amount
}

// LoseLife takes one life and reports whether the game is over.
func (e *Economy) LoseLife() bool {
	if e.lives > 0 {
		e.lives--
	}
	return e.IsGameOver()
}

func (e *Economy) IsGameOver() bool {
	return e.lives <= 0
}
