// Package targeting selects the enemy a tower attacks.
package targeting

import (
	"fmt"
	"math"

	"go-path-defense/internal/types"
)

// Mode names a targeting strategy in tower definitions.
type Mode string

const (
	ModeNone          Mode = ""
	ModeNearest       Mode = "nearest"
	ModeHighestHealth Mode = "highest_health"
)

// Candidate is a live enemy as seen by a tower.
type Candidate struct {
	ID     types.EntityID
	X, Y   float64
	Health int
}

// Policy picks one candidate within radius of (x, y). Candidates are scanned
// in the given order and the first one wins ties.
type Policy func(x, y, radius float64, candidates []Candidate) (types.EntityID, bool)

// Nearest picks the closest candidate with distance <= radius.
func Nearest(x, y, radius float64, candidates []Candidate) (types.EntityID, bool) {
	var best types.EntityID
	found := false
	minDistance := math.MaxFloat64
	for _, c := range candidates {
		distance := math.Hypot(c.X-x, c.Y-y)
		if distance > radius {
			continue
		}
		if !found || distance < minDistance {
			best, minDistance, found = c.ID, distance, true
		}
	}
	return best, found
}

// HighestHealth picks the in-range candidate with strictly greatest health.
func HighestHealth(x, y, radius float64, candidates []Candidate) (types.EntityID, bool) {
	var best types.EntityID
	found := false
	maxHealth := 0
	for _, c := range candidates {
		if math.Hypot(c.X-x, c.Y-y) > radius {
			continue
		}
		if !found || c.Health > maxHealth {
			best, maxHealth, found = c.ID, c.Health, true
		}
	}
	return best, found
}

// ForMode resolves a mode to its policy. ModeNone yields a nil policy:
// the tower never targets.
func ForMode(mode Mode) (Policy, error) {
	switch mode {
	case ModeNearest:
		return Nearest, nil
	case ModeHighestHealth:
		return HighestHealth, nil
	case ModeNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown targeting mode %q", mode)
	}
}
