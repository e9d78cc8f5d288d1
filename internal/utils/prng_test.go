package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-path-defense/internal/defs"
)

func TestChooseWeightedSingleEntry(t *testing.T) {
	p := NewPRNGService(42)
	assert.Equal(t, "grunt", p.ChooseWeighted([]defs.WaveEntry{{EnemyID: "grunt"}}))
	assert.Equal(t, "", p.ChooseWeighted(nil))
}

func TestChooseWeightedSkipsZeroWeight(t *testing.T) {
	p := NewPRNGService(7)
	entries := []defs.WaveEntry{{EnemyID: "never", Weight: 0}, {EnemyID: "always", Weight: 3}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, "always", p.ChooseWeighted(entries))
	}
}

func TestChooseWeightedIsDeterministicForSeed(t *testing.T) {
	entries := []defs.WaveEntry{{EnemyID: "a", Weight: 1}, {EnemyID: "b", Weight: 1}, {EnemyID: "c", Weight: 2}}
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.ChooseWeighted(entries), b.ChooseWeighted(entries))
	}
}
