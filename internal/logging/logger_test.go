package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(WARN)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel(INFO)
	})

	Info("placed tower %d", 1)
	Warn("lives low: %d", 2)
	Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "placed tower")
	assert.Contains(t, out, "[WARN] lives low: 2")
	assert.Contains(t, out, "[ERROR] boom")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DEBUG, l)

	l, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, INFO, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
