package models

import (
	"testing"

	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	s := NewSessionState()
	s.AddScore(25)
	assert.Equal(t, 25.0, s.Score)
	s.AddScore(-40)
	assert.Equal(t, 0.0, s.Score)
	s.AddScore(12.7)
	assert.Equal(t, 12, s.DisplayScore())
}

func TestEndDrift(t *testing.T) {
	t.Parallel()

	s := SessionState{DriftTimer: 1.5, DriftActive: true, Score: 10}
	s.EndDrift()
	assert.Equal(t, 0.0, s.DriftTimer)
	assert.False(t, s.DriftActive)
	assert.Equal(t, 10.0, s.Score)
}

func TestCarInventory(t *testing.T) {
	t.Parallel()

	base := config.Default()
	assert.Equal(t, base, CarInventory.Default().Tuning(base))

	for _, c := range CarInventory.GetAllCars() {
		assert.NoError(t, c.Tuning(base).Validate(), c.Name())
	}

	c, err := CarInventory.Find("Toyota", "AE86")
	require.NoError(t, err)
	assert.Equal(t, 1985, c.Year)

	_, err = CarInventory.Find("Lada", "Riva")
	assert.ErrorIs(t, err, ErrCarNotFound)
}
