package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	d := Default()
	assert.Equal(t, 320.0, d.Accel)
	assert.Equal(t, 520.0, d.MaxSpeed)
	require.NoError(t, d.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive max speed", func(t *testing.T) {
		t.Parallel()
		d := Default()
		d.MaxSpeed = 0
		err := d.Validate()
		require.ErrorIs(t, err, ErrInvalidTuning)
		assert.Contains(t, err.Error(), "max_speed")
	})

	t.Run("rejects inner offset that would collapse the infield", func(t *testing.T) {
		t.Parallel()
		d := Default()
		d.InnerOffset = 140
		require.ErrorIs(t, d.Validate(), ErrInvalidTuning)
	})

	t.Run("rejects negative margin", func(t *testing.T) {
		t.Parallel()
		d := Default()
		d.TrackMargin = -1
		require.ErrorIs(t, d.Validate(), ErrInvalidTuning)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		t.Parallel()
		cases := map[string]func(*Tuning){
			"max_speed":    func(d *Tuning) { d.MaxSpeed = math.NaN() },
			"accel":        func(d *Tuning) { d.Accel = math.Inf(1) },
			"steer_rate":   func(d *Tuning) { d.SteerRate = math.Inf(-1) },
			"track_margin": func(d *Tuning) { d.TrackMargin = math.NaN() },
		}
		for name, mutate := range cases {
			d := Default()
			mutate(&d)
			err := d.Validate()
			require.ErrorIs(t, err, ErrInvalidTuning, name)
			assert.Contains(t, err.Error(), name)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("nan in file is rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("max_speed = nan\n"), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidTuning)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("accel = 400.0\nsteer_rate = 3.0\n"), 0644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 400.0, got.Accel)
		assert.Equal(t, 3.0, got.SteerRate)
		assert.Equal(t, Default().MaxSpeed, got.MaxSpeed)
	})

	t.Run("invalid value is rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tuning.toml")
		require.NoError(t, os.WriteFile(path, []byte("friction = -5.0\n"), 0644))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidTuning)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuning.toml")
	want := Default()
	want.Brake = 500
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvTuningPath, "")

	got, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)

	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_speed = 600.0\n"), 0644))
	t.Setenv(EnvTuningPath, path)

	got, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 600.0, got.MaxSpeed)
}
