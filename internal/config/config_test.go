package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PathBoard/internal/state"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	k, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, state.KindQuadratic, k)
	assert.Equal(t, time.Second/24, cfg.FrameInterval())
}

func TestPlaceholderParses(t *testing.T) {
	seq, err := state.Parse(Placeholder)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(Placeholder, "Z M 524 67 L 506 76 L 506 76"))
	assert.Equal(t, "M 524 67 L 506 76 L 506 76", seq[len(seq)-3:].String())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathboard.toml")
	text := `
fps = 30
decimals = 2
default_kind = "cubic"
fill = false
zoom_cooldown = "1s"
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 2, cfg.Decimals)
	assert.False(t, cfg.Fill)
	assert.Equal(t, time.Second, cfg.ZoomCooldown)
	assert.Equal(t, 10.0, cfg.SelectDistance, "unset keys keep their default")

	k, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, state.KindCubic, k)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("fps = = 3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"fps":          func(c *Config) { c.FPS = 0 },
		"decimals":     func(c *Config) { c.Decimals = 6 },
		"zoom step":    func(c *Config) { c.ZoomStep = 1 },
		"fit fraction": func(c *Config) { c.FitFraction = 1.5 },
		"kind":         func(c *Config) { c.DefaultKind = "spline" },
		"move kind":    func(c *Config) { c.DefaultKind = "M" },
		"select":       func(c *Config) { c.SelectDistance = -1 },
		"port":         func(c *Config) { c.PreviewPort = 70000 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalid, name)
	}
}

func TestParseReportsInvalidValues(t *testing.T) {
	_, err := Parse("decimals = 9\nfps = -1")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "decimals")
	assert.Contains(t, err.Error(), "fps")
}
