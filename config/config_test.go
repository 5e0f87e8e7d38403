package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cvtune/internal/domain/entity"
)

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("BOARD_PRESET", "")
	t.Setenv("SURFACE", " Memory ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PREVIEW_IMAGE", "frame.png")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "board.yaml", cfg.PresetPath)
	require.Equal(t, SurfaceMemory, cfg.Surface)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.Equal(t, "frame.png", cfg.PreviewImage)
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset([]byte(`
window: w
sliders:
  - {name: a, initial: 1, max: 10, reset: 0}
  - {name: b, max: 10}
groups: [{name: g, members: [a, b]}]
limits: [{subject: b, mode: greater, gap: 1, anchor: a}]
ticks: [{subject: a, values: [0, 1, 10]}]
preview: {blur: a, min_area: b, count: 2, line: 2.5}
`))
	require.NoError(t, err)

	require.Equal(t, "w", p.Window)
	require.Len(t, p.Sliders, 2)
	require.NotNil(t, p.Sliders[0].Reset)
	require.Zero(t, *p.Sliders[0].Reset)
	require.Nil(t, p.Sliders[1].Reset)
	require.Equal(t, []string{"a", "b"}, p.Groups[0].Members)
	require.Equal(t, LimitPreset{Subject: "b", Mode: "greater", Gap: 1, Anchor: "a"}, p.Limits[0])
	require.Equal(t, []int{0, 1, 10}, p.Ticks[0].Values)
	require.Equal(t, PreviewPreset{Blur: "a", MinArea: "b", Count: 2, Line: 2.5}, p.Preview)
}

func TestParsePreset_Invalid(t *testing.T) {
	_, err := ParsePreset([]byte("sliders: [{name: a, max: 1}]"))
	require.Error(t, err)

	_, err = ParsePreset([]byte("window: w"))
	require.Error(t, err)

	_, err = ParsePreset([]byte(`
window: w
sliders: [{name: a, max: 1}]
limits: [{subject: a, mode: sideways, gap: 1}]`))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = ParsePreset([]byte("window: [unclosed"))
	require.Error(t, err)
}

func TestLoadPreset_MissingFile(t *testing.T) {
	_, err := LoadPreset("does-not-exist.yaml")
	require.Error(t, err)
}
