package telegram

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cvtune/config"
	"cvtune/internal/container"
	"cvtune/internal/infrastructure/storage"
	"cvtune/internal/infrastructure/surface"
	"cvtune/internal/infrastructure/vision"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	preset, err := config.ParsePreset([]byte(`
window: w
sliders:
  - {name: H, initial: 1, max: 180}
  - {name: S, initial: 2, max: 255}
groups: [{name: hs, members: [H, S]}]
`))
	require.NoError(t, err)

	surf := surface.NewMemorySurface()
	c, err := container.New(surf, surf, preset, storage.NewMemorySnapshotRepository(), vision.NewProcessor(), zerolog.Nop())
	require.NoError(t, err)
	return &Bot{app: c, log: zerolog.Nop()}
}

func TestParseSet(t *testing.T) {
	name, values, err := parseSet("hs 3 4")
	require.NoError(t, err)
	require.Equal(t, "hs", name)
	require.Equal(t, []int{3, 4}, values)

	_, _, err = parseSet("H")
	require.Error(t, err)
	_, _, err = parseSet("H x")
	require.Error(t, err)
}

func TestBot_Reply(t *testing.T) {
	ctx := context.Background()
	b := newTestBot(t)

	require.Equal(t, msgStart, b.reply(ctx, "start", ""))
	require.Equal(t, msgHelp, b.reply(ctx, "help", ""))
	require.Equal(t, msgUnknownCommand, b.reply(ctx, "dance", ""))

	require.Equal(t, "✅ 'H': 90", b.reply(ctx, "set", "H 90"))
	require.Equal(t, "✅ 'hs': (5, 6)", b.reply(ctx, "set", "hs 5 6"))
	require.Equal(t, msgSetUsage, b.reply(ctx, "set", "H"))
	require.Contains(t, b.reply(ctx, "set", "H 900"), "⚠️")

	require.Equal(t, "======\n'H': 5\n======", b.reply(ctx, "values", "H"))
	require.Contains(t, b.reply(ctx, "values", "nope"), "doesn't exist")

	require.Equal(t, msgNoSnapshots, b.reply(ctx, "snapshots", ""))
	require.Equal(t, msgLabelUsage, b.reply(ctx, "save", " "))
	require.Contains(t, b.reply(ctx, "save", "one"), "one")
	require.Equal(t, msgResetDone, b.reply(ctx, "reset", ""))
	require.Equal(t, "======\n'H': 1\n======", b.reply(ctx, "values", "H"))

	require.Contains(t, b.reply(ctx, "load", "one"), "one")
	require.Equal(t, "======\n'H': 5\n======", b.reply(ctx, "values", "H"))
	require.Contains(t, b.reply(ctx, "load", "two"), "⚠️")
	require.Equal(t, "📚 one", b.reply(ctx, "snapshots", ""))
}
