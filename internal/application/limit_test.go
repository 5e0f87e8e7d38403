package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cvtune/internal/domain/entity"
	"cvtune/internal/infrastructure/surface"
)

func newPairBoard(t *testing.T, maxTick int) (*Board, *surface.MemorySurface) {
	t.Helper()
	surf := surface.NewMemorySurface()
	b, err := NewBoard(surf, window, []string{"A", "B"}, []int{5, 5}, []int{maxTick, maxTick})
	require.NoError(t, err)
	return b, surf
}

func TestLimit_LessKeepsGap(t *testing.T) {
	b, surf := newPairBoard(t, 20)
	require.NoError(t, b.SetLimit("B", entity.LimitLess, 2, "A"))

	for a := 0; a <= 20; a += 3 {
		for v := 0; v <= 20; v += 4 {
			surf.Drag("A", window, a)
			surf.Drag("B", window, v)

			av, err := b.Value("A")
			require.NoError(t, err)
			bv, err := b.Value("B")
			require.NoError(t, err)
			require.GreaterOrEqual(t, av-bv, 2, "A=%d B=%d", a, v)
		}
	}
}

func TestLimit_LessSubjectRestoredToGap(t *testing.T) {
	b, surf := newPairBoard(t, 20)
	require.NoError(t, b.SetLimit("B", entity.LimitLess, 2, "A"))

	surf.Drag("A", window, 10)
	surf.Drag("B", window, 15)

	v, err := b.Value("B")
	require.NoError(t, err)
	require.Equal(t, 8, v)
}

func TestLimit_LessAnchorYieldsAtMinimum(t *testing.T) {
	b, surf := newPairBoard(t, 20)
	require.NoError(t, b.SetLimit("B", entity.LimitLess, 2, "A"))

	surf.Drag("A", window, 0)
	surf.Drag("B", window, 0)

	got := map[string]int{}
	for _, name := range []string{"A", "B"} {
		v, err := b.Value(name)
		require.NoError(t, err)
		got[name] = v
	}
	require.Equal(t, map[string]int{"A": 2, "B": 0}, got)
}

func TestLimit_GreaterAnchorYieldsAtMaximum(t *testing.T) {
	b, surf := newPairBoard(t, 10)
	require.NoError(t, b.SetLimit("B", entity.LimitGreater, 3, "A"))

	surf.Drag("A", window, 9)
	surf.Drag("B", window, 10)

	a, err := b.Value("A")
	require.NoError(t, err)
	v, err := b.Value("B")
	require.NoError(t, err)
	require.Equal(t, 7, a)
	require.Equal(t, 10, v)
}

func TestLimit_GreaterEqualGapIsLegal(t *testing.T) {
	b, surf := newPairBoard(t, 10)
	require.NoError(t, b.SetLimit("B", entity.LimitGreater, 3, "A"))

	surf.Drag("A", window, 2)
	surf.Drag("B", window, 5)
	before := surf.Writes()

	v, err := b.Value("B")
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, before, surf.Writes())
}

func TestLimit_ReplacesPrevious(t *testing.T) {
	b, _ := newPairBoard(t, 10)
	require.NoError(t, b.SetLimit("B", entity.LimitGreater, 3, "A"))
	require.NoError(t, b.SetLimit("B", entity.LimitLess, 1, "A"))

	require.Equal(t, []entity.Limit{{Subject: "B", Anchor: "A", Mode: entity.LimitLess, Gap: 1}}, b.Limits())
}

func TestLimit_Errors(t *testing.T) {
	b, _ := newPairBoard(t, 10)

	require.ErrorIs(t, b.SetLimit("nope", entity.LimitLess, 1, "A"), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.SetLimit("B", entity.LimitLess, 1, "nope"), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.SetLimit("B", entity.LimitMode(7), 1, "A"), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.SetLimit("B", entity.LimitLess, 1, "B"), entity.ErrInvalidArgument)

	require.NoError(t, b.SetLimit("B", entity.LimitLess, 1, "A"))
	require.ErrorIs(t, b.SetLimit("A", entity.LimitGreater, 1, "B"), entity.ErrConflict)
}

func TestLimit_Absolute(t *testing.T) {
	b, surf := newPairBoard(t, 10)

	require.NoError(t, b.SetLimit("A", entity.LimitGreater, 6, ""))
	min, max, ok := surf.Bounds("A", window)
	require.True(t, ok)
	require.Equal(t, 7, min)
	require.Equal(t, 10, max)

	v, err := b.Value("A")
	require.NoError(t, err)
	require.Equal(t, 7, v)

	require.NoError(t, b.SetLimit("B", entity.LimitLess, 4, ""))
	_, max, _ = surf.Bounds("B", window)
	require.Equal(t, 3, max)
	v, err = b.Value("B")
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Empty(t, b.Limits())

	require.ErrorIs(t, b.SetLimit("A", entity.LimitGreater, 30, ""), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.SetLimit("A", entity.LimitLess, 3, ""), entity.ErrInvalidArgument)
}
