package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cvtune/internal/domain/entity"
	"cvtune/internal/infrastructure/surface"
)

const window = "tune"

func newHSVBoard(t *testing.T) (*Board, *surface.MemorySurface) {
	t.Helper()
	surf := surface.NewMemorySurface()
	b, err := NewBoard(surf, window,
		[]string{"H", "S", "V", "Hmin"},
		[]int{10, 20, 30, 0},
		[]int{180, 255, 255, 180})
	require.NoError(t, err)
	return b, surf
}

func TestNewBoard_InitialValues(t *testing.T) {
	surf := surface.NewMemorySurface()
	b, err := NewBoard(surf, window, []string{"A", "B"}, []int{7, 9}, []int{10, 10})
	require.NoError(t, err)

	// обработчик вызывается при создании каждого ползунка, но ещё не включён
	a, err := b.Value("A")
	require.NoError(t, err)
	require.Equal(t, 7, a)
	v, err := b.Value("B")
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.Equal(t, []string{"A", "B"}, b.Names())
}

func TestNewBoard_MismatchedLengths(t *testing.T) {
	surf := surface.NewMemorySurface()
	_, err := NewBoard(surf, window, []string{"A", "B"}, []int{1}, []int{10, 10})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	require.False(t, surf.HasWindow(window))
	require.Zero(t, surf.SliderCount())
}

func TestNewBoard_DuplicateName(t *testing.T) {
	surf := surface.NewMemorySurface()
	_, err := NewBoard(surf, window, []string{"A", "A"}, []int{1, 1}, []int{10, 10})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	require.ErrorIs(t, err, entity.ErrConflict)
	require.Zero(t, surf.SliderCount())
}

func TestNewBoard_InitialOutOfRange(t *testing.T) {
	_, err := NewBoard(surface.NewMemorySurface(), window, []string{"A"}, []int{11}, []int{10})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestNewSingleBoard_NoGroups(t *testing.T) {
	b, err := NewSingleBoard(surface.NewMemorySurface(), window, "A", 1, 10)
	require.NoError(t, err)

	err = b.DefineGroup("g", "A", "A")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestBoard_RoundTrip(t *testing.T) {
	b, _ := newHSVBoard(t)

	require.NoError(t, b.SetValue(entity.Name("Hmin"), entity.Scalar(42)))
	v, err := b.Value("Hmin")
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestBoard_DragIsSeenOnRead(t *testing.T) {
	b, surf := newHSVBoard(t)

	surf.Drag("S", window, 99)
	v, err := b.Value("S")
	require.NoError(t, err)
	require.Equal(t, 99, v)
}

func TestBoard_GroupConsistency(t *testing.T) {
	b, surf := newHSVBoard(t)
	require.NoError(t, b.DefineGroup("hsv", "H", "S", "V"))

	got, err := b.GroupValues("hsv")
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30}, got)

	require.NoError(t, b.SetValue(entity.Name("S"), entity.Scalar(77)))
	surf.Drag("V", window, 5)

	got, err = b.GroupValues("hsv")
	require.NoError(t, err)
	want := make([]int, 0, 3)
	for _, name := range []string{"H", "S", "V"} {
		v, err := b.Value(name)
		require.NoError(t, err)
		want = append(want, v)
	}
	require.Equal(t, want, got)
	require.Equal(t, []int{10, 77, 5}, got)
}

func TestBoard_DefineGroupErrors(t *testing.T) {
	b, _ := newHSVBoard(t)
	require.NoError(t, b.DefineGroup("hs", "H", "S"))

	require.ErrorIs(t, b.DefineGroup("one", "H"), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.DefineGroup("x", "H", "nope"), entity.ErrInvalidArgument)
	require.ErrorIs(t, b.DefineGroup("hs", "H", "V"), entity.ErrConflict)
	require.ErrorIs(t, b.DefineGroup("H", "S", "V"), entity.ErrConflict)
	require.Equal(t, []string{"hs"}, b.Groups())
}

func TestBoard_ReadErrors(t *testing.T) {
	b, _ := newHSVBoard(t)
	require.NoError(t, b.DefineGroup("hs", "H", "S"))

	_, err := b.Read("nope")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = b.Value("hs")
	require.ErrorIs(t, err, entity.ErrType)

	_, err = b.GroupValues("H")
	require.ErrorIs(t, err, entity.ErrType)
}

func TestBoard_ResetRestoresResetValues(t *testing.T) {
	b, surf := newHSVBoard(t)
	require.NoError(t, b.SetResetValue(entity.Name("V"), entity.Scalar(200)))

	surf.Drag("H", window, 100)
	surf.Drag("S", window, 1)
	surf.Drag("V", window, 3)
	require.NoError(t, b.SetValue(entity.Name("Hmin"), entity.Scalar(50)))

	b.Reset()

	for name, want := range map[string]int{"H": 10, "S": 20, "V": 200, "Hmin": 0} {
		v, err := b.Value(name)
		require.NoError(t, err)
		require.Equal(t, want, v, name)
	}
}

func TestBoard_RangeInvariant(t *testing.T) {
	b, surf := newHSVBoard(t)
	require.NoError(t, b.SetLimit("H", entity.LimitGreater, 5, "Hmin"))

	for _, v := range []int{-10, 0, 90, 180, 500} {
		surf.Drag("H", window, v)
		surf.Drag("Hmin", window, v)
		for _, name := range b.Names() {
			got, err := b.Value(name)
			require.NoError(t, err)
			s, _ := b.Slider(name)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, s.MaxTick)
		}
	}
}
