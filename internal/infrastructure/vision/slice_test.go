package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"cvtune/internal/domain/entity"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// halves рисует изображение cols x rows: левая половина красная, правая синяя
func halves(cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := red
			if x >= cols/2 {
				c = blue
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func sameColor(t *testing.T, want color.Color, got color.Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	require.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{gr, gg, gb, ga})
}

func TestSlice_Vertical(t *testing.T) {
	left, right, err := Slice(halves(4, 6), 2, entity.SliceVertical)
	require.NoError(t, err)
	require.Equal(t, image.Pt(2, 6), left.Bounds().Size())
	require.Equal(t, image.Pt(2, 6), right.Bounds().Size())
	sameColor(t, red, left.At(left.Bounds().Min.X, left.Bounds().Min.Y))
	sameColor(t, blue, right.At(right.Bounds().Min.X, right.Bounds().Min.Y))
}

func TestSlice_Horizontal(t *testing.T) {
	top, bottom, err := Slice(halves(4, 6), 1, entity.SliceHorizontal)
	require.NoError(t, err)
	require.Equal(t, image.Pt(4, 1), top.Bounds().Size())
	require.Equal(t, image.Pt(4, 5), bottom.Bounds().Size())
}

func TestSlice_OffsetBounds(t *testing.T) {
	sub := halves(8, 4).SubImage(image.Rect(2, 0, 6, 4))
	left, right, err := Slice(sub, 2, entity.SliceVertical)
	require.NoError(t, err)
	require.Equal(t, image.Pt(2, 4), left.Bounds().Size())
	sameColor(t, red, left.At(left.Bounds().Min.X, left.Bounds().Min.Y))
	sameColor(t, blue, right.At(right.Bounds().Min.X, right.Bounds().Min.Y))
}

func TestSlice_Errors(t *testing.T) {
	img := halves(4, 6)

	_, _, err := Slice(img, 7, entity.SliceHorizontal)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, _, err = Slice(img, -1, entity.SliceVertical)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, _, err = Slice(img, 1, entity.SliceLongest)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	_, _, err = SliceHalf(img, entity.SliceDirection(9))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestSliceHalf(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		dir        entity.SliceDirection
		want       image.Point
	}{
		{"longest tall", 4, 6, entity.SliceLongest, image.Pt(2, 6)},
		{"longest wide", 6, 4, entity.SliceLongest, image.Pt(6, 2)},
		{"shortest tall", 4, 6, entity.SliceShortest, image.Pt(4, 3)},
		{"shortest wide", 6, 4, entity.SliceShortest, image.Pt(3, 4)},
		{"horizontal", 4, 6, entity.SliceHorizontal, image.Pt(4, 3)},
		{"vertical", 4, 6, entity.SliceVertical, image.Pt(2, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second, err := SliceHalf(halves(tt.cols, tt.rows), tt.dir)
			require.NoError(t, err)
			require.Equal(t, tt.want, first.Bounds().Size())
			require.Equal(t, tt.want, second.Bounds().Size())
		})
	}
}
