// Package vision содержит операции над изображениями, параметры которых
// подбираются ползунками: разрезание, сглаживание, морфология, контуры.
package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"cvtune/internal/domain/entity"
)

// ErrGoCVRequired операция доступна только в сборке с тегом gocv
var ErrGoCVRequired = errors.New("gocv build tag is not enabled")

// Slice режет изображение на две части по индексу строки (SliceHorizontal)
// или столбца (SliceVertical).
func Slice(img image.Image, index int, dir entity.SliceDirection) (image.Image, image.Image, error) {
	b := img.Bounds()
	switch dir {
	case entity.SliceHorizontal:
		if index < 0 || index > b.Dy() {
			return nil, nil, fmt.Errorf("%w: row %d is outside [0, %d]", entity.ErrInvalidArgument, index, b.Dy())
		}
		cut := b.Min.Y + index
		return imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Max.X, cut)),
			imaging.Crop(img, image.Rect(b.Min.X, cut, b.Max.X, b.Max.Y)), nil
	case entity.SliceVertical:
		if index < 0 || index > b.Dx() {
			return nil, nil, fmt.Errorf("%w: column %d is outside [0, %d]", entity.ErrInvalidArgument, index, b.Dx())
		}
		cut := b.Min.X + index
		return imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, cut, b.Max.Y)),
			imaging.Crop(img, image.Rect(cut, b.Min.Y, b.Max.X, b.Max.Y)), nil
	}
	return nil, nil, fmt.Errorf("%w: slice direction %d needs an index-free call", entity.ErrInvalidArgument, int(dir))
}

// SliceHalf режет изображение пополам.
// SliceLongest: высокое изображение режется по столбцам, широкое по строкам;
// SliceShortest наоборот.
func SliceHalf(img image.Image, dir entity.SliceDirection) (image.Image, image.Image, error) {
	rows, cols := img.Bounds().Dy(), img.Bounds().Dx()
	switch dir {
	case entity.SliceLongest:
		if rows >= cols {
			return Slice(img, cols/2, entity.SliceVertical)
		}
		return Slice(img, rows/2, entity.SliceHorizontal)
	case entity.SliceShortest:
		if rows <= cols {
			return Slice(img, cols/2, entity.SliceVertical)
		}
		return Slice(img, rows/2, entity.SliceHorizontal)
	case entity.SliceHorizontal:
		return Slice(img, rows/2, entity.SliceHorizontal)
	case entity.SliceVertical:
		return Slice(img, cols/2, entity.SliceVertical)
	}
	return nil, nil, fmt.Errorf("%w: unknown slice direction %d", entity.ErrInvalidArgument, int(dir))
}
