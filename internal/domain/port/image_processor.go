package port

import (
	"image"

	"cvtune/internal/domain/entity"
)

// ImageProcessor интерфейс обработки изображений, параметры которой настраиваются ползунками
type ImageProcessor interface {
	// Smooth применяет сглаживающий фильтр
	Smooth(img image.Image, params entity.Smoothing) (image.Image, error)

	// Morph применяет шаги морфологии по порядку
	Morph(img image.Image, steps ...entity.MorphStep) (image.Image, error)

	// HSVMask строит бинарную маску по диапазону HSV
	HSVMask(img image.Image, lower, upper entity.HSV) (image.Image, error)

	// LargestContours возвращает индексы самых больших контуров маски
	LargestContours(mask image.Image, areaThreshold float64, n int) ([]int, error)

	// IsStraightLine проверяет, является ли самый большой контур маски прямой линией
	IsStraightLine(mask image.Image, threshold float64) (bool, error)
}
