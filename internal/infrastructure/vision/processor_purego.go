//go:build !gocv
// +build !gocv

package vision

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// Processor обработка изображений на чистом Go (сборка без OpenCV).
// Билатеральный фильтр, контуры и проверка линий требуют тега gocv.
type Processor struct{}

// NewProcessor создаёт обработчик
func NewProcessor() *Processor {
	return &Processor{}
}

// Smooth применяет сглаживающий фильтр
func (p *Processor) Smooth(img image.Image, params entity.Smoothing) (image.Image, error) {
	if err := validateSmoothing(params); err != nil {
		return nil, err
	}
	radius := float64(params.KernelSize / 2)

	switch params.Kind {
	case entity.SmoothGaussian:
		sigma := params.SigmaX
		if sigma <= 0 {
			// так OpenCV выводит sigma из размера ядра
			sigma = 0.3*((float64(params.KernelSize)-1)*0.5-1) + 0.8
		}
		return imaging.Blur(img, sigma), nil
	case entity.SmoothBox:
		return blur.Box(img, radius), nil
	case entity.SmoothMedian:
		return effect.Median(img, radius), nil
	case entity.SmoothConvolution:
		k := convolution.NewKernel(params.KernelSize, params.KernelSize)
		weight := 1 / float64(params.KernelSize*params.KernelSize)
		for i := range k.Matrix {
			k.Matrix[i] = weight
		}
		return convolution.Convolve(img, k, &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}), nil
	}
	return nil, fmt.Errorf("%s filter: %w", params.Kind, ErrGoCVRequired)
}

// Morph применяет шаги по порядку, каждый к результату предыдущего.
// Форма ядра не учитывается.
func (p *Processor) Morph(img image.Image, steps ...entity.MorphStep) (image.Image, error) {
	if err := validateMorph(steps); err != nil {
		return nil, err
	}

	cur := img
	for _, s := range steps {
		radius := float64(s.KernelSize / 2)
		for i := 0; i < iterations(s); i++ {
			switch s.Op {
			case entity.MorphErode:
				cur = effect.Erode(cur, radius)
			case entity.MorphDilate:
				cur = effect.Dilate(cur, radius)
			case entity.MorphOpen:
				cur = effect.Dilate(effect.Erode(cur, radius), radius)
			case entity.MorphClose:
				cur = effect.Erode(effect.Dilate(cur, radius), radius)
			default:
				return nil, fmt.Errorf("morphology %q: %w", s.Op, ErrGoCVRequired)
			}
		}
	}
	return cur, nil
}

// HSVMask строит маску пикселей, попавших в диапазон HSV (шкала OpenCV)
func (p *Processor) HSVMask(img image.Image, lower, upper entity.HSV) (image.Image, error) {
	b := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// полностью прозрачный пиксель не имеет цвета
				continue
			}
			h, s, v := c.Hsv()
			px := entity.HSV{H: int(h / 2), S: int(s * 255), V: int(v * 255)}
			if inRange(px, lower, upper) {
				mask.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: 255})
			}
		}
	}
	return mask, nil
}

func inRange(px, lower, upper entity.HSV) bool {
	return px.H >= lower.H && px.H <= upper.H &&
		px.S >= lower.S && px.S <= upper.S &&
		px.V >= lower.V && px.V <= upper.V
}

// LargestContours возвращает ошибку, если сборка без тега gocv.
func (p *Processor) LargestContours(image.Image, float64, int) ([]int, error) {
	return nil, ErrGoCVRequired
}

// IsStraightLine возвращает ошибку, если сборка без тега gocv.
func (p *Processor) IsStraightLine(image.Image, float64) (bool, error) {
	return false, ErrGoCVRequired
}

var _ port.ImageProcessor = (*Processor)(nil)
