//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

var morphOps = map[entity.MorphOp]gocv.MorphType{
	entity.MorphErode:    gocv.MorphErode,
	entity.MorphDilate:   gocv.MorphDilate,
	entity.MorphOpen:     gocv.MorphOpen,
	entity.MorphClose:    gocv.MorphClose,
	entity.MorphGradient: gocv.MorphGradient,
	entity.MorphTophat:   gocv.MorphTophat,
	entity.MorphBlackhat: gocv.MorphBlackhat,
}

var kernelShapes = map[entity.KernelShape]gocv.MorphShape{
	entity.KernelRect:    gocv.MorphRect,
	entity.KernelCross:   gocv.MorphCross,
	entity.KernelEllipse: gocv.MorphEllipse,
}

// Processor обработка изображений через OpenCV
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
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	k := params.KernelSize
	switch params.Kind {
	case entity.SmoothBilateral:
		gocv.BilateralFilter(src, &dst, k, params.SigmaX, params.SigmaY)
	case entity.SmoothBox:
		gocv.Blur(src, &dst, image.Pt(k, k))
	case entity.SmoothConvolution:
		kernel := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(1/float64(k*k), 0, 0, 0), k, k, gocv.MatTypeCV32F)
		defer kernel.Close()
		gocv.Filter2D(src, &dst, -1, kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)
	case entity.SmoothGaussian:
		gocv.GaussianBlur(src, &dst, image.Pt(k, k), params.SigmaX, params.SigmaY, gocv.BorderDefault)
	case entity.SmoothMedian:
		gocv.MedianBlur(src, &dst, k)
	}
	return dst.ToImage()
}

// Morph применяет шаги по порядку, каждый к результату предыдущего.
func (p *Processor) Morph(img image.Image, steps ...entity.MorphStep) (image.Image, error) {
	if err := validateMorph(steps); err != nil {
		return nil, err
	}
	cur, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer func() { cur.Close() }()

	for _, s := range steps {
		op, ok := morphOps[s.Op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown morphology %q", entity.ErrInvalidArgument, s.Op)
		}
		shape, ok := kernelShapes[s.Shape]
		if !ok {
			shape = gocv.MorphRect
		}

		kernel := gocv.GetStructuringElement(shape, image.Pt(s.KernelSize, s.KernelSize))
		for i := 0; i < iterations(s); i++ {
			next := gocv.NewMat()
			gocv.MorphologyEx(cur, &next, op, kernel)
			cur.Close()
			cur = next
		}
		kernel.Close()
	}
	return cur.ToImage()
}

// HSVMask строит маску пикселей, попавших в диапазон HSV
func (p *Processor) HSVMask(img image.Image, lower, upper entity.HSV) (image.Image, error) {
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer src.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(src, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	defer mask.Close()
	lb := gocv.NewScalar(float64(lower.H), float64(lower.S), float64(lower.V), 0)
	ub := gocv.NewScalar(float64(upper.H), float64(upper.S), float64(upper.V), 0)
	gocv.InRangeWithScalar(hsv, lb, ub, &mask)

	return mask.ToImage()
}

// LargestContours возвращает индексы внешних контуров маски по убыванию площади
func (p *Processor) LargestContours(mask image.Image, areaThreshold float64, n int) ([]int, error) {
	bin, err := toBinary(mask)
	if err != nil {
		return nil, err
	}
	defer bin.Close()

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	areas := make([]float64, contours.Size())
	for i := range areas {
		areas[i] = gocv.ContourArea(contours.At(i))
	}
	return RankAreas(areas, areaThreshold, n), nil
}

// IsStraightLine делит самый большой контур маски пополам по короткой стороне
// и сравнивает углы минимальных прямоугольников половин.
func (p *Processor) IsStraightLine(mask image.Image, threshold float64) (bool, error) {
	bin, err := toBinary(mask)
	if err != nil {
		return false, err
	}
	defer bin.Close()

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	idx := -1
	best := 0.0
	for i := 0; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); idx < 0 || area > best {
			idx, best = i, area
		}
	}
	if idx < 0 {
		return false, errors.New("mask has no contours")
	}

	rect := gocv.BoundingRect(contours.At(idx)).Add(mask.Bounds().Min)
	region := imaging.Crop(mask, rect)
	first, second, err := SliceHalf(region, entity.SliceShortest)
	if err != nil {
		return false, err
	}

	a1, err := halfAngle(first)
	if err != nil {
		return false, err
	}
	a2, err := halfAngle(second)
	if err != nil {
		return false, err
	}
	return AnglesAgree(a1, a2, threshold), nil
}

func halfAngle(half image.Image) (float64, error) {
	bin, err := toBinary(half)
	if err != nil {
		return 0, err
	}
	defer bin.Close()

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	if contours.Size() == 0 {
		return 0, errors.New("half of contour is empty")
	}
	return gocv.MinAreaRect(contours.At(0)).Angle, nil
}

// toBinary переводит маску в одноканальную бинарную матрицу
func toBinary(img image.Image) (gocv.Mat, error) {
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert image: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	bin := gocv.NewMat()
	gocv.Threshold(gray, &bin, 0, 255, gocv.ThresholdBinary)
	return bin, nil
}

var _ port.ImageProcessor = (*Processor)(nil)
