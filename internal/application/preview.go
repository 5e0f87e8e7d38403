package app

import (
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"cvtune/config"
	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// ReadFunc читает ползунок или группу
type ReadFunc func(name string) (entity.Reading, error)

// PreviewService прогоняет изображение через обработку с параметрами из ползунков.
type PreviewService struct {
	processor port.ImageProcessor
	spec      config.PreviewPreset
	log       zerolog.Logger
}

// PreviewOutput результат предпросмотра
type PreviewOutput struct {
	Image    image.Image // маска, если задан диапазон HSV, иначе сглаженное изображение
	Contours []int       // индексы найденных контуров по убыванию площади
	Straight *bool       // результат проверки прямой, nil если не проверялась
}

// NewPreviewService создаёт сервис предпросмотра
func NewPreviewService(processor port.ImageProcessor, spec config.PreviewPreset, log zerolog.Logger) *PreviewService {
	return &PreviewService{
		processor: processor,
		spec:      spec,
		log:       log.With().Str("component", "preview").Logger(),
	}
}

// Render обрабатывает изображение: Гаусс → маска HSV → открытие → контуры → проверка прямой.
// Шаги без настроенного ползунка пропускаются.
func (s *PreviewService) Render(img image.Image, read ReadFunc) (*PreviewOutput, error) {
	if s.processor == nil {
		return nil, errors.New("image processor is not configured")
	}

	cur := img
	if s.spec.Blur != "" {
		k, err := readInt(read, s.spec.Blur)
		if err != nil {
			return nil, err
		}
		if k > 0 {
			if k%2 == 0 {
				k++
			}
			if cur, err = s.processor.Smooth(cur, entity.Smoothing{Kind: entity.SmoothGaussian, KernelSize: k}); err != nil {
				return nil, fmt.Errorf("smooth: %w", err)
			}
		}
	}

	out := &PreviewOutput{Image: cur}
	if s.spec.Lower == "" || s.spec.Upper == "" {
		return out, nil
	}

	lower, err := readHSV(read, s.spec.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := readHSV(read, s.spec.Upper)
	if err != nil {
		return nil, err
	}
	mask, err := s.processor.HSVMask(cur, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("hsv mask: %w", err)
	}

	if s.spec.Morph != "" {
		k, err := readInt(read, s.spec.Morph)
		if err != nil {
			return nil, err
		}
		if k > 0 {
			step := entity.MorphStep{Op: entity.MorphOpen, KernelSize: k, Shape: entity.KernelEllipse}
			if mask, err = s.processor.Morph(mask, step); err != nil {
				return nil, fmt.Errorf("morph: %w", err)
			}
		}
	}
	out.Image = mask

	if s.spec.MinArea == "" {
		return out, nil
	}
	minArea, err := readInt(read, s.spec.MinArea)
	if err != nil {
		return nil, err
	}
	if out.Contours, err = s.processor.LargestContours(mask, float64(minArea), s.spec.Count); err != nil {
		return nil, fmt.Errorf("contours: %w", err)
	}

	if s.spec.Line > 0 && len(out.Contours) > 0 {
		straight, err := s.processor.IsStraightLine(mask, s.spec.Line)
		if err != nil {
			return nil, fmt.Errorf("line check: %w", err)
		}
		out.Straight = &straight
	}

	s.log.Debug().Int("contours", len(out.Contours)).Msg("preview rendered")
	return out, nil
}

func readInt(read ReadFunc, name string) (int, error) {
	r, err := read(name)
	if err != nil {
		return 0, err
	}
	if r.Group {
		return 0, fmt.Errorf("%w: %q is a group, expected a slider", entity.ErrType, name)
	}
	return r.Int(), nil
}

func readHSV(read ReadFunc, name string) (entity.HSV, error) {
	r, err := read(name)
	if err != nil {
		return entity.HSV{}, err
	}
	if len(r.Values) != 3 {
		return entity.HSV{}, fmt.Errorf("%w: %q should hold H, S, V, got %d values", entity.ErrType, name, len(r.Values))
	}
	return entity.HSV{H: r.Values[0], S: r.Values[1], V: r.Values[2]}, nil
}
