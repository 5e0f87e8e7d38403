package vision

import (
	"fmt"
	"math"
	"sort"

	"cvtune/internal/domain/entity"
)

// RankAreas возвращает индексы n наибольших площадей не меньше threshold,
// все подходящие при n <= 0 и nil, если подходящих нет.
// При равных площадях раньше идёт меньший индекс.
func RankAreas(areas []float64, threshold float64, n int) []int {
	var idx []int
	for i, a := range areas {
		if a >= threshold {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return areas[idx[i]] > areas[idx[j]]
	})
	if n > 0 && n < len(idx) {
		idx = idx[:n]
	}
	return idx
}

// AveragePoint возвращает центр масс точек
func AveragePoint(points ...entity.Point) (entity.Point, error) {
	if len(points) == 0 {
		return entity.Point{}, fmt.Errorf("%w: no points to average", entity.ErrInvalidArgument)
	}
	var sum entity.Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return entity.Point{X: sum.X / n, Y: sum.Y / n}, nil
}

// AnglesAgree сравнивает углы поворота двух половин контура.
// Углы около 0 и около 90 градусов считаются одной ориентацией.
func AnglesAgree(a1, a2, threshold float64) bool {
	if a1 <= threshold && a2 >= 90-threshold {
		return 90-a2+a1 <= threshold
	}
	if a2 <= threshold && a1 >= 90-threshold {
		return 90-a1+a2 <= threshold
	}
	return math.Abs(a1-a2) <= threshold
}

func validateSmoothing(p entity.Smoothing) error {
	if p.KernelSize <= 0 {
		return fmt.Errorf("%w: kernel size must be positive, got %d", entity.ErrInvalidArgument, p.KernelSize)
	}
	switch p.Kind {
	case entity.SmoothGaussian, entity.SmoothMedian:
		if p.KernelSize%2 == 0 {
			return fmt.Errorf("%w: %s kernel size must be odd, got %d", entity.ErrInvalidArgument, p.Kind, p.KernelSize)
		}
	case entity.SmoothBilateral, entity.SmoothBox, entity.SmoothConvolution:
	default:
		return fmt.Errorf("%w: unknown smoothing %q", entity.ErrInvalidArgument, p.Kind)
	}
	return nil
}

func validateMorph(steps []entity.MorphStep) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no morphology steps", entity.ErrInvalidArgument)
	}
	for i, s := range steps {
		if s.KernelSize <= 0 {
			return fmt.Errorf("%w: step %d kernel size must be positive, got %d", entity.ErrInvalidArgument, i, s.KernelSize)
		}
	}
	return nil
}

func iterations(s entity.MorphStep) int {
	return max(1, s.Iterations)
}
