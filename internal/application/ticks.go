package app

import (
	"fmt"

	"cvtune/internal/domain/entity"
)

// RestrictToTicks оставляет ползунку только заданные позиции.
//
// Если текущее значение не тик, ползунок встаёт на наименьший тик. Диапазон
// поверхности сужается до [первый тик, последний тик]. Повторно ограничить
// тот же ползунок нельзя.
func (b *Board) RestrictToTicks(subject string, ticks ...int) error {
	s, ok := b.sliders[subject]
	if !ok {
		return fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, subject)
	}
	if _, exists := b.ticks[subject]; exists {
		return fmt.Errorf("%w: %w: slider %q already has ticks", entity.ErrInvalidArgument, entity.ErrConflict, subject)
	}
	if b.inLimit(subject) {
		return fmt.Errorf("%w: %w: slider %q is in a limit and can't get ticks", entity.ErrInvalidArgument, entity.ErrConflict, subject)
	}
	if len(ticks) == 0 {
		return fmt.Errorf("%w: no ticks for %q", entity.ErrInvalidArgument, subject)
	}

	ts := entity.NewTickSet(ticks...)
	if ts.First() < s.Min || ts.Last() > s.Max {
		return fmt.Errorf("%w: ticks for %q must lie in [%d, %d]", entity.ErrInvalidArgument, subject, s.Min, s.Max)
	}

	b.ticks[subject] = ts
	b.tickOrder = append(b.tickOrder, subject)

	if ts.Contains(s.Value) {
		ts.LastSnapped = s.Value
	} else {
		ts.LastSnapped = ts.First()
		b.write(subject, ts.First())
	}

	// Минимум поднимаем первым: верхняя граница проверяется относительно него.
	if err := b.setBound(s, entity.LimitGreater, ts.First()-1); err != nil {
		return err
	}
	return b.setBound(s, entity.LimitLess, ts.Last()+1)
}

// Ticks возвращает тики ползунка
func (b *Board) Ticks(name string) ([]int, bool) {
	ts, ok := b.ticks[name]
	if !ok {
		return nil, false
	}
	return append([]int(nil), ts.Ticks...), true
}

// snapTicks сдвигает каждый ползунок с тиками на один соседний тик
// в сторону движения, сколько бы позиций ни прошёл указатель.
func (b *Board) snapTicks() {
	for _, name := range b.tickOrder {
		ts := b.ticks[name]
		cur := b.sliders[name].Value

		var (
			next  int
			moved bool
		)
		switch {
		case cur > ts.LastSnapped:
			next, moved = ts.Next()
		case cur < ts.LastSnapped:
			next, moved = ts.Prev()
		default:
			continue
		}
		if !moved {
			continue
		}

		b.log.Debug().Str("slider", name).Int("raw", cur).Int("tick", next).Msg("tick snap")
		ts.LastSnapped = next
		b.write(name, next)
	}
}
