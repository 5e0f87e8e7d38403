package app

import (
	"fmt"

	"cvtune/internal/domain/entity"
)

// SetLimit ограничивает ползунок subject.
//
// Без anchor ограничение абсолютное и сразу уходит в поверхность:
// LimitGreater поднимает минимум до gap+1, LimitLess опускает максимум до gap-1.
// С anchor сохраняется относительное ограничение (заменяя прежнее для subject),
// которое проверяется при каждом чтении.
func (b *Board) SetLimit(subject string, mode entity.LimitMode, gap int, anchor string) error {
	s, ok := b.sliders[subject]
	if !ok {
		return fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, subject)
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown limit mode %d", entity.ErrInvalidArgument, int(mode))
	}

	if _, ticked := b.ticks[subject]; ticked {
		return fmt.Errorf("%w: %w: slider %q has ticks and can't be limited", entity.ErrInvalidArgument, entity.ErrConflict, subject)
	}

	if anchor == "" {
		return b.setBound(s, mode, gap)
	}

	if !b.isSlider(anchor) {
		return fmt.Errorf("%w: the slider to compare %q does not exist", entity.ErrInvalidArgument, anchor)
	}
	if anchor == subject {
		return fmt.Errorf("%w: slider %q can't be limited by itself", entity.ErrInvalidArgument, subject)
	}
	if _, ticked := b.ticks[anchor]; ticked {
		return fmt.Errorf("%w: %w: slider %q has ticks and can't anchor a limit", entity.ErrInvalidArgument, entity.ErrConflict, anchor)
	}
	if b.anchoredBy(anchor, subject) {
		return fmt.Errorf("%w: %w: limit %s -> %s closes an anchor cycle",
			entity.ErrInvalidArgument, entity.ErrConflict, subject, anchor)
	}

	if _, exists := b.limits[subject]; !exists {
		b.limitOrder = append(b.limitOrder, subject)
	}
	b.limits[subject] = entity.Limit{Subject: subject, Anchor: anchor, Mode: mode, Gap: gap}
	return nil
}

// inLimit сообщает, участвует ли ползунок в относительном ограничении
func (b *Board) inLimit(name string) bool {
	for _, l := range b.limits {
		if l.Subject == name || l.Anchor == name {
			return true
		}
	}
	return false
}

// anchoredBy сообщает, ведёт ли цепочка опорных ползунков от start к target.
func (b *Board) anchoredBy(start, target string) bool {
	seen := make(map[string]struct{})
	for cur := start; ; {
		if cur == target {
			return true
		}
		if _, ok := seen[cur]; ok {
			return false
		}
		seen[cur] = struct{}{}

		l, ok := b.limits[cur]
		if !ok {
			return false
		}
		cur = l.Anchor
	}
}

func (b *Board) setBound(s *entity.Slider, mode entity.LimitMode, gap int) error {
	switch mode {
	case entity.LimitGreater:
		lower := gap + 1
		if lower < 0 || lower > s.Max {
			return fmt.Errorf("%w: minimum %d for %q is outside [0, %d]", entity.ErrInvalidArgument, lower, s.Name, s.Max)
		}
		s.Min = lower
		b.surface.SetMinimum(s.Name, b.window, lower)
	case entity.LimitLess:
		upper := gap - 1
		if upper < s.Min || upper > s.MaxTick {
			return fmt.Errorf("%w: maximum %d for %q is outside [%d, %d]", entity.ErrInvalidArgument, upper, s.Name, s.Min, s.MaxTick)
		}
		s.Max = upper
		b.surface.SetMaximum(s.Name, b.window, upper)
	}
	return nil
}

// Limits возвращает относительные ограничения в порядке задания
func (b *Board) Limits() []entity.Limit {
	out := make([]entity.Limit, 0, len(b.limitOrder))
	for _, subject := range b.limitOrder {
		out = append(out, b.limits[subject])
	}
	return out
}

// enforceLimits возвращает нарушенные пары к минимальному зазору.
// Если ползунку не хватает хода до нужного значения, он встаёт на свою
// границу, а уступает опорный ползунок.
func (b *Board) enforceLimits() {
	for _, subject := range b.limitOrder {
		l := b.limits[subject]
		s, a := b.sliders[l.Subject], b.sliders[l.Anchor]
		if !l.Violated(s.Value, a.Value) {
			continue
		}

		switch l.Mode {
		case entity.LimitGreater:
			if want := a.Value + l.Gap; s.Value < s.Max && want <= s.Max {
				b.correct(s.Name, want, l)
			} else {
				if s.Value != s.Max {
					b.correct(s.Name, s.Max, l)
				}
				b.correct(a.Name, s.Value-l.Gap, l)
			}
		case entity.LimitLess:
			if want := a.Value - l.Gap; s.Value > s.Min && want >= s.Min {
				b.correct(s.Name, want, l)
			} else {
				if s.Value != s.Min {
					b.correct(s.Name, s.Min, l)
				}
				b.correct(a.Name, s.Value+l.Gap, l)
			}
		}
	}
}

func (b *Board) correct(name string, value int, l entity.Limit) {
	b.log.Debug().
		Str("slider", name).
		Int("from", b.sliders[name].Value).
		Int("to", value).
		Str("limit", fmt.Sprintf("%s %s %s gap %d", l.Subject, l.Mode, l.Anchor, l.Gap)).
		Msg("limit correction")
	b.write(name, value)
}
