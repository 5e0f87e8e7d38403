package app

import (
	"fmt"

	"cvtune/internal/domain/entity"
)

// assignment одна пара ползунок/значение после разбора запроса
type assignment struct {
	slider string
	value  int
}

// SetValue двигает ползунки. Адресат: ползунок, группа или список имён;
// значение: скаляр (раздаётся всем) или список (по одному на имя/участника).
// Запрос целиком проверяется до первой записи в поверхность.
func (b *Board) SetValue(target entity.Target, value entity.Value) error {
	plan, err := b.resolve(target, value)
	if err != nil {
		return err
	}
	for _, a := range plan {
		b.write(a.slider, a.value)
	}
	return nil
}

// SetResetValue меняет значения сброса по тем же правилам, что и SetValue.
// Поверхность не трогается.
func (b *Board) SetResetValue(target entity.Target, value entity.Value) error {
	plan, err := b.resolve(target, value)
	if err != nil {
		return err
	}
	for _, a := range plan {
		b.sliders[a.slider].ResetValue = a.value
	}
	return nil
}

// Reset возвращает каждый ползунок к значению сброса в порядке объявления.
func (b *Board) Reset() {
	for _, name := range b.order {
		b.write(name, b.sliders[name].ResetValue)
	}
	b.log.Debug().Int("sliders", len(b.order)).Msg("board reset")
}

func (b *Board) resolve(target entity.Target, value entity.Value) ([]assignment, error) {
	if !target.IsList() {
		return b.resolveName(target.Single(), value)
	}

	names := target.Items()
	if value.IsList() && value.Len() != len(names) {
		return nil, fmt.Errorf("%w: inconsistent amount of input data (%d names, %d values)",
			entity.ErrInvalidArgument, len(names), value.Len())
	}

	var plan []assignment
	for i, name := range names {
		v := value
		if value.IsList() {
			v = value.Items()[i]
		}
		part, err := b.resolveName(name, v)
		if err != nil {
			return nil, err
		}
		plan = append(plan, part...)
	}
	return plan, nil
}

func (b *Board) resolveName(name string, value entity.Value) ([]assignment, error) {
	if members, ok := b.groups[name]; ok {
		if !value.IsList() {
			plan := make([]assignment, 0, len(members))
			for _, m := range members {
				a, err := b.checked(m, value.Int())
				if err != nil {
					return nil, err
				}
				plan = append(plan, a)
			}
			return plan, nil
		}

		if value.Len() != len(members) {
			return nil, fmt.Errorf("%w: group %q has %d members, got %d values",
				entity.ErrInvalidArgument, name, len(members), value.Len())
		}
		plan := make([]assignment, 0, len(members))
		for i, m := range members {
			item := value.Items()[i]
			if item.IsList() {
				return nil, fmt.Errorf("%w: value for group member %q should be int, got %s", entity.ErrType, m, item)
			}
			a, err := b.checked(m, item.Int())
			if err != nil {
				return nil, err
			}
			plan = append(plan, a)
		}
		return plan, nil
	}

	if b.isSlider(name) {
		if value.IsList() {
			return nil, fmt.Errorf("%w: value for slider %q should be int, got %s", entity.ErrType, name, value)
		}
		a, err := b.checked(name, value.Int())
		if err != nil {
			return nil, err
		}
		return []assignment{a}, nil
	}

	return nil, fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, name)
}

func (b *Board) checked(name string, v int) (assignment, error) {
	if s := b.sliders[name]; !s.InRange(v) {
		return assignment{}, fmt.Errorf("%w: value %d for %q is outside [0, %d]", entity.ErrInvalidArgument, v, name, s.MaxTick)
	}
	return assignment{slider: name, value: v}, nil
}
