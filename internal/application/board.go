package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// Board владеет окном поверхности и набором ползунков.
//
// Board не безопасен для конкурентного использования: все вызовы должны идти
// из потока, который владеет поверхностью (см. TunerService).
type Board struct {
	surface port.Surface
	window  string
	log     zerolog.Logger

	order   []string
	sliders map[string]*entity.Slider

	groupOrder  []string
	groups      map[string][]string
	groupValues map[string][]int

	limitOrder []string
	limits     map[string]entity.Limit

	tickOrder []string
	ticks     map[string]*entity.TickSet

	armed bool
}

// Option настраивает Board
type Option func(*Board)

// WithLogger задаёт логгер доски
func WithLogger(log zerolog.Logger) Option {
	return func(b *Board) {
		b.log = log.With().Str("component", "board").Logger()
	}
}

// NewSingleBoard создаёт доску с одним ползунком.
func NewSingleBoard(surface port.Surface, window, name string, initial, maxTick int, opts ...Option) (*Board, error) {
	return NewBoard(surface, window, []string{name}, []int{initial}, []int{maxTick}, opts...)
}

// NewBoard создаёт окно и по одному ползунку на каждую тройку имя/начальное значение/максимум.
func NewBoard(surface port.Surface, window string, names []string, initials, maxTicks []int, opts ...Option) (*Board, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: surface is nil", entity.ErrInvalidArgument)
	}
	if err := validateLayout(window, names, initials, maxTicks); err != nil {
		return nil, err
	}

	b := &Board{
		surface:     surface,
		window:      window,
		log:         zerolog.Nop(),
		order:       append([]string(nil), names...),
		sliders:     make(map[string]*entity.Slider, len(names)),
		groups:      make(map[string][]string),
		groupValues: make(map[string][]int),
		limits:      make(map[string]entity.Limit),
		ticks:       make(map[string]*entity.TickSet),
	}
	for _, opt := range opts {
		opt(b)
	}
	for i, name := range names {
		b.sliders[name] = entity.NewSlider(name, initials[i], maxTicks[i])
	}

	if err := b.build(); err != nil {
		return nil, err
	}

	b.log.Info().Str("window", window).Int("sliders", len(names)).Msg("board created")
	return b, nil
}

func validateLayout(window string, names []string, initials, maxTicks []int) error {
	if window == "" {
		return fmt.Errorf("%w: window name is empty", entity.ErrInvalidArgument)
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: no sliders", entity.ErrInvalidArgument)
	}
	if len(names) != len(initials) || len(names) != len(maxTicks) {
		return fmt.Errorf("%w: inconsistent amount of input data (%d names, %d values, %d counts)",
			entity.ErrInvalidArgument, len(names), len(initials), len(maxTicks))
	}

	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: slider name is empty", entity.ErrInvalidArgument)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %w: duplicate slider name %q", entity.ErrInvalidArgument, entity.ErrConflict, name)
		}
		seen[name] = struct{}{}

		if maxTicks[i] < 0 {
			return fmt.Errorf("%w: slider %q has negative max tick %d", entity.ErrInvalidArgument, name, maxTicks[i])
		}
		if initials[i] < 0 || initials[i] > maxTicks[i] {
			return fmt.Errorf("%w: slider %q initial value %d is outside [0, %d]",
				entity.ErrInvalidArgument, name, initials[i], maxTicks[i])
		}
	}
	return nil
}

// build создаёт окно и ползунки. Обработчик включается только после
// регистрации последнего ползунка: поверхность может вызвать его при создании
// каждого ползунка и увидеть недостроенную доску.
func (b *Board) build() error {
	if err := b.surface.CreateWindow(b.window); err != nil {
		return fmt.Errorf("create window %q: %w", b.window, err)
	}
	for _, name := range b.order {
		s := b.sliders[name]
		if err := b.surface.CreateSlider(name, b.window, s.Value, s.MaxTick, b.onChange); err != nil {
			return fmt.Errorf("create slider %q: %w", name, err)
		}
	}
	b.armed = true
	return nil
}

// onChange общий обработчик изменений поверхности. Позиция из аргумента
// не используется: перечитываются все ползунки, затем пересчитываются группы.
// Обработчик ничего не пишет в поверхность.
func (b *Board) onChange(int) {
	if !b.armed {
		return
	}
	for _, name := range b.order {
		b.sliders[name].Value = b.surface.Position(name, b.window)
	}
	for _, group := range b.groupOrder {
		members := b.groups[group]
		values := make([]int, len(members))
		for i, member := range members {
			values[i] = b.sliders[member].Value
		}
		b.groupValues[group] = values
	}
}

// Window возвращает имя окна
func (b *Board) Window() string { return b.window }

// Names возвращает имена ползунков в порядке объявления
func (b *Board) Names() []string { return append([]string(nil), b.order...) }

// Groups возвращает имена групп в порядке создания
func (b *Board) Groups() []string { return append([]string(nil), b.groupOrder...) }

// Slider возвращает копию состояния ползунка без применения ограничений
func (b *Board) Slider(name string) (entity.Slider, bool) {
	s, ok := b.sliders[name]
	if !ok {
		return entity.Slider{}, false
	}
	return *s, true
}

func (b *Board) isSlider(name string) bool {
	_, ok := b.sliders[name]
	return ok
}

func (b *Board) isGroup(name string) bool {
	_, ok := b.groups[name]
	return ok
}

// write пишет позицию в поверхность; поверхность синхронно вызывает onChange.
// Запись ровно в тик становится точкой отсчёта для следующего шага по тикам.
func (b *Board) write(name string, value int) {
	value = b.sliders[name].Clamp(value)
	if ts, ok := b.ticks[name]; ok && ts.Contains(value) {
		ts.LastSnapped = value
	}
	b.surface.SetPosition(name, b.window, value)
}

// DefineGroup объединяет ползунки в группу для совместного чтения.
func (b *Board) DefineGroup(group string, members ...string) error {
	if len(b.order) < 2 {
		return fmt.Errorf("%w: only one slider, groups are not supported", entity.ErrInvalidArgument)
	}
	if group == "" {
		return fmt.Errorf("%w: group name is empty", entity.ErrInvalidArgument)
	}
	if len(members) < 2 {
		return fmt.Errorf("%w: group %q needs at least 2 members", entity.ErrInvalidArgument, group)
	}

	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if !b.isSlider(m) {
			return fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, m)
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: member %q repeats in group %q", entity.ErrInvalidArgument, m, group)
		}
		seen[m] = struct{}{}
	}

	if b.isGroup(group) {
		return fmt.Errorf("%w: %w: can't create group %q again", entity.ErrInvalidArgument, entity.ErrConflict, group)
	}
	if b.isSlider(group) {
		return fmt.Errorf("%w: %w: group name %q conflicts with slider name", entity.ErrInvalidArgument, entity.ErrConflict, group)
	}

	b.groups[group] = append([]string(nil), members...)
	b.groupOrder = append(b.groupOrder, group)
	b.onChange(0)
	return nil
}

// Value возвращает значение ползунка после применения тиков и ограничений.
func (b *Board) Value(name string) (int, error) {
	if b.isGroup(name) {
		return 0, fmt.Errorf("%w: %q is a group, use GroupValues", entity.ErrType, name)
	}
	r, err := b.Read(name)
	if err != nil {
		return 0, err
	}
	return r.Int(), nil
}

// GroupValues возвращает значения участников группы в объявленном порядке.
func (b *Board) GroupValues(name string) ([]int, error) {
	if b.isSlider(name) {
		return nil, fmt.Errorf("%w: %q is a slider, use Value", entity.ErrType, name)
	}
	r, err := b.Read(name)
	if err != nil {
		return nil, err
	}
	return r.Values, nil
}

// Read читает ползунок или группу. Перед чтением применяются тики, затем
// ограничения для всех ползунков доски.
func (b *Board) Read(name string) (entity.Reading, error) {
	if !b.isSlider(name) && !b.isGroup(name) {
		return entity.Reading{}, fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, name)
	}

	b.snapTicks()
	b.enforceLimits()

	if s, ok := b.sliders[name]; ok {
		return entity.Reading{Name: name, Values: []int{s.Value}}, nil
	}
	return entity.Reading{
		Name:   name,
		Values: append([]int(nil), b.groupValues[name]...),
		Group:  true,
	}, nil
}
