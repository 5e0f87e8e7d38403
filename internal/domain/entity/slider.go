package entity

// Slider представляет один именованный ползунок на доске
type Slider struct {
	Name       string // уникальное имя ползунка
	Value      int    // текущая позиция
	MaxTick    int    // верхняя граница, задаётся при создании
	ResetValue int    // значение для сброса
	Min        int    // текущий минимум поверхности
	Max        int    // текущий максимум поверхности
}

// NewSlider создаёт ползунок с начальным значением и полным диапазоном
func NewSlider(name string, initial, maxTick int) *Slider {
	return &Slider{
		Name:       name,
		Value:      initial,
		MaxTick:    maxTick,
		ResetValue: initial,
		Min:        0,
		Max:        maxTick,
	}
}

// Clamp прижимает значение к текущему диапазону поверхности
func (s *Slider) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// InRange сообщает, лежит ли значение в [0, MaxTick]
func (s *Slider) InRange(v int) bool {
	return v >= 0 && v <= s.MaxTick
}

// Reading результат чтения ползунка или группы.
type Reading struct {
	Name   string
	Values []int // одно значение для ползунка, кортеж для группы
	Group  bool
}

// Int возвращает значение ползунка (первый элемент для группы)
func (r Reading) Int() int {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[0]
}
