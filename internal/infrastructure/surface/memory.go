package surface

import (
	"fmt"
	"sync"

	"cvtune/internal/domain/port"
)

type memorySlider struct {
	pos, min, max int
	onChange      func(int)
}

// MemorySurface in-memory поверхность: для тестов и работы без GUI
type MemorySurface struct {
	mu      sync.RWMutex
	windows map[string]struct{}
	sliders map[string]*memorySlider
	writes  int

	loop sync.Mutex
}

// NewMemorySurface создаёт пустую in-memory поверхность
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		windows: make(map[string]struct{}),
		sliders: make(map[string]*memorySlider),
	}
}

func key(name, window string) string {
	return window + "\x00" + name
}

// CreateWindow регистрирует окно
func (s *MemorySurface) CreateWindow(name string) error {
	s.mu.Lock()
	s.windows[name] = struct{}{}
	s.mu.Unlock()
	return nil
}

// CreateSlider создаёт ползунок и, как highgui, сразу вызывает обработчик
func (s *MemorySurface) CreateSlider(name, window string, initial, max int, onChange func(int)) error {
	s.mu.Lock()
	if _, ok := s.windows[window]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("window %q is not created", window)
	}
	sl := &memorySlider{pos: initial, min: 0, max: max, onChange: onChange}
	sl.pos = clamp(sl.pos, sl.min, sl.max)
	s.sliders[key(name, window)] = sl
	s.mu.Unlock()

	if onChange != nil {
		onChange(sl.pos)
	}
	return nil
}

// Position возвращает позицию ползунка (0 для неизвестного)
func (s *MemorySurface) Position(name, window string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sl, ok := s.sliders[key(name, window)]; ok {
		return sl.pos
	}
	return 0
}

// SetPosition меняет позицию и синхронно вызывает обработчик
func (s *MemorySurface) SetPosition(name, window string, value int) {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()

	s.move(name, window, func(sl *memorySlider) { sl.pos = value })
}

// Drag имитирует перетаскивание ползунка пользователем
func (s *MemorySurface) Drag(name, window string, value int) {
	s.move(name, window, func(sl *memorySlider) { sl.pos = value })
}

// SetMinimum меняет нижнюю границу
func (s *MemorySurface) SetMinimum(name, window string, value int) {
	s.move(name, window, func(sl *memorySlider) { sl.min = value })
}

// SetMaximum меняет верхнюю границу
func (s *MemorySurface) SetMaximum(name, window string, value int) {
	s.move(name, window, func(sl *memorySlider) { sl.max = value })
}

// move применяет изменение под блокировкой, а обработчик вызывает уже без неё:
// обработчик сам читает позиции.
func (s *MemorySurface) move(name, window string, change func(*memorySlider)) {
	s.mu.Lock()
	sl, ok := s.sliders[key(name, window)]
	if !ok {
		s.mu.Unlock()
		return
	}
	change(sl)
	sl.pos = clamp(sl.pos, sl.min, sl.max)
	pos, onChange := sl.pos, sl.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(pos)
	}
}

// Bounds возвращает текущие границы ползунка
func (s *MemorySurface) Bounds(name, window string) (min, max int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.sliders[key(name, window)]
	if !ok {
		return 0, 0, false
	}
	return sl.min, sl.max, true
}

// HasWindow сообщает, создано ли окно
func (s *MemorySurface) HasWindow(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.windows[name]
	return ok
}

// SliderCount возвращает число созданных ползунков
func (s *MemorySurface) SliderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sliders)
}

// Writes возвращает число вызовов SetPosition
func (s *MemorySurface) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Do выполняет fn, по одному вызову за раз
func (s *MemorySurface) Do(fn func()) {
	s.loop.Lock()
	defer s.loop.Unlock()
	fn()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Проверка реализации интерфейсов
var (
	_ port.Surface    = (*MemorySurface)(nil)
	_ port.Dispatcher = (*MemorySurface)(nil)
)
