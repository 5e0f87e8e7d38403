//go:build fyne
// +build fyne

package surface

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cvtune/internal/domain/port"
)

type fyneSlider struct {
	name     string
	widget   *widget.Slider
	label    *widget.Label
	onChange func(int)
}

// FyneSurface поверхность на ползунках fyne
type FyneSurface struct {
	app     fyne.App
	windows map[string]fyne.Window
	boxes   map[string]*fyne.Container
	order   []string
	sliders map[string]*fyneSlider

	// quiet глушит OnChanged на время программной записи
	quiet bool
}

// NewFyneSurface создаёт приложение fyne
func NewFyneSurface(appID string) *FyneSurface {
	return &FyneSurface{
		app:     app.NewWithID(appID),
		windows: make(map[string]fyne.Window),
		boxes:   make(map[string]*fyne.Container),
		sliders: make(map[string]*fyneSlider),
	}
}

// CreateWindow создаёт окно с вертикальной колонкой ползунков
func (s *FyneSurface) CreateWindow(name string) error {
	if _, ok := s.windows[name]; ok {
		return nil
	}
	w := s.app.NewWindow(name)
	box := container.NewVBox()
	w.SetContent(container.NewVScroll(box))
	w.Resize(fyne.NewSize(420, 360))

	s.windows[name] = w
	s.boxes[name] = box
	s.order = append(s.order, name)
	return nil
}

// CreateSlider добавляет ползунок с подписью
func (s *FyneSurface) CreateSlider(name, window string, initial, max int, onChange func(int)) error {
	box, ok := s.boxes[window]
	if !ok {
		return fmt.Errorf("window %q is not created", window)
	}

	sl := &fyneSlider{
		name:     name,
		widget:   widget.NewSlider(0, float64(max)),
		label:    widget.NewLabel(""),
		onChange: onChange,
	}
	sl.widget.Step = 1
	sl.widget.Value = float64(clamp(initial, 0, max))
	sl.widget.OnChanged = func(float64) {
		if s.quiet {
			return
		}
		s.notify(sl)
	}

	s.sliders[key(name, window)] = sl
	box.Add(container.NewVBox(sl.label, sl.widget))
	s.notify(sl)
	return nil
}

// Position возвращает позицию ползунка
func (s *FyneSurface) Position(name, window string) int {
	if sl, ok := s.sliders[key(name, window)]; ok {
		return int(sl.widget.Value)
	}
	return 0
}

// SetPosition меняет позицию ползунка
func (s *FyneSurface) SetPosition(name, window string, value int) {
	if sl, ok := s.sliders[key(name, window)]; ok {
		s.set(sl, value)
	}
}

// SetMinimum меняет минимум ползунка
func (s *FyneSurface) SetMinimum(name, window string, value int) {
	if sl, ok := s.sliders[key(name, window)]; ok {
		sl.widget.Min = float64(value)
		s.set(sl, int(sl.widget.Value))
	}
}

// SetMaximum меняет максимум ползунка
func (s *FyneSurface) SetMaximum(name, window string, value int) {
	if sl, ok := s.sliders[key(name, window)]; ok {
		sl.widget.Max = float64(value)
		s.set(sl, int(sl.widget.Value))
	}
}

func (s *FyneSurface) set(sl *fyneSlider, value int) {
	value = clamp(value, int(sl.widget.Min), int(sl.widget.Max))
	s.quiet = true
	sl.widget.SetValue(float64(value))
	s.quiet = false
	sl.widget.Refresh()
	s.notify(sl)
}

func (s *FyneSurface) notify(sl *fyneSlider) {
	pos := int(sl.widget.Value)
	sl.label.SetText(fmt.Sprintf("%s: %d", sl.name, pos))
	if sl.onChange != nil {
		sl.onChange(pos)
	}
}

// Do выполняет fn в главном потоке fyne и ждёт завершения
func (s *FyneSurface) Do(fn func()) {
	fyne.DoAndWait(fn)
}

// Run показывает все окна и запускает цикл событий fyne
func (s *FyneSurface) Run() error {
	if len(s.order) == 0 {
		return errors.New("no window to run")
	}
	for _, name := range s.order[1:] {
		s.windows[name].Show()
	}
	s.windows[s.order[0]].ShowAndRun()
	return nil
}

var (
	_ port.Surface    = (*FyneSurface)(nil)
	_ port.Dispatcher = (*FyneSurface)(nil)
)
