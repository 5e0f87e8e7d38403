//go:build gocv
// +build gocv

package surface

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"cvtune/internal/domain/port"
)

const keyEsc = 27

type highguiBar struct {
	tb       *gocv.Trackbar
	last     int
	onChange func(int)
}

// HighGUISurface поверхность на трекбарах OpenCV highgui.
//
// gocv не даёт колбэков трекбаров, поэтому перетаскивания ловятся опросом
// в Run, а программные изменения сообщаются обработчику сразу.
type HighGUISurface struct {
	windows map[string]*gocv.Window
	first   *gocv.Window
	bars    map[string]*highguiBar
	order   []string
	tasks   *taskQueue
	log     zerolog.Logger
}

// NewHighGUISurface создаёт поверхность highgui
func NewHighGUISurface(log zerolog.Logger) *HighGUISurface {
	return &HighGUISurface{
		windows: make(map[string]*gocv.Window),
		bars:    make(map[string]*highguiBar),
		tasks:   newTaskQueue(16),
		log:     log.With().Str("component", "highgui").Logger(),
	}
}

// CreateWindow открывает окно highgui
func (s *HighGUISurface) CreateWindow(name string) error {
	if _, ok := s.windows[name]; ok {
		return nil
	}
	w := gocv.NewWindow(name)
	s.windows[name] = w
	if s.first == nil {
		s.first = w
	}
	return nil
}

// CreateSlider создаёт трекбар и выставляет начальную позицию
func (s *HighGUISurface) CreateSlider(name, window string, initial, max int, onChange func(int)) error {
	w, ok := s.windows[window]
	if !ok {
		return fmt.Errorf("window %q is not created", window)
	}
	tb := w.CreateTrackbar(name, max)
	tb.SetPos(initial)

	k := key(name, window)
	s.bars[k] = &highguiBar{tb: tb, last: tb.GetPos(), onChange: onChange}
	s.order = append(s.order, k)
	s.notify(s.bars[k])
	return nil
}

// Position возвращает позицию трекбара
func (s *HighGUISurface) Position(name, window string) int {
	if bar, ok := s.bars[key(name, window)]; ok {
		return bar.tb.GetPos()
	}
	return 0
}

// SetPosition меняет позицию трекбара
func (s *HighGUISurface) SetPosition(name, window string, value int) {
	if bar, ok := s.bars[key(name, window)]; ok {
		bar.tb.SetPos(value)
		s.notify(bar)
	}
}

// SetMinimum меняет минимум трекбара
func (s *HighGUISurface) SetMinimum(name, window string, value int) {
	if bar, ok := s.bars[key(name, window)]; ok {
		bar.tb.SetMin(value)
		s.notify(bar)
	}
}

// SetMaximum меняет максимум трекбара
func (s *HighGUISurface) SetMaximum(name, window string, value int) {
	if bar, ok := s.bars[key(name, window)]; ok {
		bar.tb.SetMax(value)
		s.notify(bar)
	}
}

func (s *HighGUISurface) notify(bar *highguiBar) {
	bar.last = bar.tb.GetPos()
	if bar.onChange != nil {
		bar.onChange(bar.last)
	}
}

// Poll сообщает обработчикам о трекбарах, сдвинутых пользователем
func (s *HighGUISurface) Poll() {
	for _, k := range s.order {
		bar := s.bars[k]
		if pos := bar.tb.GetPos(); pos != bar.last {
			s.notify(bar)
		}
	}
}

// Show показывает изображение в окне
func (s *HighGUISurface) Show(window string, img image.Image) error {
	w, ok := s.windows[window]
	if !ok {
		return fmt.Errorf("window %q is not created", window)
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	w.IMShow(mat)
	return nil
}

// Do ставит fn в очередь цикла Run и ждёт выполнения.
// После выхода из Run fn не выполняется.
func (s *HighGUISurface) Do(fn func()) {
	s.tasks.Do(fn)
}

// Run крутит цикл событий highgui до отмены контекста или нажатия Esc.
// frame вызывается на каждом кадре после опроса трекбаров.
func (s *HighGUISurface) Run(ctx context.Context, frame func() error) error {
	if s.first == nil {
		return errors.New("no window to run")
	}
	defer s.tasks.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s.tasks.drain()
		s.Poll()
		if frame != nil {
			if err := frame(); err != nil {
				s.log.Error().Err(err).Msg("frame failed")
			}
		}
		if s.first.WaitKey(30) == keyEsc {
			return nil
		}
	}
}

// Close закрывает все окна
func (s *HighGUISurface) Close() error {
	var errs []error
	for _, w := range s.windows {
		errs = append(errs, w.Close())
	}
	return errors.Join(errs...)
}

var (
	_ port.Surface    = (*HighGUISurface)(nil)
	_ port.Dispatcher = (*HighGUISurface)(nil)
)
