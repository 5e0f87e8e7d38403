//go:build !gocv
// +build !gocv

package surface

import (
	"context"
	"errors"
	"image"

	"github.com/rs/zerolog"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

// HighGUISurface заглушка поверхности highgui (сборка без OpenCV).
type HighGUISurface struct{}

// NewHighGUISurface создаёт заглушку
func NewHighGUISurface(log zerolog.Logger) *HighGUISurface {
	_ = log
	return &HighGUISurface{}
}

// CreateWindow возвращает ошибку, если сборка без тега gocv.
func (s *HighGUISurface) CreateWindow(name string) error {
	_ = name
	return errNoGoCV
}

// CreateSlider возвращает ошибку, если сборка без тега gocv.
func (s *HighGUISurface) CreateSlider(name, window string, initial, max int, onChange func(int)) error {
	return errNoGoCV
}

func (s *HighGUISurface) Position(name, window string) int           { return 0 }
func (s *HighGUISurface) SetPosition(name, window string, value int) {}
func (s *HighGUISurface) SetMinimum(name, window string, value int)  {}
func (s *HighGUISurface) SetMaximum(name, window string, value int)  {}
func (s *HighGUISurface) Poll()                                      {}
func (s *HighGUISurface) Do(fn func())                               { fn() }

// Show возвращает ошибку, если сборка без тега gocv.
func (s *HighGUISurface) Show(window string, img image.Image) error {
	return errNoGoCV
}

// Run возвращает ошибку, если сборка без тега gocv.
func (s *HighGUISurface) Run(ctx context.Context, frame func() error) error {
	return errNoGoCV
}

func (s *HighGUISurface) Close() error { return nil }
