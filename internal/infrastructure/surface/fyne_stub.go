//go:build !fyne
// +build !fyne

package surface

import "errors"

var errNoFyne = errors.New("fyne build tag is not enabled")

// FyneSurface заглушка поверхности fyne.
type FyneSurface struct{}

// NewFyneSurface создаёт заглушку
func NewFyneSurface(appID string) *FyneSurface {
	_ = appID
	return &FyneSurface{}
}

// CreateWindow возвращает ошибку, если сборка без тега fyne.
func (s *FyneSurface) CreateWindow(name string) error { return errNoFyne }

// CreateSlider возвращает ошибку, если сборка без тега fyne.
func (s *FyneSurface) CreateSlider(name, window string, initial, max int, onChange func(int)) error {
	return errNoFyne
}

func (s *FyneSurface) Position(name, window string) int           { return 0 }
func (s *FyneSurface) SetPosition(name, window string, value int) {}
func (s *FyneSurface) SetMinimum(name, window string, value int)  {}
func (s *FyneSurface) SetMaximum(name, window string, value int)  {}
func (s *FyneSurface) Do(fn func())                               { fn() }

// Run возвращает ошибку, если сборка без тега fyne.
func (s *FyneSurface) Run() error { return errNoFyne }
