package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cvtune/internal/domain/entity"
)

// Preset описание доски ползунков в YAML
type Preset struct {
	Window  string         `yaml:"window"`
	Sliders []SliderPreset `yaml:"sliders"`
	Groups  []GroupPreset  `yaml:"groups"`
	Limits  []LimitPreset  `yaml:"limits"`
	Ticks   []TickPreset   `yaml:"ticks"`
	Preview PreviewPreset  `yaml:"preview"`
}

type SliderPreset struct {
	Name    string `yaml:"name"`
	Initial int    `yaml:"initial"`
	Max     int    `yaml:"max"`
	Reset   *int   `yaml:"reset"` // nil: сброс к начальному значению
}

type GroupPreset struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

type LimitPreset struct {
	Subject string `yaml:"subject"`
	Mode    string `yaml:"mode"`
	Gap     int    `yaml:"gap"`
	Anchor  string `yaml:"anchor"` // пусто: абсолютное ограничение
}

type TickPreset struct {
	Subject string `yaml:"subject"`
	Values  []int  `yaml:"values"`
}

// PreviewPreset имена ползунков и групп, управляющих предпросмотром
type PreviewPreset struct {
	Blur    string  `yaml:"blur"`     // ползунок размера ядра Гаусса
	Lower   string  `yaml:"lower"`    // группа H, S, V нижней границы
	Upper   string  `yaml:"upper"`    // группа H, S, V верхней границы
	Morph   string  `yaml:"morph"`    // ползунок размера ядра открытия
	MinArea string  `yaml:"min_area"` // ползунок минимальной площади контура
	Count   int     `yaml:"count"`    // сколько контуров искать, 0 значит все
	Line    float64 `yaml:"line"`     // порог угла для проверки прямой, 0 не проверять
}

// LoadPreset читает пресет из файла
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset разбирает пресет из YAML
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate проверяет то, что не проверит сама доска
func (p *Preset) Validate() error {
	if p.Window == "" {
		return errors.New("preset: window is required")
	}
	if len(p.Sliders) == 0 {
		return errors.New("preset: at least one slider is required")
	}
	for _, l := range p.Limits {
		if _, err := entity.ParseLimitMode(l.Mode); err != nil {
			return fmt.Errorf("preset: limit on %q: %w", l.Subject, err)
		}
	}
	return nil
}
