package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"cvtune/config"
	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// BuildBoard собирает доску по пресету: ползунки, группы, значения сброса,
// тики, затем ограничения.
func BuildBoard(surface port.Surface, p *config.Preset, log zerolog.Logger) (*Board, error) {
	names := make([]string, len(p.Sliders))
	initials := make([]int, len(p.Sliders))
	maxTicks := make([]int, len(p.Sliders))
	for i, s := range p.Sliders {
		names[i], initials[i], maxTicks[i] = s.Name, s.Initial, s.Max
	}

	b, err := NewBoard(surface, p.Window, names, initials, maxTicks, WithLogger(log))
	if err != nil {
		return nil, err
	}

	for _, g := range p.Groups {
		if err := b.DefineGroup(g.Name, g.Members...); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
	}
	for _, s := range p.Sliders {
		if s.Reset == nil {
			continue
		}
		if err := b.SetResetValue(entity.Name(s.Name), entity.Scalar(*s.Reset)); err != nil {
			return nil, fmt.Errorf("reset value of %q: %w", s.Name, err)
		}
	}
	for _, t := range p.Ticks {
		if err := b.RestrictToTicks(t.Subject, t.Values...); err != nil {
			return nil, fmt.Errorf("ticks of %q: %w", t.Subject, err)
		}
	}
	for _, l := range p.Limits {
		mode, err := entity.ParseLimitMode(l.Mode)
		if err != nil {
			return nil, fmt.Errorf("limit of %q: %w", l.Subject, err)
		}
		if err := b.SetLimit(l.Subject, mode, l.Gap, l.Anchor); err != nil {
			return nil, fmt.Errorf("limit of %q: %w", l.Subject, err)
		}
	}

	return b, nil
}
