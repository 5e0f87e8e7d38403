package app

import (
	"fmt"
	"strconv"
	"strings"

	"cvtune/internal/domain/entity"
)

// Format печатает текущие значения: строка ползунков, затем строка групп,
// в рамке из '='. Без имён печатается вся доска. Ограничения не применяются.
func (b *Board) Format(names ...string) (string, error) {
	for _, name := range names {
		if !b.isSlider(name) && !b.isGroup(name) {
			return "", fmt.Errorf("%w: name %q doesn't exist", entity.ErrInvalidArgument, name)
		}
	}

	sliders, groups := b.order, b.groupOrder
	if len(names) > 0 {
		sliders, groups = nil, nil
		for _, name := range names {
			if b.isSlider(name) {
				sliders = append(sliders, name)
			} else {
				groups = append(groups, name)
			}
		}
	}

	var lines []string
	if len(sliders) > 0 {
		parts := make([]string, len(sliders))
		for i, name := range sliders {
			parts[i] = "'" + name + "': " + strconv.Itoa(b.sliders[name].Value)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	if len(groups) > 0 {
		parts := make([]string, len(groups))
		for i, name := range groups {
			parts[i] = "'" + name + "': " + entity.FormatTuple(b.groupValues[name])
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	ruler := strings.Repeat("=", width)
	return ruler + "\n" + strings.Join(lines, "\n") + "\n" + ruler, nil
}
