package entity

import (
	"fmt"
	"strings"
)

// LimitMode режим ограничения ползунка
type LimitMode int

const (
	LimitGreater LimitMode = iota // ползунок держится выше опорного
	LimitLess                     // ползунок держится ниже опорного
)

func (m LimitMode) String() string {
	switch m {
	case LimitGreater:
		return "greater"
	case LimitLess:
		return "less"
	default:
		return fmt.Sprintf("LimitMode(%d)", int(m))
	}
}

// Valid сообщает, известен ли режим
func (m LimitMode) Valid() bool {
	return m == LimitGreater || m == LimitLess
}

// ParseLimitMode разбирает режим из текстового вида (greater/less, gt/lt)
func ParseLimitMode(s string) (LimitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greater", "gt", ">":
		return LimitGreater, nil
	case "less", "lt", "<":
		return LimitLess, nil
	}
	return 0, fmt.Errorf("%w: unknown limit mode %q", ErrInvalidArgument, s)
}

// Limit относительное ограничение между двумя ползунками.
type Limit struct {
	Subject string    // ограничиваемый ползунок
	Anchor  string    // опорный ползунок
	Mode    LimitMode // направление
	Gap     int       // минимальный допустимый зазор
}

// Violated проверяет нарушение ограничения для пары значений
func (l Limit) Violated(subject, anchor int) bool {
	if l.Mode == LimitGreater {
		return subject-anchor < l.Gap
	}
	return anchor-subject < l.Gap
}
