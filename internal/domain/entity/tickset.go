package entity

import "sort"

// TickSet допустимые позиции ползунка
type TickSet struct {
	Ticks       []int // отсортированы, без повторов
	LastSnapped int   // последний тик, на котором ползунок остановился
}

// NewTickSet сортирует и убирает повторы
func NewTickSet(ticks ...int) *TickSet {
	sorted := append([]int(nil), ticks...)
	sort.Ints(sorted)

	uniq := sorted[:0]
	for i, t := range sorted {
		if i > 0 && t == sorted[i-1] {
			continue
		}
		uniq = append(uniq, t)
	}
	return &TickSet{Ticks: uniq}
}

// First возвращает наименьший тик
func (t *TickSet) First() int { return t.Ticks[0] }

// Last возвращает наибольший тик
func (t *TickSet) Last() int { return t.Ticks[len(t.Ticks)-1] }

// Contains сообщает, является ли значение тиком
func (t *TickSet) Contains(v int) bool {
	return t.index(v) >= 0
}

// Next возвращает соседний тик над LastSnapped
func (t *TickSet) Next() (int, bool) {
	i := t.index(t.LastSnapped)
	if i < 0 || i == len(t.Ticks)-1 {
		return t.LastSnapped, false
	}
	return t.Ticks[i+1], true
}

// Prev возвращает соседний тик под LastSnapped
func (t *TickSet) Prev() (int, bool) {
	i := t.index(t.LastSnapped)
	if i <= 0 {
		return t.LastSnapped, false
	}
	return t.Ticks[i-1], true
}

func (t *TickSet) index(v int) int {
	i := sort.SearchInts(t.Ticks, v)
	if i < len(t.Ticks) && t.Ticks[i] == v {
		return i
	}
	return -1
}
