package entity

import (
	"strconv"
	"strings"
)

// Target адресат изменения: одно имя (ползунок или группа) или список имён.
type Target struct {
	name  string
	names []string
	list  bool
}

// Name адресует один ползунок или группу
func Name(name string) Target {
	return Target{name: name}
}

// Names адресует список ползунков и/или групп
func Names(names ...string) Target {
	return Target{names: append([]string(nil), names...), list: true}
}

// IsList сообщает, задан ли список имён
func (t Target) IsList() bool { return t.list }

// Single возвращает одиночное имя
func (t Target) Single() string { return t.name }

// Items возвращает имена списка
func (t Target) Items() []string { return t.names }

func (t Target) String() string {
	if t.list {
		return "(" + strings.Join(t.names, ", ") + ")"
	}
	return t.name
}

// Value значение изменения: скаляр или список (элементы списка тоже могут быть списками).
type Value struct {
	scalar int
	items  []Value
	list   bool
}

// Scalar одно целое значение
func Scalar(v int) Value {
	return Value{scalar: v}
}

// List список значений
func List(items ...Value) Value {
	return Value{items: append([]Value(nil), items...), list: true}
}

// Ints список скаляров
func Ints(vs ...int) Value {
	items := make([]Value, len(vs))
	for i, v := range vs {
		items[i] = Scalar(v)
	}
	return Value{items: items, list: true}
}

// IsList сообщает, является ли значение списком
func (v Value) IsList() bool { return v.list }

// Int возвращает скалярное значение
func (v Value) Int() int { return v.scalar }

// Items возвращает элементы списка
func (v Value) Items() []Value { return v.items }

// Len длина списка, 1 для скаляра
func (v Value) Len() int {
	if !v.list {
		return 1
	}
	return len(v.items)
}

func (v Value) String() string {
	if !v.list {
		return strconv.Itoa(v.scalar)
	}
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FormatTuple печатает кортеж значений группы
func FormatTuple(values []int) string {
	return Ints(values...).String()
}
