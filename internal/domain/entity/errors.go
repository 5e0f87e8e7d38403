package entity

import "errors"

var (
	// ErrInvalidArgument неизвестное имя, неверная арность, неверный режим или значение
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrType форма значения не подходит для вызова
	ErrType = errors.New("type error")
	// ErrConflict повторное имя ползунка или группы, повторная настройка
	ErrConflict = errors.New("configuration conflict")
)
