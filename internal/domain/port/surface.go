package port

// Surface интерфейс GUI-поверхности с ползунками
//
// Реализация обязана прижимать позицию к текущим границам и синхронно
// вызывать onChange после программного изменения позиции (как setTrackbarPos в OpenCV).
type Surface interface {
	// CreateWindow создаёт окно
	CreateWindow(name string) error

	// CreateSlider регистрирует ползунок в окне
	CreateSlider(name, window string, initial, max int, onChange func(pos int)) error

	// Position возвращает текущую позицию ползунка
	Position(name, window string) int

	// SetPosition меняет позицию ползунка
	SetPosition(name, window string, value int)

	// SetMinimum меняет нижнюю границу ползунка
	SetMinimum(name, window string, value int)

	// SetMaximum меняет верхнюю границу ползунка
	SetMaximum(name, window string, value int)
}

// Dispatcher выполняет функцию в потоке, владеющем поверхностью
type Dispatcher interface {
	// Do запускает fn в потоке поверхности и ждёт завершения
	Do(fn func())
}
