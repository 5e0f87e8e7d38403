package surface

import "sync"

// taskQueue передаёт функции в поток цикла событий. После stop вызовы Do
// возвращаются сразу, не дожидаясь цикла.
type taskQueue struct {
	tasks   chan func()
	stopped chan struct{}
	once    sync.Once
}

func newTaskQueue(size int) *taskQueue {
	return &taskQueue{
		tasks:   make(chan func(), size),
		stopped: make(chan struct{}),
	}
}

// Do ставит fn в очередь и ждёт, пока цикл её выполнит или остановится
func (q *taskQueue) Do(fn func()) {
	done := make(chan struct{})
	task := func() {
		defer close(done)
		fn()
	}

	select {
	case q.tasks <- task:
	case <-q.stopped:
		return
	}
	select {
	case <-done:
	case <-q.stopped:
	}
}

// drain выполняет всё, что накопилось в очереди
func (q *taskQueue) drain() {
	for {
		select {
		case task := <-q.tasks:
			task()
		default:
			return
		}
	}
}

// stop отпускает ждущие и будущие вызовы Do
func (q *taskQueue) stop() {
	q.once.Do(func() { close(q.stopped) })
}
