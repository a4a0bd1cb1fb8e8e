package events

import (
	"context"
	"log"
	"sync"
)

// Loop выполняет задачи по одной в единственной горутине. Всё, что трогает
// Bus и состояние за ней, ставится сюда, и каждое событие верхнего уровня
// завершается до начала следующего.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop создаёт цикл с очередью на buffer задач.
func NewLoop(buffer int) *Loop {
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Post ставит task в очередь. Возвращает false, если цикл уже остановлен.
func (l *Loop) Post(task func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- task:
		return true
	case <-l.done:
		return false
	}
}

// Do ставит task в очередь и ждёт её завершения.
func (l *Loop) Do(ctx context.Context, task func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		task()
	}) {
		return context.Canceled
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return context.Canceled
	}
}

// Run выполняет задачи до отмены ctx.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			l.run(task)
		}
	}
}

func (l *Loop) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: loop task panicked: %v", r)
		}
	}()
	task()
}
