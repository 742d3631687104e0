package usecase_test

import (
	"context"
	"sync"
)

// passthroughTx выполняет функцию без реальной транзакции.
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// syncRunner выполняет задачу в вызывающей горутине.
type syncRunner struct {
	mu    sync.Mutex
	tasks int
}

func (r *syncRunner) Submit(task func()) error {
	r.mu.Lock()
	r.tasks++
	r.mu.Unlock()

	task()
	return nil
}
