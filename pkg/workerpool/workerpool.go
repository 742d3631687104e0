// Package workerpool ограничивает число одновременно выполняемых фоновых задач.
package workerpool

import (
	"fmt"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/panjf2000/ants/v2"
)

// Pool — пул горутин фиксированного размера поверх ants.
type Pool struct {
	pool *ants.Pool
}

// New создаёт пул на size горутин. Submit блокируется, пока все воркеры заняты.
// Паника внутри задачи логируется и не роняет процесс.
func New(size int, log logger.Logger) (*Pool, error) {
	p, err := ants.NewPool(size, ants.WithPanicHandler(func(r any) {
		log.Errorf(fmt.Errorf("%v", r), "worker pool task panicked")
	}))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Pool{pool: p}, nil
}

// Submit ставит задачу в очередь пула.
func (p *Pool) Submit(task func()) error {
	if err := p.pool.Submit(task); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Running возвращает число выполняющихся задач.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Release закрывает пул. Новые задачи после этого не принимаются.
func (p *Pool) Release() {
	p.pool.Release()
}
