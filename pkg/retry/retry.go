// Package retry выполняет произвольную операцию с ограниченным числом повторов.
package retry

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/lca-catalog/pkg/jitter"
	goretry "github.com/sethvargo/go-retry"
)

// Policy описывает число повторов после первой попытки и задержку между ними.
// Нулевой Backoff означает немедленный повтор.
type Policy struct {
	MaxRetries uint64
	Backoff    time.Duration
	MaxBackoff time.Duration
}

// Immediate возвращает политику без задержек.
func Immediate(maxRetries uint64) Policy {
	return Policy{MaxRetries: maxRetries}
}

// Do вызывает fn и при ошибке повторяет вызов не более p.MaxRetries раз.
// Возвращается результат первой успешной попытки или ошибка последней.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var res T

	err := goretry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		out, err := fn(ctx)
		if err != nil {
			return goretry.RetryableError(err)
		}

		res = out
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return res, nil
}

// backoff создаёт новый (stateful) backoff на каждый вызов Do.
func (p Policy) backoff() goretry.Backoff {
	var attempt atomic.Int64

	next := goretry.BackoffFunc(func() (time.Duration, bool) {
		n := int(attempt.Add(1)) - 1
		if p.Backoff <= 0 {
			return 0, false
		}

		maxBackoff := p.MaxBackoff
		if maxBackoff <= 0 {
			maxBackoff = p.Backoff
		}

		return jitter.ExponentialBackoff(p.Backoff, maxBackoff, n, jitter.DefaultJitter), false
	})

	return goretry.WithMaxRetries(p.MaxRetries, next)
}
