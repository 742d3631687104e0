// Package jitter размывает интервалы повторов, чтобы параллельные пайплайны
// не били в сервис классификации одновременно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — доля случайной добавки к задержке (50%).
const DefaultJitter = 0.5

// Duration возвращает d со случайной добавкой из [0, d*factor).
func Duration(d time.Duration, factor float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}

	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// ExponentialBackoff удваивает base на каждую попытку (attempt с нуля),
// ограничивает результат сверху limit и добавляет джиттер.
func ExponentialBackoff(base, limit time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for range attempt {
		backoff *= 2
		if backoff >= limit {
			backoff = limit
			break
		}
	}

	return Duration(backoff, factor)
}
