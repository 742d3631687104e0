package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFO(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		order []string
	)
	c := NewCloser(0)
	for _, name := range []string{"postgres", "redis", "http server"} {
		c.Add(name, func(context.Context) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http server", "redis", "postgres"}, order)
}

func TestCloseCollectsNamedErrors(t *testing.T) {
	t.Parallel()

	c := NewCloser(0)
	c.Add("redis", func(context.Context) error { return errors.New("connection reset") })
	c.Add("kafka producer", func(context.Context) error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[redis] connection reset")
	assert.NotContains(t, err.Error(), "kafka producer")
}

func TestCloseOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	c := NewCloser(0)
	c.Add("grpc conn", func(context.Context) error {
		calls++
		return errors.New("boom")
	})

	assert.Error(t, c.Close(context.Background()))
	assert.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcesRemainingOnTimeout(t *testing.T) {
	t.Parallel()

	forced := make(chan struct{}, 1)
	c := NewCloser(100 * time.Millisecond)
	c.Add("postgres", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			forced <- struct{}{}
		}
		return nil
	})
	c.Add("classification pool", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted after 0/2 resources")
	assert.Contains(t, err.Error(), "[classification pool, forced]")

	select {
	case <-forced:
	default:
		t.Fatal("postgres was not closed during forced shutdown")
	}
}
