package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	t.Parallel()

	p, err := New(2, logger.NewNop())
	require.NoError(t, err)
	defer p.Release()

	var (
		wg   sync.WaitGroup
		done atomic.Int64
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(func() {
			defer wg.Done()
			done.Add(1)
		}))
	}
	wg.Wait()

	assert.Equal(t, int64(10), done.Load())
}

func TestPoolSurvivesPanic(t *testing.T) {
	t.Parallel()

	p, err := New(1, logger.NewNop())
	require.NoError(t, err)
	defer p.Release()

	var wg sync.WaitGroup
	wg.Add(1)
	require.NoError(t, p.Submit(func() {
		defer wg.Done()
		panic("boom")
	}))
	wg.Wait()

	ran := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(ran) }))
	<-ran
}

func TestSubmitAfterRelease(t *testing.T) {
	t.Parallel()

	p, err := New(1, logger.NewNop())
	require.NoError(t, err)
	p.Release()

	assert.Error(t, p.Submit(func() {}))
}
