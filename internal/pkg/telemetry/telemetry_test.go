package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters_Increment(t *testing.T) {
	counters := NewCounters()
	ctx := context.Background()

	counters.IncrementSuccess(ctx)
	counters.IncrementSuccess(ctx)
	counters.IncrementFailure(ctx)

	assert.Equal(t, int64(2), counters.Success())
	assert.Equal(t, int64(1), counters.Failure())
}

func TestCounters_ConcurrentIncrements(t *testing.T) {
	counters := NewCounters()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			counters.IncrementSuccess(ctx)
			counters.IncrementFailure(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers), counters.Success())
	assert.Equal(t, int64(workers), counters.Failure())
}
