package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/vocabdrill/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	p := worker.NewPool(3, 20)
	p.Start(context.Background())

	var count atomic.Int32
	for i := 0; i < 20; i++ {
		require.NoError(t, p.Submit("job", func(ctx context.Context) {
			count.Add(1)
		}))
	}
	p.Close()

	assert.Equal(t, int32(20), count.Load())
}

func TestPool_OnDoneReceivesIDs(t *testing.T) {
	p := worker.NewPool(1, 4)
	done := make(chan string, 4)
	p.OnDone(func(id string) { done <- id })
	p.Start(context.Background())

	require.NoError(t, p.Submit("a", func(context.Context) {}))
	require.NoError(t, p.Submit("b", func(context.Context) {}))
	p.Close()
	close(done)

	var ids []string
	for id := range done {
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := worker.NewPool(1, 1)
	p.Start(context.Background())
	p.Close()

	err := p.Submit("late", func(context.Context) {})
	assert.True(t, errors.Is(err, worker.ErrPoolClosed))
	p.Close()
}

func TestPool_QueueFull(t *testing.T) {
	p := worker.NewPool(1, 1)
	// not started: nothing drains the queue
	require.NoError(t, p.Submit("first", func(context.Context) {}))

	err := p.Submit("second", func(context.Context) {})
	assert.True(t, errors.Is(err, worker.ErrQueueFull))
}

func TestPool_Defaults(t *testing.T) {
	p := worker.NewPool(0, 0)
	p.Start(context.Background())

	ran := make(chan struct{})
	require.NoError(t, p.Submit("x", func(context.Context) { close(ran) }))
	<-ran
	p.Close()
}
