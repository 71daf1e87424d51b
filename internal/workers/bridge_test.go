package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func newRunningPool(t *testing.T, size, queue int) *Pool {
	t.Helper()

	p := NewPool("test", size, queue, logger.Nop())
	p.Run()
	t.Cleanup(p.Close)

	return p
}

func TestDo_ReturnsValueAndError(t *testing.T) {
	p := newRunningPool(t, 2, 0)

	n, err := Do(context.Background(), p, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	boom := errors.New("boom")
	_, err = Do(context.Background(), p, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestDo_RecoversPanic(t *testing.T) {
	p := newRunningPool(t, 1, 0)

	_, err := Do(context.Background(), p, func(context.Context) (int, error) {
		panic("kaboom")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkerPanicked)
	assert.Contains(t, err.Error(), "kaboom")

	// the worker survived
	n, err := Do(context.Background(), p, func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDo_ClosedPool(t *testing.T) {
	p := NewPool("test", 1, 0, logger.Nop())
	p.Run()
	p.Close()
	p.Close()

	called := false
	_, err := Do(context.Background(), p, func(context.Context) (int, error) {
		called = true
		return 0, nil
	})
	assert.ErrorIs(t, err, ErrPoolClosed)
	assert.False(t, called)
}

func TestDo_DetachesCancellationKeepsValues(t *testing.T) {
	p := newRunningPool(t, 1, 0)

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "trace-1"))
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan error, 1)

	go func() {
		_, _ = Do(ctx, p, func(workCtx context.Context) (string, error) {
			close(started)
			<-release
			value, _ := workCtx.Value(ctxKey{}).(string)
			if value != "trace-1" {
				finished <- errors.New("context values were lost")
				return "", nil
			}
			finished <- workCtx.Err()
			return value, nil
		})
	}()

	<-started
	cancel()
	close(release)

	select {
	case err := <-finished:
		assert.NoError(t, err, "unit of work must not observe the caller's cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("unit of work did not run to completion")
	}
}

func TestDo_AbandonedCallerDoesNotLeakWorker(t *testing.T) {
	p := newRunningPool(t, 1, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Do(ctx, p, func(context.Context) (int, error) {
		time.Sleep(100 * time.Millisecond)
		return 1, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the single worker finishes the abandoned unit and serves the next one
	n, err := Do(context.Background(), p, func(context.Context) (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDo_BoundedConcurrency(t *testing.T) {
	const size = 3
	p := newRunningPool(t, size, 16)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Do(context.Background(), p, func(context.Context) (struct{}, error) {
				now := running.Add(1)
				for {
					old := peak.Load()
					if now <= old || peak.CompareAndSwap(old, now) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				running.Add(-1)
				return struct{}{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_CloseWaitsForInFlight(t *testing.T) {
	p := NewPool("test", 1, 0, logger.Nop())
	p.Run()

	started := make(chan struct{})
	var finished atomic.Bool
	go func() {
		_, _ = Do(context.Background(), p, func(context.Context) (int, error) {
			close(started)
			time.Sleep(50 * time.Millisecond)
			finished.Store(true)
			return 0, nil
		})
	}()

	<-started
	p.Close()
	assert.True(t, finished.Load())
}

func TestNewPool_ClampsSizes(t *testing.T) {
	p := NewPool("test", 0, -5, logger.Nop())
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, 0, cap(p.jobs))
}

func TestDo_SubmitWaitsForCallerContext(t *testing.T) {
	// not started: nothing drains the unbuffered queue
	p := NewPool("test", 1, 0, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Do(ctx, p, func(context.Context) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	p.Close()
}
