// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// job is one submitted unit of work. run never panics; see [Do].
type job struct {
	ctx context.Context
	run func(context.Context)
}

// Pool is a fixed set of goroutines draining a bounded queue of jobs.
// At most size units run at once; up to queueSize more may wait in the
// queue before submitters start to wait themselves.
type Pool struct {
	name   string
	size   int
	jobs   chan job
	logger *logger.Logger

	mu     sync.RWMutex
	closed bool

	startOnce sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewPool creates a stopped pool; call [Pool.Run] to start its workers.
// size is clamped to at least 1 and queueSize to at least 0.
func NewPool(name string, size, queueSize int, log *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		name:   name,
		size:   size,
		jobs:   make(chan job, queueSize),
		logger: log,
	}
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int {
	return p.size
}

// Run implements [Worker]. It starts the worker goroutines once; later
// calls are no-ops.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.logger.Info().
			Str("func", "*Pool.Run").
			Str("pool", p.name).
			Int("size", p.size).
			Int("queue_size", cap(p.jobs)).
			Msg("starting worker pool")

		p.wg.Add(p.size)
		for range p.size {
			go p.work()
		}
	})
}

func (p *Pool) work() {
	defer p.wg.Done()

	for j := range p.jobs {
		j.run(j.ctx)
	}
}

// submit enqueues j, waiting for queue room or for ctx to finish.
func (p *Pool) submit(ctx context.Context, j job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work, lets the queued and running units finish and
// waits for every worker to exit. It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()

		p.logger.Info().Str("func", "*Pool.Close").Str("pool", p.name).Msg("waiting for in-flight units")
		p.wg.Wait()
		p.logger.Info().Str("func", "*Pool.Close").Str("pool", p.name).Msg("worker pool stopped")
	})
}
