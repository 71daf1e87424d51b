package workers

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Workers groups the background workers of the process.
type Workers struct {
	// Blocking runs every unit of work that leases a database connection.
	Blocking *Pool

	workers []Worker
}

// NewWorkers builds the worker pools described by cfg. They are not started
// until [Workers.Run].
func NewWorkers(cfg config.Workers, log *logger.Logger) *Workers {
	blocking := NewPool("blocking", cfg.BlockingPoolSize, cfg.QueueSize, log)

	return &Workers{
		Blocking: blocking,
		workers:  []Worker{blocking},
	}
}

// Run starts every worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Close stops the pools and waits for their in-flight units.
func (w *Workers) Close() {
	if w.Blocking != nil {
		w.Blocking.Close()
	}
}
