// Package runtime owns the live side of the dispatch system: sessions, rooms and
// best-effort fan-out. It holds no business rules.
package runtime

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/runtime/workers"
	"log/slog"
	"sync"
	"time"
)

// Orchestrator assembles the hub, the dispatcher and the supervised task pool.
// It is built once by the server binary and torn down at shutdown.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	numWorkers int
	supervisor contract.ISupervisor
	hub        *Hub
	dispatcher *Dispatcher
	pool       *workers.TaskPool
	extra      []contract.Worker
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor, hub *Hub,
	pool *workers.TaskPool, numWorkers int, sendTimeout time.Duration) *Orchestrator {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Orchestrator{
		log:        log,
		numWorkers: numWorkers,
		supervisor: supervisor,
		hub:        hub,
		dispatcher: NewDispatcher(log, hub.Registry(), hub.Rooms(), hub, sendTimeout),
		pool:       pool,
	}
}

func (o *Orchestrator) Hub() *Hub {
	return o.hub
}

func (o *Orchestrator) Dispatcher() contract.IDispatcher {
	return o.dispatcher
}

func (o *Orchestrator) Tasks() contract.ITaskRunner {
	return o.pool
}

// Add registers extra workers (health monitoring, ...) started alongside the pool.
func (o *Orchestrator) Add(workers ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.extra = append(o.extra, workers...)
}

// Start hands every worker to the supervisor and blocks until it stops.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return nil
	}
	o.started = true
	o.supervisor.Add(o.pool.Workers(o.numWorkers)...)
	o.supervisor.Add(o.extra...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "task_workers", o.numWorkers)
	o.supervisor.Run(ctx)
	return nil
}

// Stop refuses new tasks, disconnects every session and stops the workers.
func (o *Orchestrator) Stop() {
	o.pool.Stop()
	o.hub.Close()
	o.supervisor.Stop()
	o.log.Info("Orchestrator stopped", "pending_tasks", o.pool.Pending())
}
