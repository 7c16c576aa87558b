package workers

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PoolUnitWorker)(nil)
var _ contract.ITaskRunner = (*TaskPool)(nil)

type queuedTask struct {
	name       string
	task       contract.Task
	enqueuedAt time.Time
}

// TaskPool runs fire-and-forget tasks spawned by domain actions, such as
// notification fan-outs that must not delay the response of the action.
// Each task has its own error boundary: failures are logged, never returned.
type TaskPool struct {
	log         *slog.Logger
	tasks       chan queuedTask
	taskTimeout time.Duration
	stopped     atomic.Bool
}

func NewTaskPool(log *slog.Logger, bufferSize int, taskTimeout time.Duration) *TaskPool {
	return &TaskPool{
		log:         log,
		tasks:       make(chan queuedTask, bufferSize),
		taskTimeout: taskTimeout,
	}
}

// Go enqueues a task without blocking the caller.
func (p *TaskPool) Go(name string, task contract.Task) error {
	if p.stopped.Load() {
		return errors.ErrPoolStopped
	}
	select {
	case p.tasks <- queuedTask{name: name, task: task, enqueuedAt: time.Now()}:
		return nil
	default:
		p.log.Warn(fmt.Sprintf("Task queue full, dropping task %s", name))
		return errors.ErrTaskQueueFull
	}
}

// Workers builds n units consuming the same queue, to be handed to the supervisor.
func (p *TaskPool) Workers(n int) []contract.Worker {
	res := make([]contract.Worker, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, NewPoolUnitWorker(p.tasks, p.taskTimeout, p.log))
	}
	return res
}

// Stop refuses new tasks. Queued ones are abandoned when the workers stop.
func (p *TaskPool) Stop() {
	p.stopped.Store(true)
}

func (p *TaskPool) Pending() int {
	return len(p.tasks)
}

type PoolUnitWorker struct {
	tasks       <-chan queuedTask
	taskTimeout time.Duration
	log         *slog.Logger
}

func NewPoolUnitWorker(tasks <-chan queuedTask, taskTimeout time.Duration, log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{tasks: tasks, taskTimeout: taskTimeout, log: log}
}

func (w *PoolUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case t, ok := <-w.tasks:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.execute(ctx, t)
		}
	}
}

func (w *PoolUnitWorker) execute(ctx context.Context, t queuedTask) {
	taskCtx := ctx
	if w.taskTimeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, w.taskTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Task panicked", "task", t.name, "panic", r)
		}
	}()
	if err := t.task(taskCtx); err != nil {
		w.log.Error("Task failed", "task", t.name, "error", err)
		return
	}
	w.log.Debug("Task done", "task", t.name, "latency", time.Since(t.enqueuedAt))
}
