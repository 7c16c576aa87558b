package workers

import (
	"context"
	"crew-dispatch/errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTaskPool_Runs_Tasks_And_Survives_Failures(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	pool := NewTaskPool(log, 10, time.Second)
	sup := NewSupervisor(log, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sup.Add(pool.Workers(2)...).Run(ctx)

	// Given a failing task, a panicking task and a healthy one
	var ran atomic.Int32
	done := make(chan struct{})
	req.NoError(pool.Go("failing", func(ctx context.Context) error {
		ran.Add(1)
		return fmt.Errorf("mail server down")
	}))
	req.NoError(pool.Go("panicking", func(ctx context.Context) error {
		ran.Add(1)
		panic("boom")
	}))
	req.NoError(pool.Go("healthy", func(ctx context.Context) error {
		ran.Add(1)
		close(done)
		return nil
	}))

	// Then the healthy one still runs
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("healthy task never ran")
	}
	req.Eventually(func() bool { return ran.Load() == 3 }, time.Second, 10*time.Millisecond)
}

func TestTaskPool_Task_Carries_A_Deadline(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	pool := NewTaskPool(log, 1, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewPoolUnitWorker(pool.tasks, pool.taskTimeout, log).Run(ctx) }()

	hasDeadline := make(chan bool, 1)
	req.NoError(pool.Go("deadline", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hasDeadline <- ok
		return nil
	}))
	req.True(<-hasDeadline)
}

func TestTaskPool_Refuses_When_Full_Or_Stopped(t *testing.T) {
	req := require.New(t)
	pool := NewTaskPool(logs.GetLoggerFromLevel(slog.LevelDebug), 1, time.Second)
	noop := func(ctx context.Context) error { return nil }

	// Given no worker consuming the queue
	req.NoError(pool.Go("first", noop))
	req.ErrorIs(pool.Go("second", noop), errors.ErrTaskQueueFull)
	req.Equal(1, pool.Pending())

	// When the pool is stopped
	pool.Stop()
	req.ErrorIs(pool.Go("third", noop), errors.ErrPoolStopped)
}
