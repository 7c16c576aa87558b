package runtime

import (
	"context"
	"crew-dispatch/domain"
	"crew-dispatch/mocks"
	"crew-dispatch/runtime/workers"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator() *Orchestrator {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewOrchestrator(log,
		workers.NewSupervisor(log, 10*time.Millisecond),
		newTestHub(),
		workers.NewTaskPool(log, 16, time.Second),
		2, time.Second)
}

func TestOrchestrator_Runs_Spawned_Tasks(t *testing.T) {
	req := require.New(t)
	orchestrator := newTestOrchestrator()

	// Given a started orchestrator
	done := make(chan struct{})
	go func() {
		_ = orchestrator.Start(context.Background())
		close(done)
	}()

	// When a domain action spawns a task
	ran := make(chan struct{})
	err := orchestrator.Tasks().Go("notify", func(ctx context.Context) error {
		close(ran)
		return nil
	})
	req.NoError(err)

	// Then a pool worker executes it
	select {
	case <-ran:
	case <-time.After(time.Second):
		req.Fail("task was never executed")
	}

	// And Stop makes Start return
	orchestrator.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("orchestrator did not stop")
	}
}

func TestOrchestrator_Starts_Extra_Workers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	orchestrator := newTestOrchestrator()

	// Given an extra worker finishing immediately
	started := make(chan struct{})
	worker := mocks.NewMockWorker(ctrl)
	worker.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		return nil
	}).Times(1)
	orchestrator.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = orchestrator.Start(ctx) }()

	select {
	case <-started:
	case <-time.After(time.Second):
		req.Fail("extra worker was never started")
	}
	orchestrator.Stop()
}

func TestOrchestrator_Stop_Disconnects_Sessions_And_Refuses_Tasks(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	orchestrator := newTestOrchestrator()

	// Given u1 connected
	sink := mocks.NewMockSessionSink(ctrl)
	sink.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	connect(t, orchestrator.Hub(), sink, "u1")

	// When the orchestrator stops
	orchestrator.Stop()

	// Then nobody is reachable anymore and no task is accepted
	req.False(orchestrator.Dispatcher().EmitToUser(context.Background(), "u1", domain.EventNotification, "bye"))
	req.Empty(orchestrator.Hub().Live())
	req.Error(orchestrator.Tasks().Go("late", func(ctx context.Context) error { return nil }))
}
