package services

import (
	"context"
	"crew-dispatch/contract"
	"crew-dispatch/mocks"
	"crew-dispatch/repositories"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stores struct {
	users         *repositories.UserRepository
	activities    *repositories.ActivityRepository
	messages      repositories.MessageRepository
	chats         *repositories.ChatRepository
	events        *repositories.EventRepository
	opportunities *repositories.OpportunityRepository
}

func openStores(t *testing.T) stores {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return stores{
		users:         repositories.NewUserRepository(db),
		activities:    repositories.NewActivityRepository(db),
		messages:      repositories.NewMessageRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug)),
		chats:         repositories.NewChatRepository(db),
		events:        repositories.NewEventRepository(db),
		opportunities: repositories.NewOpportunityRepository(db),
	}
}

// inlineTasks runs every spawned task before Go returns.
func inlineTasks(ctrl *gomock.Controller) *mocks.MockITaskRunner {
	tasks := mocks.NewMockITaskRunner(ctrl)
	tasks.EXPECT().Go(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, task contract.Task) error {
			return task(context.Background())
		}).AnyTimes()
	return tasks
}
