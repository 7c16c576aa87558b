//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"crew-dispatch/domain"
	"reflect"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Task is a unit of best-effort background work spawned by a domain action.
type Task func(ctx context.Context) error

// ITaskRunner accepts fire-and-forget tasks. Errors of a task are logged by the runner,
// never returned to whoever spawned it.
type ITaskRunner interface {
	Go(name string, task Task) error
}

// SessionSink is the write side of one live transport session.
type SessionSink interface {
	Send(ctx context.Context, event string, payload any) error
}

type ISessionRegistry interface {
	Register(sessionID domain.SessionID, userID domain.UserID)
	Unregister(sessionID domain.SessionID, userID domain.UserID)
	SessionsFor(userID domain.UserID) []domain.SessionID
}

type IRoomMembership interface {
	Join(sessionID domain.SessionID, roomID domain.RoomID)
	Leave(sessionID domain.SessionID, roomID domain.RoomID)
	LeaveAll(sessionID domain.SessionID) []domain.RoomID
	Members(roomID domain.RoomID) []domain.SessionID
}

// ISessionDirectory resolves live sessions to their sinks.
type ISessionDirectory interface {
	Sink(sessionID domain.SessionID) (SessionSink, bool)
	Live() []domain.SessionID
}

type IDispatcher interface {
	EmitToUser(ctx context.Context, userID domain.UserID, event string, payload any) bool
	EmitToRoom(ctx context.Context, roomID domain.RoomID, event string, payload any)
	EmitGlobal(ctx context.Context, event string, payload any, excluding ...domain.SessionID)
}

type INotificationGate interface {
	SendToUser(ctx context.Context, userID domain.UserID, category domain.Category,
		title, body string, data map[string]string) *domain.Notification
	SendToUsers(ctx context.Context, userIDs []domain.UserID, category domain.Category,
		title, body string, data map[string]string) []domain.Notification
	SendGlobalNotification(ctx context.Context, title, body string,
		data map[string]string, excludeUserIDs []domain.UserID) []domain.Notification
}

type IActivityFeed interface {
	CreateActivity(ctx context.Context, activity domain.NewActivity) (domain.Activity, error)
	GetUserFeed(ctx context.Context, userID domain.UserID, limit, skip int) ([]domain.FeedEntry, error)
	MarkActivitiesAsRead(ctx context.Context, userID domain.UserID, activityIDs []uuid.UUID) (int, error)
}
