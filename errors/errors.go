package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrTaskQueueFull = fmt.Errorf("task queue is full")
	ErrPoolStopped   = fmt.Errorf("task pool is stopped")

	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrSessionClosed    = fmt.Errorf("session is closed")
	ErrNotIdentified    = fmt.Errorf("session has not announced its user")
	ErrEmptyUserID      = fmt.Errorf("user id is required")
	ErrEmptyRoomID      = fmt.Errorf("room id is required")
	ErrHubClosed        = fmt.Errorf("hub is closed")
	ErrUnknownFrameType = fmt.Errorf("unknown frame event")

	ErrUserNotFound        = fmt.Errorf("user not found")
	ErrEventNotFound       = fmt.Errorf("event not found")
	ErrOpportunityNotFound = fmt.Errorf("opportunity not found")
	ErrChatNotFound        = fmt.Errorf("chat not found")
	ErrActivityNotFound    = fmt.Errorf("activity not found")
	ErrMessageNotFound     = fmt.Errorf("message not found")
	ErrGroupKeyTaken       = fmt.Errorf("activity group key already exists")

	ErrInvalidMessage     = fmt.Errorf("invalid message")
	ErrInvalidActivity    = fmt.Errorf("invalid activity")
	ErrInvalidCategory    = fmt.Errorf("invalid notification category")
	ErrSelfMessage        = fmt.Errorf("cannot send message to yourself")
	ErrEventNotActive     = fmt.Errorf("this event is no longer active")
	ErrNotParticipant     = fmt.Errorf("not authorized to access this event")
	ErrMissingToken       = fmt.Errorf("missing bearer token")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrAdminRequired      = fmt.Errorf("admin role required")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
)

// AppError is the JSON body returned by the HTTP layer.
type AppError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e AppError) Error() string {
	return e.Message
}

// MapToHTTPStatus translates domain errors at the HTTP edge.
// Anything unknown is a 500: persistence failures land there.
func MapToHTTPStatus(err error) AppError {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrOpportunityNotFound),
		errors.Is(err, ErrChatNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrMessageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidMessage),
		errors.Is(err, ErrInvalidActivity),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrSelfMessage),
		errors.Is(err, ErrEventNotActive),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrEmptyUserID):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotParticipant),
		errors.Is(err, ErrAdminRequired):
		status = http.StatusForbidden
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Server Error"
	}
	return AppError{Success: false, Message: message, Status: status}
}
