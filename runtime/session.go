package runtime

import (
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"sync"
	"time"
)

// Session is the state machine of one transport connection:
//
//	connecting --identify--> identified --identify--> identified
//	    |                        |
//	    +-------disconnect-------+-----> closed
//
// Registry and room mutations are performed by the Hub as side effects of
// these transitions, while the session lock is held.
type Session struct {
	ID          domain.SessionID
	ConnectedAt time.Time
	sink        contract.SessionSink

	mu    sync.Mutex
	state domain.SessionState
	user  domain.UserID
}

func newSession(id domain.SessionID, sink contract.SessionSink, at time.Time) *Session {
	return &Session{ID: id, ConnectedAt: at, sink: sink, state: domain.SessionConnecting}
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// UserID is empty until the client has identified.
func (s *Session) UserID() domain.UserID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Sink() contract.SessionSink {
	return s.sink
}

// identify moves the session to identified and runs onTransition with the
// previous owner while still holding the session lock.
func (s *Session) identify(userID domain.UserID, onTransition func(prev domain.UserID)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.SessionClosed {
		return errors.ErrSessionClosed
	}
	prev := s.user
	s.user = userID
	s.state = domain.SessionIdentified
	onTransition(prev)
	return nil
}

// whileOpen runs fn under the session lock unless the session is closed.
func (s *Session) whileOpen(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.SessionClosed {
		return errors.ErrSessionClosed
	}
	fn()
	return nil
}

// close is idempotent: only the first call runs onTransition.
func (s *Session) close(onTransition func(user domain.UserID)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.SessionClosed {
		return false
	}
	s.state = domain.SessionClosed
	onTransition(s.user)
	return true
}
