package runtime

import (
	"crew-dispatch/contract"
	"crew-dispatch/domain"
	"sync"
)

var _ contract.ISessionRegistry = (*Registry)(nil)

// Registry maps a user to the set of sessions currently live for that user.
// A user may hold several sessions (one per device), and a session belongs
// to at most one user at a time.
type Registry struct {
	users  memberIndex[domain.UserID, domain.SessionID]
	owners sync.Map // domain.SessionID -> domain.UserID
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register files sessionID under userID. Calling it twice is harmless.
// A session previously owned by another user is moved.
func (r *Registry) Register(sessionID domain.SessionID, userID domain.UserID) {
	if prev, loaded := r.owners.Swap(sessionID, userID); loaded && prev.(domain.UserID) != userID {
		r.users.remove(prev.(domain.UserID), sessionID)
	}
	r.users.add(userID, sessionID)
}

// Unregister removes sessionID from userID's set and drops the user entry once it is empty.
// Unknown sessions are ignored.
func (r *Registry) Unregister(sessionID domain.SessionID, userID domain.UserID) {
	r.users.remove(userID, sessionID)
	r.owners.CompareAndDelete(sessionID, userID)
}

// SessionsFor never fails: an unknown user simply has no session.
func (r *Registry) SessionsFor(userID domain.UserID) []domain.SessionID {
	return r.users.members(userID)
}

func (r *Registry) OwnerOf(sessionID domain.SessionID) (domain.UserID, bool) {
	v, ok := r.owners.Load(sessionID)
	if !ok {
		return "", false
	}
	return v.(domain.UserID), true
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	_, ok := r.users.load(userID)
	return ok
}

// UserCount is the number of users holding at least one session.
func (r *Registry) UserCount() int {
	return r.users.len()
}
