package runtime

import (
	"crew-dispatch/contract"
	"crew-dispatch/domain"
)

var _ contract.IRoomMembership = (*Rooms)(nil)

// Rooms groups sessions by event chat channel.
// Membership is per session, independent of which user owns it.
type Rooms struct {
	members memberIndex[domain.RoomID, domain.SessionID]
	joined  memberIndex[domain.SessionID, domain.RoomID]
}

func NewRooms() *Rooms {
	return &Rooms{}
}

func (r *Rooms) Join(sessionID domain.SessionID, roomID domain.RoomID) {
	r.members.add(roomID, sessionID)
	r.joined.add(sessionID, roomID)
}

func (r *Rooms) Leave(sessionID domain.SessionID, roomID domain.RoomID) {
	r.members.remove(roomID, sessionID)
	r.joined.remove(sessionID, roomID)
}

// LeaveAll discards every membership of a session and returns the rooms it left.
func (r *Rooms) LeaveAll(sessionID domain.SessionID) []domain.RoomID {
	rooms := r.joined.drain(sessionID)
	for _, roomID := range rooms {
		r.members.remove(roomID, sessionID)
	}
	return rooms
}

func (r *Rooms) Members(roomID domain.RoomID) []domain.SessionID {
	return r.members.members(roomID)
}

func (r *Rooms) RoomsOf(sessionID domain.SessionID) []domain.RoomID {
	return r.joined.members(sessionID)
}

func (r *Rooms) IsMember(sessionID domain.SessionID, roomID domain.RoomID) bool {
	return r.members.contains(roomID, sessionID)
}

// RoomCount is the number of rooms with at least one member.
func (r *Rooms) RoomCount() int {
	return r.members.len()
}
