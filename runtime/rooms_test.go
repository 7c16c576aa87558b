package runtime

import (
	"crew-dispatch/domain"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRooms_Join_Is_Per_Session(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms()

	// Given two sessions of the same user, only one joined the event room
	rooms.Join("s1", "event_e1")

	// Then only that session is a member
	req.Equal([]domain.SessionID{"s1"}, rooms.Members("event_e1"))
	req.True(rooms.IsMember("s1", "event_e1"))
	req.False(rooms.IsMember("s2", "event_e1"))
}

func TestRooms_Leave_Drops_Empty_Room(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms()
	rooms.Join("s1", "event_e1")
	rooms.Join("s1", "event_e1")

	// When the only member leaves
	rooms.Leave("s1", "event_e1")

	// Then the room no longer exists
	req.Empty(rooms.Members("event_e1"))
	req.Zero(rooms.RoomCount())

	// And leaving again is harmless
	rooms.Leave("s1", "event_e1")
}

func TestRooms_LeaveAll_Returns_Left_Rooms(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms()
	rooms.Join("s1", "event_e1")
	rooms.Join("s1", "event_e2")
	rooms.Join("s2", "event_e2")

	// When s1 disconnects
	left := rooms.LeaveAll("s1")

	// Then both of its rooms are reported and s2 stays in e2
	req.ElementsMatch([]domain.RoomID{"event_e1", "event_e2"}, left)
	req.Empty(rooms.RoomsOf("s1"))
	req.Equal([]domain.SessionID{"s2"}, rooms.Members("event_e2"))
	req.Equal(1, rooms.RoomCount())
}

func TestRooms_Concurrent_Join_Leave(t *testing.T) {
	req := require.New(t)
	rooms := NewRooms()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session := domain.SessionID(fmt.Sprintf("s%d", i))
			rooms.Join(session, "event_e1")
			if i%2 == 0 {
				rooms.Leave(session, "event_e1")
			}
		}(i)
	}
	wg.Wait()

	req.Len(rooms.Members("event_e1"), 25)
}
