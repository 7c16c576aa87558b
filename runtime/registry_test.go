package runtime

import (
	"crew-dispatch/domain"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Two_Sessions_Then_Unregister(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given u1 connected from two devices
	registry.Register("s1", "u1")
	registry.Register("s2", "u1")
	req.ElementsMatch([]domain.SessionID{"s1", "s2"}, registry.SessionsFor("u1"))

	// When s1 goes away
	registry.Unregister("s1", "u1")

	// Then only s2 remains
	req.Equal([]domain.SessionID{"s2"}, registry.SessionsFor("u1"))

	// When s2 goes away too
	registry.Unregister("s2", "u1")

	// Then the user entry is gone
	req.Empty(registry.SessionsFor("u1"))
	req.False(registry.IsOnline("u1"))
	req.Zero(registry.UserCount())
}

func TestRegistry_Register_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Register("s1", "u1")
	registry.Register("s1", "u1")

	req.Equal([]domain.SessionID{"s1"}, registry.SessionsFor("u1"))
}

func TestRegistry_Unregister_Unknown_Session_Is_A_No_Op(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Register("s1", "u1")

	registry.Unregister("ghost", "u1")
	registry.Unregister("s1", "nobody")

	req.Equal([]domain.SessionID{"s1"}, registry.SessionsFor("u1"))
	req.Empty(registry.SessionsFor("nobody"))
}

func TestRegistry_A_Session_Has_At_Most_One_Owner(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.Register("s1", "u1")
	registry.Register("s1", "u2")

	req.Empty(registry.SessionsFor("u1"))
	req.Equal([]domain.SessionID{"s1"}, registry.SessionsFor("u2"))
	owner, ok := registry.OwnerOf("s1")
	req.True(ok)
	req.Equal(domain.UserID("u2"), owner)

	// A stale unregister from the previous owner does not steal the session
	registry.Unregister("s1", "u1")
	req.Equal([]domain.SessionID{"s1"}, registry.SessionsFor("u2"))
}

func TestRegistry_Concurrent_Connect_Disconnect(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	for u := 0; u < 8; u++ {
		userID := domain.UserID(fmt.Sprintf("u%d", u))
		for s := 0; s < 50; s++ {
			sessionID := domain.SessionID(fmt.Sprintf("%s-s%d", userID, s))
			wg.Add(1)
			go func() {
				defer wg.Done()
				registry.Register(sessionID, userID)
				registry.Unregister(sessionID, userID)
			}()
		}
	}
	wg.Wait()

	// Every user went offline: no empty set left behind
	req.Zero(registry.UserCount())
}
