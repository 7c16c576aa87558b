package e2e

import (
	"context"
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	"crew-dispatch/infrastructure/socket"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type DeliverySuite struct {
	BaseSuite
}

func TestDeliverySuite(t *testing.T) {
	suite.Run(t, new(DeliverySuite))
}

func (s *DeliverySuite) TestHealth_Is_Serving() {
	s.WithHealth("gRPC health", func(ctx context.Context, client healthpb.HealthClient) {
		res, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		s.Require().NoError(err)
		s.Require().Equal(healthpb.HealthCheckResponse_SERVING, res.GetStatus())
	})

	var body map[string]any
	s.Require().Equal(http.StatusOK, s.Do(http.MethodGet, "/api/health", "", nil, &body))
	s.Require().Equal("ok", body["status"])
}

func (s *DeliverySuite) TestPrivateMessage_Reaches_Live_Recipient() {
	req := s.Require()
	suffix := uuid.NewString()[:8]
	alice, bob := "alice-"+suffix, "bob-"+suffix

	// Given an admin token and two approved users
	admin, err := auth.NewTokens(s.Config.JWTSecret, time.Hour).GenerateToken("e2e-admin", []string{string(domain.RoleAdmin)})
	req.NoError(err)
	for _, id := range []string{alice, bob} {
		status := s.Do(http.MethodPut, "/api/hooks/users/"+id, admin,
			map[string]any{"name": id, "isApproved": true}, nil)
		req.Equal(http.StatusOK, status)
	}
	var issued struct {
		Token string `json:"token"`
	}
	req.Equal(http.StatusCreated, s.Do(http.MethodPost, "/api/hooks/users/"+alice+"/token", admin, nil, &issued))
	req.NotEmpty(issued.Token)

	// And bob identified on a live socket
	conn := s.Dial("bob socket")
	defer conn.Close()
	s.expect(conn, socket.EventConnected)
	identity, err := json.Marshal(bob)
	req.NoError(err)
	req.NoError(conn.WriteJSON(socket.Frame{Event: socket.EventSetUserID, Data: identity}))
	s.expect(conn, socket.EventIdentified)

	// When alice sends him a private message over REST
	req.Equal(http.StatusCreated, s.Do(http.MethodPost, "/api/messages/private/"+bob, issued.Token,
		map[string]string{"content": "hello " + bob}, nil))

	// Then bob's socket receives it
	frame := s.expect(conn, domain.EventPrivateMessage)
	req.Contains(string(frame.Data), "hello "+bob)
}

// expect reads frames until one of the given event arrives.
func (s *DeliverySuite) expect(conn *websocket.Conn, event string) socket.Frame {
	deadline := time.Now().Add(5 * time.Second)
	s.Require().NoError(conn.SetReadDeadline(deadline))
	for {
		var frame socket.Frame
		err := conn.ReadJSON(&frame)
		s.Require().NoError(err, fmt.Sprintf("waiting for %s", event))
		s.T().Logf("<- %s %s", frame.Event, string(frame.Data))
		if frame.Event == event {
			return frame
		}
	}
}
