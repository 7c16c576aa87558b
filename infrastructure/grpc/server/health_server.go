package server

import (
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DeliveryService is the service name reported next to the overall "" status.
const DeliveryService = "crew-dispatch.Delivery"

// HealthServer exposes the standard gRPC health protocol. Its status is driven
// by the health monitoring worker through Report.
type HealthServer struct {
	server  *health.Server
	serving atomic.Bool
	stats   func() map[string]any
}

func NewHealthServer(stats func() map[string]any) *HealthServer {
	s := &HealthServer{server: health.NewServer(), stats: stats}
	s.Report(true)
	return s
}

func (s *HealthServer) Register(g *grpc.Server) {
	healthpb.RegisterHealthServer(g, s.server)
}

func (s *HealthServer) Report(serving bool) {
	s.serving.Store(serving)
	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.server.SetServingStatus("", status)
	s.server.SetServingStatus(DeliveryService, status)
}

// Snapshot is the same status for the HTTP health route.
func (s *HealthServer) Snapshot() (bool, map[string]any) {
	var stats map[string]any
	if s.stats != nil {
		stats = s.stats()
	}
	return s.serving.Load(), stats
}

// Shutdown flips every service to NOT_SERVING so watchers see the drain.
func (s *HealthServer) Shutdown() {
	s.server.Shutdown()
}
