package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the blog API.
// The empty name reports the status of the whole server.
const ServiceName = "blog.api"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service and server
// reflection. The health status follows the server lifecycle and, when a
// Pinger is configured, the reachability of the database.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both services start as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing marks the server as ready to accept requests.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks the server as draining. Any running [Handler.Watch]
// loop stops updating the status once Shutdown is called.
func (h *Handler) SetNotServing() {
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Shutdown sets every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Watch pings the dependency every interval until ctx is done and reflects
// the outcome in the health status. It returns immediately without a Pinger.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	if h.pinger == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := h.pinger.Ping(pingCtx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		h.SetNotServing()
		return
	}
	h.SetServing()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
