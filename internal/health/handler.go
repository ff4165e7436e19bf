package health

import (
	"context"
	"sort"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	healthy   = "healthy"
	unhealthy = "unhealthy"
)

// Checker defines the interface for checking service health.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.Client to Checker interface.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Info describes the running build.
type Info struct {
	Version     string
	Environment string
}

// Handler handles health check operations.
type Handler struct {
	info    Info
	checks  map[string]Checker
	started time.Time
	now     func() time.Time
}

// NewHandler creates a health handler reporting on the named dependencies.
func NewHandler(info Info, checks map[string]Checker) *Handler {
	return &Handler{
		info:    info,
		checks:  checks,
		started: time.Now(),
		now:     time.Now,
	}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Success     bool              `json:"success"`
		Status      string            `json:"status"`
		Message     string            `json:"message"`
		Timestamp   time.Time         `json:"timestamp"`
		Uptime      float64           `json:"uptime" doc:"Seconds since the process started"`
		Version     string            `json:"version"`
		Environment string            `json:"environment"`
		Checks      map[string]string `json:"checks,omitempty"`
	}
}

// Check reports liveness. A failing dependency degrades the status but never fails the request.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	now := h.now()

	resp := &Response{}
	resp.Body.Success = true
	resp.Body.Status = StatusOK
	resp.Body.Message = "API is healthy"
	resp.Body.Timestamp = now.UTC()
	resp.Body.Uptime = now.Sub(h.started).Seconds()
	resp.Body.Version = h.info.Version
	resp.Body.Environment = h.info.Environment

	if len(h.checks) > 0 {
		resp.Body.Checks = make(map[string]string, len(h.checks))
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			resp.Body.Checks[name] = unhealthy
			resp.Body.Status = StatusDegraded
			resp.Body.Message = "API is running with degraded dependencies"

			continue
		}

		resp.Body.Checks[name] = healthy
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      "GET",
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Check)
}
