package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/storefront"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

// HealthChecker is a dependency checked by the health endpoint
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

// Ping calls f
func (f HealthCheckFunc) Ping(ctx context.Context) error { return f(ctx) }

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	mode      storefront.Mode
	checks    map[string]HealthChecker
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. checks may be empty.
func NewSystemHandler(name, version string, mode storefront.Mode, checks map[string]HealthChecker) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		mode:      mode,
		checks:    checks,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string          `json:"name"`
	Version   string          `json:"version"`
	Mode      storefront.Mode `json:"mode"`
	GoVersion string          `json:"go_version"`
	Uptime    string          `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		Mode:      h.mode,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping is a liveness check that touches no dependency
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Health checks every registered dependency and answers 503 if any fails
func (h *SystemHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "healthy", Mode: h.mode}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	status := http.StatusOK
	for name, check := range h.checks {
		if err := check.Ping(c.Request.Context()); err != nil {
			logger.GetGinLogger(c).Warn("health check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = "unhealthy"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "healthy"
	}

	if status != http.StatusOK {
		body := dto.NewErrorResponseWithRequestID(dto.ErrCodeUnavailable,
			"One or more dependencies are unavailable", c.GetString(logger.GinRequestIDKey))
		body.Data = resp
		c.JSON(status, body)
		return
	}
	c.JSON(status, dto.NewSuccessResponse(resp))
}
