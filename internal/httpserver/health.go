package httpserver

import (
	"net/http"

	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Brand insight API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "insight-srv"
)

const (
	statusConnected   = "connected"
	statusUnavailable = "unavailable"
	statusDisabled    = "disabled"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports the analytics backend, Redis and Kafka.
// An unreachable backend does not fail readiness since every read falls back to generated data.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	redisStatus := statusDisabled
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		redisStatus = statusConnected
	}

	kafkaStatus := statusDisabled
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Kafka producer unavailable",
				"error":   err.Error(),
			})
			return
		}
		kafkaStatus = statusConnected
	}

	backendStatus := statusUnavailable
	if srv.analyticsUC != nil && srv.analyticsUC.CheckHealth(ctx) {
		backendStatus = statusConnected
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"backend": backendStatus,
		"mock":    srv.config.Backend.UseMock,
		"redis":   redisStatus,
		"kafka":   kafkaStatus,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
