package httpserver

import (
	"github.com/gin-gonic/gin"

	"roi-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From ROI API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "roi-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. The service is stateless;
// readiness reports whether the optional PDF and email paths are wired.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":     "ready",
		"message":    HealthMessage,
		"version":    HealthVersion,
		"service":    ServiceName,
		"properties": len(srv.calculatorConfig.Catalog.Properties),
		"pdf":        srv.renderer != nil,
		"email":      srv.sender != nil,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
