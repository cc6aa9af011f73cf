package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
)

const (
	serviceName    = "taxi-order-service"
	serviceVersion = "1.0.0"
)

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serviceVersion,
	})
}
