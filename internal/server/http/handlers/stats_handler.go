package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// StatsHandler serves aggregate statistics and the admin cleanup endpoint.
type StatsHandler struct {
	facade TaxiFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade TaxiFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Stats handles GET /api/stats.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: *stats})
}

// Cleanup handles POST /api/admin/cleanup. The body is optional; the default
// retention window applies when no days value is given.
func (h *StatsHandler) Cleanup(c *gin.Context) {
	var req dto.CleanupRequest
	_ = c.ShouldBindJSON(&req)

	days := usecase.DefaultRetentionDays
	if req.Days != nil {
		days = *req.Days
	}

	removed, remaining, err := h.facade.CleanupOrders(c.Request.Context(), days)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CleanupResponse{
		Success:   true,
		Message:   fmt.Sprintf("Removed %d old orders", removed),
		Remaining: remaining,
	})
}
