package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
)

// DriverHandler manages driver registry endpoints.
type DriverHandler struct {
	facade TaxiFacade
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(facade TaxiFacade) *DriverHandler {
	return &DriverHandler{facade: facade}
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.facade.Drivers(c.Request.Context(), model.DriverStatus(c.Query("status")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if drivers == nil {
		drivers = []model.Driver{}
	}
	c.JSON(http.StatusOK, dto.DriversResponse{Success: true, Count: len(drivers), Drivers: drivers})
}

// SetStatus handles PUT /api/driver/:id/status.
func (h *DriverHandler) SetStatus(c *gin.Context) {
	var req dto.DriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	err := h.facade.SetDriverStatus(c.Request.Context(), c.Param("id"), model.DriverStatus(req.Status))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Driver status updated"})
}
