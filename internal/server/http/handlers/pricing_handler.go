package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// PricingHandler quotes trip fares.
type PricingHandler struct {
	facade TaxiFacade
}

// NewPricingHandler constructs PricingHandler.
func NewPricingHandler(facade TaxiFacade) *PricingHandler {
	return &PricingHandler{facade: facade}
}

// Calculate handles POST /api/calculate-price.
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	carType := req.CarType
	if carType == "" {
		carType = "economy"
	}
	distance := usecase.DefaultDistanceKm
	if req.Distance != nil {
		distance = *req.Distance
	}

	c.JSON(http.StatusOK, dto.PriceResponse{
		Success:  true,
		Price:    h.facade.CalculatePrice(carType, distance),
		Currency: usecase.PriceCurrency,
		CarType:  carType,
		Distance: distance,
	})
}
