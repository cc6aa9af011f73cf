package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade TaxiFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade TaxiFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderRequest{
		From:    req.From,
		To:      req.To,
		Phone:   req.Phone,
		CarType: req.CarType,
		Payment: req.Payment,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
		Driver: dto.AssignedDriver{
			Name:  order.Driver.Name,
			Car:   order.Driver.Car,
			Phone: order.Driver.Phone,
		},
		Price:            order.Price,
		EstimatedArrival: order.EstimatedArrival,
		Message:          "Order created successfully",
	})
}

// Get handles GET /api/order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderResponse{Success: true, Order: *order})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))

	var limit int
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	orders, err := h.facade.Orders(c.Request.Context(), status, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Count: len(orders), Orders: orders})
}

// Update handles PUT /api/order/:id with a partial set of order fields.
func (h *OrderHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), fields); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Order updated"})
}

// Cancel handles POST /api/order/:id/cancel. The body is optional.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.facade.CancelOrder(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Order cancelled"})
}
