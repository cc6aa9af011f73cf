package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/53400755Maria/taxi-service/internal/domain/errors"
	"github.com/53400755Maria/taxi-service/internal/domain/model"
	"github.com/53400755Maria/taxi-service/internal/server/http/dto"
	testhelpers "github.com/53400755Maria/taxi-service/internal/test"
	"github.com/53400755Maria/taxi-service/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var _ TaxiFacade = testhelpers.TaxiFacadeStub{}

func newTestRouter(facade TaxiFacade) *gin.Engine {
	engine := gin.New()
	orderHandler := NewOrderHandler(facade)
	driverHandler := NewDriverHandler(facade)
	pricingHandler := NewPricingHandler(facade)
	statsHandler := NewStatsHandler(facade)

	engine.GET("/api/health", Health)
	engine.GET("/api/orders", orderHandler.List)
	engine.POST("/api/order", orderHandler.Create)
	engine.GET("/api/order/:id", orderHandler.Get)
	engine.PUT("/api/order/:id", orderHandler.Update)
	engine.POST("/api/order/:id/cancel", orderHandler.Cancel)
	engine.GET("/api/stats", statsHandler.Stats)
	engine.GET("/api/drivers", driverHandler.List)
	engine.PUT("/api/driver/:id/status", driverHandler.SetStatus)
	engine.POST("/api/calculate-price", pricingHandler.Calculate)
	engine.POST("/api/admin/cleanup", statsHandler.Cleanup)
	return engine
}

func performRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", resp.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	resp := performRequest(t, newTestRouter(testhelpers.TaxiFacadeStub{}), http.MethodGet, "/api/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body dto.HealthResponse
	decodeBody(t, resp, &body)
	if body.Status != "ok" || body.Service != "taxi-order-service" {
		t.Fatalf("unexpected health body: %+v", body)
	}
}

func TestCreateOrder(t *testing.T) {
	var captured usecase.CreateOrderRequest
	facade := testhelpers.TaxiFacadeStub{
		CreateOrderFn: func(_ context.Context, req usecase.CreateOrderRequest) (*model.Order, error) {
			captured = req
			info := model.DefaultDrivers()[0].Info()
			return &model.Order{
				ID:               "ORD-20240601120000-AB12",
				Driver:           &info,
				Price:            150,
				EstimatedArrival: 9,
			}, nil
		},
	}

	body := `{"from":"Tverskaya 1","to":"Arbat 10","phone":"+7 (900) 000-00-00","carType":"economy","payment":"cash"}`
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	if captured.From != "Tverskaya 1" || captured.CarType != "economy" {
		t.Fatalf("unexpected request passed to facade: %+v", captured)
	}

	var out dto.CreateOrderResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.OrderID != "ORD-20240601120000-AB12" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Driver.Name != "Ivan Petrov" || out.Price != 150 || out.EstimatedArrival != 9 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Message != "Order created successfully" {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestCreateOrderInvalidJSON(t *testing.T) {
	resp := performRequest(t, newTestRouter(testhelpers.TaxiFacadeStub{}), http.MethodPost, "/api/order", "{broken")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCreateOrderMissingField(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (*model.Order, error) {
			return nil, domainErrors.NewMissingField("phone")
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order", `{"from":"a","to":"b"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	if out.Success || out.Error != "missing field phone" {
		t.Fatalf("unexpected error body: %+v", out)
	}
}

func TestCreateOrderNoDriver(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		CreateOrderFn: func(context.Context, usecase.CreateOrderRequest) (*model.Order, error) {
			return nil, domainErrors.ErrNoDriverAvailable
		},
	}
	body := `{"from":"a","to":"b","phone":"c","carType":"economy","payment":"cash"}`
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order", body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	if out.Error != "no available drivers" {
		t.Fatalf("unexpected error body: %+v", out)
	}
}

func TestGetOrder(t *testing.T) {
	resp := performRequest(t, newTestRouter(testhelpers.TaxiFacadeStub{}), http.MethodGet, "/api/order/ORD-1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out dto.OrderResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Order.ID != "ORD-1" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		OrderFn: func(context.Context, string) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodGet, "/api/order/ORD-404", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListOrdersPassesFilters(t *testing.T) {
	var gotStatus model.OrderStatus
	var gotLimit int
	facade := testhelpers.TaxiFacadeStub{
		OrdersFn: func(_ context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
			gotStatus = status
			gotLimit = limit
			return nil, nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodGet, "/api/orders?status=accepted&limit=5", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotStatus != model.OrderStatusAccepted || gotLimit != 5 {
		t.Fatalf("unexpected filters: %q %d", gotStatus, gotLimit)
	}

	var out dto.OrdersResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Count != 0 || out.Orders == nil {
		t.Fatalf("expected an empty array, got %+v", out)
	}
}

func TestListOrdersIgnoresBadLimit(t *testing.T) {
	var gotLimit int
	facade := testhelpers.TaxiFacadeStub{
		OrdersFn: func(_ context.Context, _ model.OrderStatus, limit int) ([]model.Order, error) {
			gotLimit = limit
			return []model.Order{}, nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodGet, "/api/orders?limit=many", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotLimit != 0 {
		t.Fatalf("expected unparsable limit ignored, got %d", gotLimit)
	}
}

func TestUpdateOrder(t *testing.T) {
	var gotFields map[string]any
	facade := testhelpers.TaxiFacadeStub{
		UpdateOrderFn: func(_ context.Context, id string, fields map[string]any) error {
			if id != "ORD-1" {
				t.Fatalf("unexpected id %s", id)
			}
			gotFields = fields
			return nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPut, "/api/order/ORD-1", `{"status":"completed"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotFields["status"] != "completed" {
		t.Fatalf("unexpected fields: %+v", gotFields)
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		UpdateOrderFn: func(context.Context, string, map[string]any) error {
			return domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPut, "/api/order/ORD-404", `{"price":1}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCancelOrder(t *testing.T) {
	var gotReason string
	facade := testhelpers.TaxiFacadeStub{
		CancelOrderFn: func(_ context.Context, _, reason string) error {
			gotReason = reason
			return nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order/ORD-1/cancel", `{"reason":"Changed my mind"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotReason != "Changed my mind" {
		t.Fatalf("unexpected reason %q", gotReason)
	}
}

func TestCancelOrderWithoutBody(t *testing.T) {
	var called bool
	facade := testhelpers.TaxiFacadeStub{
		CancelOrderFn: func(_ context.Context, _, reason string) error {
			called = true
			if reason != "" {
				t.Fatalf("expected empty reason, got %q", reason)
			}
			return nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order/ORD-1/cancel", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !called {
		t.Fatal("expected the facade to be called")
	}
}

func TestCancelOrderTerminal(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		CancelOrderFn: func(context.Context, string, string) error {
			return domainErrors.ErrInvalidTransition
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/order/ORD-1/cancel", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListDrivers(t *testing.T) {
	resp := performRequest(t, newTestRouter(testhelpers.TaxiFacadeStub{}), http.MethodGet, "/api/drivers", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out dto.DriversResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Count != 4 || len(out.Drivers) != 4 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSetDriverStatus(t *testing.T) {
	var gotID string
	var gotStatus model.DriverStatus
	facade := testhelpers.TaxiFacadeStub{
		SetDriverStatusFn: func(_ context.Context, id string, status model.DriverStatus) error {
			gotID = id
			gotStatus = status
			return nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPut, "/api/driver/2/status", `{"status":"offline"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotID != "2" || gotStatus != model.DriverStatusOffline {
		t.Fatalf("unexpected call: %q %q", gotID, gotStatus)
	}
}

func TestSetDriverStatusInvalid(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		SetDriverStatusFn: func(context.Context, string, model.DriverStatus) error {
			return domainErrors.ErrInvalidStatus
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPut, "/api/driver/2/status", `{"status":"sleeping"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSetDriverStatusUnknownDriver(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		SetDriverStatusFn: func(context.Context, string, model.DriverStatus) error {
			return domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPut, "/api/driver/99/status", `{"status":"free"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCalculatePrice(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		CalculatePriceFn: func(carType string, distance float64) int64 {
			if carType != "business" || distance != 20 {
				t.Fatalf("unexpected call: %q %v", carType, distance)
			}
			return 600
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/calculate-price", `{"carType":"business","distance":20}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out dto.PriceResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Price != 600 || out.Currency != "RUB" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.CarType != "business" || out.Distance != 20 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestCalculatePriceDefaults(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		CalculatePriceFn: func(carType string, distance float64) int64 {
			if carType != "economy" || distance != usecase.DefaultDistanceKm {
				t.Fatalf("unexpected call: %q %v", carType, distance)
			}
			return 150
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/calculate-price", `{}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestStats(t *testing.T) {
	facade := testhelpers.TaxiFacadeStub{
		OrderStatsFn: func(context.Context) (*model.Stats, error) {
			return &model.Stats{
				TotalOrders:     3,
				CompletedOrders: 1,
				AvgPrice:        200,
				AvgResponseTime: "7 min",
				CompletionRate:  "33.3%",
			}, nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodGet, "/api/stats", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out dto.StatsResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Stats.TotalOrders != 3 || out.Stats.CompletionRate != "33.3%" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestCleanup(t *testing.T) {
	var gotDays int
	facade := testhelpers.TaxiFacadeStub{
		CleanupOrdersFn: func(_ context.Context, days int) (int, int, error) {
			gotDays = days
			return 2, 5, nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/admin/cleanup", `{"days":7}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotDays != 7 {
		t.Fatalf("expected 7 days, got %d", gotDays)
	}
	var out dto.CleanupResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Message != "Removed 2 old orders" || out.Remaining != 5 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestCleanupDefaultWindow(t *testing.T) {
	var gotDays int
	facade := testhelpers.TaxiFacadeStub{
		CleanupOrdersFn: func(_ context.Context, days int) (int, int, error) {
			gotDays = days
			return 0, 0, nil
		},
	}
	resp := performRequest(t, newTestRouter(facade), http.MethodPost, "/api/admin/cleanup", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotDays != usecase.DefaultRetentionDays {
		t.Fatalf("expected default window, got %d", gotDays)
	}
}
