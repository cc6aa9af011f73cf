package dto

import "github.com/53400755Maria/taxi-service/internal/domain/model"

// DriversResponse lists drivers with their count.
type DriversResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Drivers []model.Driver `json:"drivers"`
}

// DriverStatusRequest carries a driver availability transition.
type DriverStatusRequest struct {
	Status string `json:"status"`
}
