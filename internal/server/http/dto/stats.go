package dto

import "github.com/53400755Maria/taxi-service/internal/domain/model"

// StatsResponse wraps the aggregate order statistics.
type StatsResponse struct {
	Success bool        `json:"success"`
	Stats   model.Stats `json:"stats"`
}

// CleanupRequest optionally overrides the retention window in days.
type CleanupRequest struct {
	Days *int `json:"days"`
}

// CleanupResponse reports a finished cleanup pass.
type CleanupResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Remaining int    `json:"remaining"`
}
