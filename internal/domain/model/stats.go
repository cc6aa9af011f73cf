package model

// Stats aggregates the order collection for the dashboard.
type Stats struct {
	TotalOrders     int     `json:"total_orders"`
	TodayOrders     int     `json:"today_orders"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	AvgPrice        float64 `json:"avg_price"`
	AvgResponseTime string  `json:"avg_response_time"`
	CompletionRate  string  `json:"completion_rate"`
}
