package dto

// PriceRequest asks for a fare quote. Distance is optional; the service
// assumes its default trip length when absent.
type PriceRequest struct {
	CarType  string   `json:"carType"`
	Distance *float64 `json:"distance"`
}

// PriceResponse is a fare quote. Currency is a fixed tag, never persisted.
type PriceResponse struct {
	Success  bool    `json:"success"`
	Price    int64   `json:"price"`
	Currency string  `json:"currency"`
	CarType  string  `json:"car_type"`
	Distance float64 `json:"distance"`
}
