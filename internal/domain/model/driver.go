package model

import "time"

// DriverStatus describes driver availability.
type DriverStatus string

const (
	DriverStatusFree    DriverStatus = "free"
	DriverStatusBusy    DriverStatus = "busy"
	DriverStatusOffline DriverStatus = "offline"
)

// ValidDriverStatus reports whether s is one of the known availability states.
func ValidDriverStatus(s DriverStatus) bool {
	switch s {
	case DriverStatusFree, DriverStatusBusy, DriverStatusOffline:
		return true
	}
	return false
}

// Coordinates is a driver's last known position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Driver describes a registered driver and their mutable availability status.
type Driver struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Car             string       `json:"car"`
	CarNumber       string       `json:"car_number"`
	Phone           string       `json:"phone"`
	Rating          float64      `json:"rating"`
	Status          DriverStatus `json:"status"`
	StatusUpdatedAt *time.Time   `json:"status_updated_at,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
}

// Info returns the identity snapshot embedded into orders.
func (d Driver) Info() DriverInfo {
	return DriverInfo{
		ID:        d.ID,
		Name:      d.Name,
		Car:       d.Car,
		CarNumber: d.CarNumber,
		Phone:     d.Phone,
		Rating:    d.Rating,
	}
}

// DefaultDrivers is the roster seeded when no persisted roster exists.
func DefaultDrivers() []Driver {
	return []Driver{
		{
			ID: "1", Name: "Ivan Petrov", Car: "Kia Rio 2020", CarNumber: "A123BV 777",
			Phone: "+7 (912) 345-67-89", Rating: 4.8, Status: DriverStatusFree,
			Coordinates: &Coordinates{Lat: 55.7558, Lng: 37.6176},
		},
		{
			ID: "2", Name: "Anna Sidorova", Car: "Hyundai Solaris 2021", CarNumber: "B456GD 777",
			Phone: "+7 (923) 456-78-90", Rating: 4.9, Status: DriverStatusFree,
			Coordinates: &Coordinates{Lat: 55.7614, Lng: 37.6098},
		},
		{
			ID: "3", Name: "Sergey Ivanov", Car: "Skoda Octavia 2019", CarNumber: "V789EZh 777",
			Phone: "+7 (934) 567-89-01", Rating: 4.7, Status: DriverStatusFree,
			Coordinates: &Coordinates{Lat: 55.7500, Lng: 37.6200},
		},
		{
			ID: "4", Name: "Maria Kuznetsova", Car: "Toyota Camry 2022", CarNumber: "G012ZI 777",
			Phone: "+7 (945) 678-90-12", Rating: 5.0, Status: DriverStatusFree,
			Coordinates: &Coordinates{Lat: 55.7700, Lng: 37.6300},
		},
	}
}
