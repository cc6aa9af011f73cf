package test

import (
	"context"
	"sync"

	"github.com/53400755Maria/taxi-service/internal/domain/model"
)

// OrderRepositoryStub keeps the orders collection in memory and counts saves.
type OrderRepositoryStub struct {
	mu        sync.Mutex
	Orders    []model.Order
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// Load returns a copy of the stored collection.
func (s *OrderRepositoryStub) Load(context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// Save replaces the stored collection.
func (s *OrderRepositoryStub) Save(_ context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Orders = make([]model.Order, len(orders))
	copy(s.Orders, orders)
	return nil
}

// Stored returns a snapshot of the current collection.
func (s *OrderRepositoryStub) Stored() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out
}

// DriverRepositoryStub keeps the driver roster in memory and counts saves.
type DriverRepositoryStub struct {
	mu        sync.Mutex
	Drivers   []model.Driver
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// Load returns a copy of the stored roster.
func (s *DriverRepositoryStub) Load(context.Context) ([]model.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]model.Driver, len(s.Drivers))
	copy(out, s.Drivers)
	return out, nil
}

// Save replaces the stored roster.
func (s *DriverRepositoryStub) Save(_ context.Context, drivers []model.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Drivers = make([]model.Driver, len(drivers))
	copy(s.Drivers, drivers)
	return nil
}

// Stored returns a snapshot of the current roster.
func (s *DriverRepositoryStub) Stored() []model.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Driver, len(s.Drivers))
	copy(out, s.Drivers)
	return out
}
