package usecase

import "context"

// DashboardStats are the admin overview counters.
type DashboardStats struct {
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Users    int `json:"users"`
}

// DashboardUsecase aggregates the admin overview.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
