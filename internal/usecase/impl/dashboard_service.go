package impl

import (
	"context"

	"furnishop/internal/usecase"
)

type dashboardService struct {
	session usecase.SessionUsecase
	catalog usecase.CatalogUsecase
	orders  usecase.OrderUsecase
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	session usecase.SessionUsecase,
	catalog usecase.CatalogUsecase,
	orders usecase.OrderUsecase,
) usecase.DashboardUsecase {
	return &dashboardService{
		session: session,
		catalog: catalog,
		orders:  orders,
	}
}

func (srv *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	products, err := srv.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := srv.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	users, err := srv.session.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardStats{
		Products: len(products),
		Orders:   len(orders),
		Users:    len(users),
	}, nil
}
