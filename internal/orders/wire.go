//go:build wireinject
// +build wireinject

package orders

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	handler "github.com/freshfarm/storefront/internal/orders/delivery/http"
	"github.com/freshfarm/storefront/internal/orders/domain"
	"github.com/freshfarm/storefront/internal/orders/repository"
	"github.com/freshfarm/storefront/internal/orders/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

func ProvideListOrdersHandler(repo domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHandler initializes the order handler with all dependencies
func InitializeHandler(db *gorm.DB) (*handler.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		handler.NewOrderHandlerWithDI,
	)
	return nil, nil
}
