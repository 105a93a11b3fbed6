package ports

import (
	"context"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// AdminOverview is the admin dashboard view model.
type AdminOverview struct {
	Stats       domain.AdminStats    `json:"stats"`
	RecentUsers []domain.UserSummary `json:"recent_users"`
}

// CustomerOverview is the customer dashboard view model.
type CustomerOverview struct {
	Profile domain.CustomerProfile `json:"profile"`
	Orders  []domain.OrderSummary  `json:"orders"`
}

// SupplierOverview is the supplier dashboard view model.
type SupplierOverview struct {
	Profile  domain.SupplierProfile  `json:"profile"`
	Products []domain.ProductSummary `json:"products"`
	Stock    domain.StockStats       `json:"stock"`
}

// DashboardService aggregates role-scoped data for rendering. The
// authorization check has already happened by the time these run; the
// service only scopes, it never re-authorizes.
type DashboardService interface {
	AdminOverview(ctx context.Context) (*AdminOverview, error)
	CustomerOverview(ctx context.Context, customerID string) (*CustomerOverview, error)
	SupplierOverview(ctx context.Context, supplierID string) (*SupplierOverview, error)
}
