package ports

import (
	"context"
	"time"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail looks up a user by exact email match and returns
	// domain.ErrUserNotFound on a miss.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLastLogin persists the last-login timestamp. Callers treat
	// failures as best-effort.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// Recent returns the most recently created users, newest first.
	Recent(ctx context.Context, limit int64) ([]domain.User, error)
}

// ProfileRepository fetches role-specific profile rows.
type ProfileRepository interface {
	// FindCustomer returns domain.ErrProfileNotFound on a miss.
	FindCustomer(ctx context.Context, customerID string) (*domain.CustomerProfile, error)

	// FindSupplier returns domain.ErrProfileNotFound on a miss.
	FindSupplier(ctx context.Context, supplierID string) (*domain.SupplierProfile, error)
}

// DashboardRepository issues the read-only aggregate queries behind the
// dashboards. All supplier/customer queries are scoped by reference id;
// no invariants beyond scoping are enforced here.
type DashboardRepository interface {
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
	CustomerOrders(ctx context.Context, customerID string, limit int64) ([]domain.OrderSummary, error)
	SupplierProducts(ctx context.Context, supplierID string, limit int64) ([]domain.ProductSummary, error)
	CountSupplierProducts(ctx context.Context, supplierID string) (int64, error)
}
