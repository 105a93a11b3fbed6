package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// recentLimit caps the "recent records" tables on every dashboard.
const recentLimit = 10

// DashboardService aggregates role-scoped views. It runs strictly after
// the authorization middleware; a failing query here can never widen
// access, only fail the page.
type DashboardService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	repo     ports.DashboardRepository
	resolver ports.ProfileResolver
	log      zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	repo ports.DashboardRepository,
	resolver ports.ProfileResolver,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{users: users, profiles: profiles, repo: repo, resolver: resolver, log: log}
}

// AdminOverview returns system-wide counts plus the ten newest users
// with their display names resolved.
func (s *DashboardService) AdminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	stats, err := s.repo.AdminStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}

	users, err := s.users.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("admin overview: recent users: %w", err)
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		name, err := s.resolver.Resolve(ctx, u.Role, u.ReferenceID)
		if err != nil {
			// An orphaned credential must not blank the whole admin view;
			// log the fault and show the row without a name.
			s.log.Error().Err(err).Str("user_id", u.ID).Msg("orphaned credential in recent users")
			name = ""
		}
		summaries = append(summaries, domain.UserSummary{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			Name:      name,
			IsActive:  u.IsActive,
			LastLogin: u.LastLogin,
			CreatedAt: u.CreatedAt,
		})
	}

	return &ports.AdminOverview{Stats: *stats, RecentUsers: summaries}, nil
}

// CustomerOverview returns the customer's profile and recent orders.
func (s *DashboardService) CustomerOverview(ctx context.Context, customerID string) (*ports.CustomerOverview, error) {
	profile, err := s.profiles.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer overview: %w", err)
	}

	orders, err := s.repo.CustomerOrders(ctx, customerID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("customer overview: orders: %w", err)
	}

	return &ports.CustomerOverview{Profile: *profile, Orders: orders}, nil
}

// SupplierOverview returns the supplier's profile, recent products with
// stock classification, and the stock counters.
func (s *DashboardService) SupplierOverview(ctx context.Context, supplierID string) (*ports.SupplierOverview, error) {
	profile, err := s.profiles.FindSupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier overview: %w", err)
	}

	products, err := s.repo.SupplierProducts(ctx, supplierID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("supplier overview: products: %w", err)
	}

	total, err := s.repo.CountSupplierProducts(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier overview: count products: %w", err)
	}

	stock := domain.StockStats{Total: total}
	for _, p := range products {
		switch p.StockStatus {
		case domain.StockIn:
			stock.InStock++
		case domain.StockLow:
			stock.LowStock++
		case domain.StockOut:
			stock.OutOfStock++
		}
	}

	return &ports.SupplierOverview{Profile: *profile, Products: products, Stock: stock}, nil
}
