package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/middleware"
	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

type stubDashboardService struct {
	adminFn    func(ctx context.Context) (*ports.AdminOverview, error)
	customerFn func(ctx context.Context, customerID string) (*ports.CustomerOverview, error)
	supplierFn func(ctx context.Context, supplierID string) (*ports.SupplierOverview, error)
}

func (s *stubDashboardService) AdminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	return s.adminFn(ctx)
}

func (s *stubDashboardService) CustomerOverview(ctx context.Context, customerID string) (*ports.CustomerOverview, error) {
	return s.customerFn(ctx, customerID)
}

func (s *stubDashboardService) SupplierOverview(ctx context.Context, supplierID string) (*ports.SupplierOverview, error) {
	return s.supplierFn(ctx, supplierID)
}

func dashboardContext(e *echo.Echo, path string, identity *domain.SessionIdentity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(middleware.ContextIdentity, identity)
	}
	return c, rec
}

func TestDashboardHandler_Admin(t *testing.T) {
	e := echo.New()
	svc := &stubDashboardService{
		adminFn: func(_ context.Context) (*ports.AdminOverview, error) {
			return &ports.AdminOverview{
				Stats: domain.AdminStats{Customers: 7, Suppliers: 4, Products: 31, Orders: 12},
				RecentUsers: []domain.UserSummary{
					{Email: "new@example.com", Role: domain.RoleCustomer, Name: "Ada Okafor"},
				},
			}, nil
		},
	}
	h := NewDashboardHandler(svc, zerolog.Nop())

	c, rec := dashboardContext(e, "/dashboards/admin_dashboard", &domain.SessionIdentity{
		UserID: "u1", Role: domain.RoleAdmin, DisplayName: "Admin",
	})
	if err := h.Admin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var overview ports.AdminOverview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if overview.Stats.Orders != 12 || len(overview.RecentUsers) != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestDashboardHandler_Customer_ScopesByReferenceID(t *testing.T) {
	e := echo.New()
	var askedFor string
	svc := &stubDashboardService{
		customerFn: func(_ context.Context, customerID string) (*ports.CustomerOverview, error) {
			askedFor = customerID
			return &ports.CustomerOverview{
				Profile: domain.CustomerProfile{ID: customerID, FirstName: "Ada", LastName: "Okafor"},
			}, nil
		},
	}
	h := NewDashboardHandler(svc, zerolog.Nop())

	c, rec := dashboardContext(e, "/dashboards/customer_dashboard", &domain.SessionIdentity{
		UserID: "u2", Role: domain.RoleCustomer, ReferenceID: "c9",
	})
	if err := h.Customer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// The scope comes from the session, never from the request.
	if askedFor != "c9" {
		t.Fatalf("expected scope c9, got %q", askedFor)
	}
}

func TestDashboardHandler_Supplier_StockCounters(t *testing.T) {
	e := echo.New()
	svc := &stubDashboardService{
		supplierFn: func(_ context.Context, supplierID string) (*ports.SupplierOverview, error) {
			return &ports.SupplierOverview{
				Profile: domain.SupplierProfile{ID: supplierID, Name: "Acme Parts"},
				Stock:   domain.StockStats{Total: 4, InStock: 1, LowStock: 2, OutOfStock: 1},
			}, nil
		},
	}
	h := NewDashboardHandler(svc, zerolog.Nop())

	c, rec := dashboardContext(e, "/dashboards/supplier_dashboard", &domain.SessionIdentity{
		UserID: "u3", Role: domain.RoleSupplier, ReferenceID: "s4",
	})
	if err := h.Supplier(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var overview ports.SupplierOverview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if overview.Stock.LowStock != 2 || overview.Stock.Total != 4 {
		t.Fatalf("unexpected stock counters: %+v", overview.Stock)
	}
}

func TestDashboardHandler_MissingIdentity(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubDashboardService{}, zerolog.Nop())

	c, _ := dashboardContext(e, "/dashboards/admin_dashboard", nil)
	err := h.Admin(c)

	var httpErr *echo.HTTPError
	if !asHTTPError(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestDashboardHandler_NonAdminNeedsReferenceID(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubDashboardService{
		customerFn: func(_ context.Context, _ string) (*ports.CustomerOverview, error) {
			t.Fatalf("service must not run without a profile reference")
			return nil, nil
		},
	}, zerolog.Nop())

	c, _ := dashboardContext(e, "/dashboards/customer_dashboard", &domain.SessionIdentity{
		UserID: "u5", Role: domain.RoleCustomer, ReferenceID: "",
	})
	err := h.Customer(c)

	var httpErr *echo.HTTPError
	if !asHTTPError(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestDashboardHandler_QueryFailure(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubDashboardService{
		supplierFn: func(_ context.Context, _ string) (*ports.SupplierOverview, error) {
			return nil, context.DeadlineExceeded
		},
	}, zerolog.Nop())

	c, rec := dashboardContext(e, "/dashboards/supplier_dashboard", &domain.SessionIdentity{
		UserID: "u3", Role: domain.RoleSupplier, ReferenceID: "s4",
	})
	if err := h.Supplier(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decodeStatus(t, rec); resp.Message != "Failed to load dashboard. Please try again." {
		t.Fatalf("internal detail leaked: %q", resp.Message)
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}
