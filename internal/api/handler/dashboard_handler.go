package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/metrics"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard views. Authorization
// is enforced by the session and RBAC middleware before these run; a
// failure here is a data problem, never an access decision.
type DashboardHandler struct {
	dashboards ports.DashboardService
	log        zerolog.Logger
}

func NewDashboardHandler(dashboards ports.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, log: log}
}

// Admin returns system-wide counts and the newest users.
//
// @Summary      Admin dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.AdminOverview
// @Failure      500  {object}  statusResponse
// @Router       /dashboards/admin_dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	start := time.Now()
	overview, err := h.dashboards.AdminOverview(c.Request().Context())
	metrics.DashboardQueryDuration.WithLabelValues("admin").Observe(time.Since(start).Seconds())
	if err != nil {
		h.log.Error().Err(err).Msg("admin dashboard load failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgDashboardFailed})
	}

	metrics.DashboardRequestsTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusOK, overview)
}

// Customer returns the caller's profile and recent orders.
//
// @Summary      Customer dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.CustomerOverview
// @Failure      500  {object}  statusResponse
// @Router       /dashboards/customer_dashboard [get]
func (h *DashboardHandler) Customer(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	overview, err := h.dashboards.CustomerOverview(c.Request().Context(), identity.ReferenceID)
	metrics.DashboardQueryDuration.WithLabelValues("customer").Observe(time.Since(start).Seconds())
	if err != nil {
		h.log.Error().Err(err).Str("customer_id", identity.ReferenceID).Msg("customer dashboard load failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgDashboardFailed})
	}

	metrics.DashboardRequestsTotal.WithLabelValues("customer").Inc()
	return c.JSON(http.StatusOK, overview)
}

// Supplier returns the caller's profile, products, and stock counters.
//
// @Summary      Supplier dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  ports.SupplierOverview
// @Failure      500  {object}  statusResponse
// @Router       /dashboards/supplier_dashboard [get]
func (h *DashboardHandler) Supplier(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	overview, err := h.dashboards.SupplierOverview(c.Request().Context(), identity.ReferenceID)
	metrics.DashboardQueryDuration.WithLabelValues("supplier").Observe(time.Since(start).Seconds())
	if err != nil {
		h.log.Error().Err(err).Str("supplier_id", identity.ReferenceID).Msg("supplier dashboard load failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgDashboardFailed})
	}

	metrics.DashboardRequestsTotal.WithLabelValues("supplier").Inc()
	return c.JSON(http.StatusOK, overview)
}
