package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/metrics"
	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// AdminHandler owns admin-only provisioning routes. The RBAC middleware
// has already restricted these to admin sessions.
type AdminHandler struct {
	registrations ports.RegistrationService
	log           zerolog.Logger
}

func NewAdminHandler(registrations ports.RegistrationService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{registrations: registrations, log: log}
}

// ProvisionSupplier creates a supplier profile with its credential row.
//
// @Summary      Provision a supplier account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      supplierRequest  true  "Supplier details"
// @Success      201   {object}  supplierCreatedResponse
// @Failure      400   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Router       /admin/suppliers [post]
func (h *AdminHandler) ProvisionSupplier(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: msgInvalidPayload})
	}

	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("supplier", "validation_failed").Inc()
			return c.JSON(http.StatusBadRequest, statusResponse{Message: ve.Error()})
		}
		return err
	}

	supplierID, err := h.registrations.RegisterSupplier(c.Request().Context(), ports.RegisterSupplierInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("supplier", "duplicate_email").Inc()
			return c.JSON(http.StatusConflict, statusResponse{Message: msgEmailTaken})
		}
		metrics.RegistrationsTotal.WithLabelValues("supplier", "error").Inc()
		h.log.Error().Err(err).Msg("supplier provisioning failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgRegisterFailed})
	}

	metrics.RegistrationsTotal.WithLabelValues("supplier", "success").Inc()
	return c.JSON(http.StatusCreated, supplierCreatedResponse{
		Success:    true,
		Message:    "Supplier account created",
		SupplierID: supplierID,
	})
}
