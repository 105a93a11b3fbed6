package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/api/metrics"
	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// AuthHandler owns the login, logout, and customer-registration routes.
type AuthHandler struct {
	auth          ports.AuthService
	registrations ports.RegistrationService
	sessions      ports.SessionStore
	cookieName    string
	cookieTTL     time.Duration
	secureCookies bool
	log           zerolog.Logger
}

// AuthHandlerConfig groups the wiring for NewAuthHandler.
type AuthHandlerConfig struct {
	Auth          ports.AuthService
	Registrations ports.RegistrationService
	Sessions      ports.SessionStore
	CookieName    string
	CookieTTL     time.Duration
	SecureCookies bool
	Log           zerolog.Logger
}

func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		auth:          cfg.Auth,
		registrations: cfg.Registrations,
		sessions:      cfg.Sessions,
		cookieName:    cfg.CookieName,
		cookieTTL:     cfg.CookieTTL,
		secureCookies: cfg.SecureCookies,
		log:           cfg.Log,
	}
}

// Login authenticates a user and issues a session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: msgInvalidPayload})
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: msgMissingCredentials})
	}

	identity, err := h.auth.Authenticate(c.Request().Context(), email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, statusResponse{Message: msgInvalidCredentials})
		case errors.Is(err, domain.ErrAccountDeactivated):
			metrics.LoginsTotal.WithLabelValues("deactivated").Inc()
			return c.JSON(http.StatusForbidden, statusResponse{Message: msgDeactivated})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgLoginFailed})
	}

	// A pre-login session token must never carry over into the
	// authenticated state; destroy it and issue a fresh one.
	if old, err := c.Cookie(h.cookieName); err == nil && old.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), old.Value); err != nil {
			h.log.Warn().Err(err).Msg("failed to destroy pre-login session")
		}
	}

	token, err := h.sessions.Create(c.Request().Context(), *identity)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("session create failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgLoginFailed})
	}

	c.SetCookie(h.sessionCookie(token, h.cookieTTL))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, statusResponse{
		Success:  true,
		Message:  msgLoginOK,
		Redirect: identity.Role.DashboardPath(),
		Role:     string(identity.Role),
	})
}

// Logout destroys the session and expires the cookie, then sends the
// client back to the login page.
//
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn().Err(err).Msg("failed to destroy session on logout")
		}
	}

	// Expire the cookie immediately; do not wait for TTL expiry.
	expired := h.sessionCookie("", -time.Hour)
	expired.Expires = time.Unix(0, 0)
	c.SetCookie(expired)

	return c.Redirect(http.StatusFound, domain.LoginPath)
}

// Register creates a customer account.
//
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Customer registration details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: msgInvalidPayload})
	}

	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("customer", "validation_failed").Inc()
			return c.JSON(http.StatusBadRequest, statusResponse{Message: ve.Error()})
		}
		return err
	}

	_, err := h.registrations.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("customer", "duplicate_email").Inc()
			return c.JSON(http.StatusConflict, statusResponse{Message: msgEmailTaken})
		}
		metrics.RegistrationsTotal.WithLabelValues("customer", "error").Inc()
		h.log.Error().Err(err).Msg("customer registration failed")
		return c.JSON(http.StatusInternalServerError, statusResponse{Message: msgRegisterFailed})
	}

	metrics.RegistrationsTotal.WithLabelValues("customer", "success").Inc()
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: msgRegisterOK})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
