package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

func TestAdminHandler_ProvisionSupplier_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAdminHandler(&stubRegistrationService{
		registerSupplierFn: func(_ context.Context, in ports.RegisterSupplierInput) (string, error) {
			if in.Name != "Acme Parts" || in.Email != "sales@acme.test" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "s1", nil
		},
	}, zerolog.Nop())

	body := `{"name":"Acme Parts","email":"sales@acme.test","phone":"080","address":"1 Depot Way","password":"longenough","confirmPassword":"longenough"}`
	c, rec := jsonContext(t, e, http.MethodPost, "/admin/suppliers", body)
	if err := h.ProvisionSupplier(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp supplierCreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.SupplierID != "s1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAdminHandler_ProvisionSupplier_Validation(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAdminHandler(&stubRegistrationService{
		registerSupplierFn: func(_ context.Context, _ ports.RegisterSupplierInput) (string, error) {
			t.Fatalf("service must not see invalid input")
			return "", nil
		},
	}, zerolog.Nop())

	body := `{"name":"","email":"bad","phone":"","address":"","password":"short1","confirmPassword":"short1"}`
	c, rec := jsonContext(t, e, http.MethodPost, "/admin/suppliers", body)
	_ = h.ProvisionSupplier(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	msg := decodeStatus(t, rec).Message
	for _, want := range []string{
		"Name is required",
		"Invalid email format",
		"Phone number is required",
		"Address is required",
		"Password must be at least 8 characters",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q: %q", want, msg)
		}
	}
}

func TestAdminHandler_ProvisionSupplier_DuplicateEmail(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAdminHandler(&stubRegistrationService{
		registerSupplierFn: func(_ context.Context, _ ports.RegisterSupplierInput) (string, error) {
			return "", domain.ErrEmailExists
		},
	}, zerolog.Nop())

	body := `{"name":"Acme Parts","email":"sales@acme.test","phone":"080","address":"1 Depot Way","password":"longenough","confirmPassword":"longenough"}`
	c, rec := jsonContext(t, e, http.MethodPost, "/admin/suppliers", body)
	_ = h.ProvisionSupplier(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg := decodeStatus(t, rec).Message; msg != "Email already registered" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
