package ports

import (
	"context"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// RegisterCustomerInput carries the already-validated fields for a
// customer self-registration. Validation (including the complete
// violation list) happens at the transport boundary before this input
// is constructed.
type RegisterCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// RegisterSupplierInput carries the fields for admin-provisioned
// supplier accounts.
type RegisterSupplierInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// RegistrationService creates role-specific profiles together with their
// linked credential rows. Each registration is a single all-or-nothing
// transaction; no orphaned profile may persist.
type RegistrationService interface {
	// RegisterCustomer returns the new customer's id, or
	// domain.ErrEmailExists when the email is already taken.
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (string, error)

	// RegisterSupplier is the symmetric admin-provisioning flow.
	RegisterSupplier(ctx context.Context, in RegisterSupplierInput) (string, error)
}

// RegistrationRepository persists a profile and its credential row
// atomically. Implementations must guarantee that either both inserts
// commit or neither does, and must map storage-level unique-key
// violations on email to domain.ErrEmailExists.
type RegistrationRepository interface {
	CreateCustomer(ctx context.Context, profile *domain.CustomerProfile, user *domain.User) (customerID string, err error)
	CreateSupplier(ctx context.Context, profile *domain.SupplierProfile, user *domain.User) (supplierID string, err error)
}
