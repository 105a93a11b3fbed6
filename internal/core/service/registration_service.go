package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// RegistrationService creates a role-specific profile plus its linked
// credential row in one transaction. Field validation happens at the
// transport boundary; this service enforces uniqueness and atomicity.
type RegistrationService struct {
	users      ports.UserRepository
	repo       ports.RegistrationRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewRegistrationService(users ports.UserRepository, repo ports.RegistrationRepository, bcryptCost int, log zerolog.Logger) *RegistrationService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &RegistrationService{users: users, repo: repo, bcryptCost: bcryptCost, log: log}
}

// RegisterCustomer creates a CustomerProfile and its Users row. The
// email pre-check is best-effort; the authoritative duplicate guard is
// the unique index enforced inside the transactional repository.
func (s *RegistrationService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) (string, error) {
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("register customer: hash password: %w", err)
	}

	profile := &domain.CustomerProfile{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		PhoneNo:   in.Phone,
		Address:   in.Address,
	}
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	customerID, err := s.repo.CreateCustomer(ctx, profile, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return "", domain.ErrEmailExists
		}
		return "", fmt.Errorf("register customer: %w", err)
	}

	s.log.Info().Str("customer_id", customerID).Msg("customer registered")
	return customerID, nil
}

// RegisterSupplier is the admin-provisioned counterpart, sharing the
// transactional pairing invariant.
func (s *RegistrationService) RegisterSupplier(ctx context.Context, in ports.RegisterSupplierInput) (string, error) {
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("register supplier: hash password: %w", err)
	}

	profile := &domain.SupplierProfile{
		Name:    in.Name,
		Email:   in.Email,
		PhoneNo: in.Phone,
		Address: in.Address,
	}
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleSupplier,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	supplierID, err := s.repo.CreateSupplier(ctx, profile, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return "", domain.ErrEmailExists
		}
		return "", fmt.Errorf("register supplier: %w", err)
	}

	s.log.Info().Str("supplier_id", supplierID).Msg("supplier provisioned")
	return supplierID, nil
}

// checkEmailFree races with concurrent registrations; it only exists to
// fail fast with a friendly message. The unique index decides.
func (s *RegistrationService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailExists
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	}
	return fmt.Errorf("check email: %w", err)
}
