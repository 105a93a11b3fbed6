package service

import (
	"context"
	"fmt"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
	"github.com/inventoryhub/inventory-api/internal/core/ports"
)

// ProfileResolver maps (role, reference id) to the profile's display
// name. Admins have no profile row and resolve to a fixed literal.
type ProfileResolver struct {
	profiles ports.ProfileRepository
}

func NewProfileResolver(profiles ports.ProfileRepository) *ProfileResolver {
	return &ProfileResolver{profiles: profiles}
}

// Resolve is exhaustive over valid roles. A non-admin role with no
// matching profile row propagates domain.ErrProfileNotFound — an
// orphaned credential is a data fault, never an empty name.
func (r *ProfileResolver) Resolve(ctx context.Context, role domain.Role, referenceID string) (string, error) {
	switch role {
	case domain.RoleAdmin:
		return domain.AdminDisplayName, nil
	case domain.RoleCustomer:
		p, err := r.profiles.FindCustomer(ctx, referenceID)
		if err != nil {
			return "", err
		}
		return p.DisplayName(), nil
	case domain.RoleSupplier:
		p, err := r.profiles.FindSupplier(ctx, referenceID)
		if err != nil {
			return "", err
		}
		return p.Name, nil
	}
	return "", fmt.Errorf("resolve profile: unknown role %q", role)
}
