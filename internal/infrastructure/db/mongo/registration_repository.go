package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// RegistrationRepository performs the paired profile + credential insert
// inside a multi-document transaction. If the credential insert fails the
// profile insert is rolled back with it; no orphaned profile can persist.
type RegistrationRepository struct {
	client    *mongo.Client
	users     *mongo.Collection
	customers *mongo.Collection
	suppliers *mongo.Collection
}

func NewRegistrationRepository(client *mongo.Client, db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{
		client:    client,
		users:     db.Collection(collectionUsers),
		customers: db.Collection(collectionCustomers),
		suppliers: db.Collection(collectionSuppliers),
	}
}

// CreateCustomer inserts the customer profile, then the credential row
// referencing it, atomically. A unique-key violation on email maps to
// domain.ErrEmailExists, which closes the check-then-insert race left
// open by the service-level pre-check.
func (r *RegistrationRepository) CreateCustomer(ctx context.Context, profile *domain.CustomerProfile, user *domain.User) (string, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return "", fmt.Errorf("create customer: start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.customers.InsertOne(sc, customerDoc{
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Email:     profile.Email,
			PhoneNo:   profile.PhoneNo,
			Address:   profile.Address,
		})
		if err != nil {
			return nil, fmt.Errorf("insert customer: %w", err)
		}

		customerID := res.InsertedID.(primitive.ObjectID)
		if err := r.insertCredential(sc, user, customerID.Hex()); err != nil {
			return nil, err
		}
		return customerID.Hex(), nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailExists
		}
		return "", err
	}
	return result.(string), nil
}

// CreateSupplier is the symmetric flow for admin-provisioned suppliers.
func (r *RegistrationRepository) CreateSupplier(ctx context.Context, profile *domain.SupplierProfile, user *domain.User) (string, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return "", fmt.Errorf("create supplier: start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.suppliers.InsertOne(sc, supplierDoc{
			Name:    profile.Name,
			Email:   profile.Email,
			PhoneNo: profile.PhoneNo,
			Address: profile.Address,
		})
		if err != nil {
			return nil, fmt.Errorf("insert supplier: %w", err)
		}

		supplierID := res.InsertedID.(primitive.ObjectID)
		if err := r.insertCredential(sc, user, supplierID.Hex()); err != nil {
			return nil, err
		}
		return supplierID.Hex(), nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailExists
		}
		return "", err
	}
	return result.(string), nil
}

func (r *RegistrationRepository) insertCredential(sc mongo.SessionContext, user *domain.User, referenceID string) error {
	_, err := r.users.InsertOne(sc, userDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		ReferenceID:  referenceID,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Keep the sentinel visible through WithTransaction's wrapping.
			return err
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}
