package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// ProfileRepository reads the role-specific profile collections.
type ProfileRepository struct {
	customers *mongo.Collection
	suppliers *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		customers: db.Collection(collectionCustomers),
		suppliers: db.Collection(collectionSuppliers),
	}
}

type customerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Email     string             `bson:"email"`
	PhoneNo   string             `bson:"phone_no"`
	Address   string             `bson:"address"`
}

type supplierDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email"`
	PhoneNo string             `bson:"phone_no"`
	Address string             `bson:"address"`
}

// FindCustomer fetches a customer profile by id. A miss means the
// referencing credential is orphaned.
func (r *ProfileRepository) FindCustomer(ctx context.Context, customerID string) (*domain.CustomerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc customerDoc
	if err := r.customers.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	return &domain.CustomerProfile{
		ID:        doc.ID.Hex(),
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
		Email:     doc.Email,
		PhoneNo:   doc.PhoneNo,
		Address:   doc.Address,
	}, nil
}

// FindSupplier fetches a supplier profile by id.
func (r *ProfileRepository) FindSupplier(ctx context.Context, supplierID string) (*domain.SupplierProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(supplierID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc supplierDoc
	if err := r.suppliers.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}

	return &domain.SupplierProfile{
		ID:      doc.ID.Hex(),
		Name:    doc.Name,
		Email:   doc.Email,
		PhoneNo: doc.PhoneNo,
		Address: doc.Address,
	}, nil
}
