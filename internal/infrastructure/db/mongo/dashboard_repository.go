package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inventoryhub/inventory-api/internal/core/domain"
)

// DashboardRepository issues the read-only aggregate queries behind the
// dashboards. Orders, products and inventory are written elsewhere; this
// repository only reads, scoped by the caller's reference id.
type DashboardRepository struct {
	users     *mongo.Collection
	customers *mongo.Collection
	suppliers *mongo.Collection
	orders    *mongo.Collection
	products  *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		users:     db.Collection(collectionUsers),
		customers: db.Collection(collectionCustomers),
		suppliers: db.Collection(collectionSuppliers),
		orders:    db.Collection(collectionOrders),
		products:  db.Collection(collectionProducts),
	}
}

// AdminStats counts the four top-level collections.
func (r *DashboardRepository) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stats := &domain.AdminStats{}
	counts := []struct {
		coll *mongo.Collection
		dst  *int64
	}{
		{r.customers, &stats.Customers},
		{r.suppliers, &stats.Suppliers},
		{r.products, &stats.Products},
		{r.orders, &stats.Orders},
	}
	for _, c := range counts {
		n, err := c.coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("admin stats: count %s: %w", c.coll.Name(), err)
		}
		*c.dst = n
	}
	return stats, nil
}

type orderRow struct {
	ID          primitive.ObjectID `bson:"_id"`
	OrderDate   time.Time          `bson:"order_date"`
	TotalAmount float64            `bson:"total_amount"`
	Status      string             `bson:"status"`
	ItemCount   int64              `bson:"item_count"`
}

// CustomerOrders returns the customer's most recent orders with their
// item counts aggregated from the embedded line items.
func (r *DashboardRepository) CustomerOrders(ctx context.Context, customerID string, limit int64) ([]domain.OrderSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"customer_id": customerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "order_date", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"order_date":   1,
			"total_amount": 1,
			"status":       1,
			"item_count":   bson.M{"$size": bson.M{"$ifNull": bson.A{"$items", bson.A{}}}},
		}}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("customer orders: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []domain.OrderSummary
	for cursor.Next(ctx) {
		var row orderRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("customer orders: decode: %w", err)
		}
		summaries = append(summaries, domain.OrderSummary{
			ID:          row.ID.Hex(),
			OrderDate:   row.OrderDate,
			ItemCount:   row.ItemCount,
			TotalAmount: row.TotalAmount,
			Status:      domain.OrderStatus(row.Status),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("customer orders: cursor: %w", err)
	}
	return summaries, nil
}

type productRow struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Category   string             `bson:"category"`
	UnitPrice  float64            `bson:"unit_price"`
	CreatedAt  time.Time          `bson:"created_at"`
	StockLevel int64              `bson:"stock_level"`
}

// SupplierProducts joins the supplier's newest products against the
// inventory collection; products with no inventory row read as zero stock.
func (r *DashboardRepository) SupplierProducts(ctx context.Context, supplierID string, limit int64) ([]domain.ProductSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"supplier_id": supplierID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionInventory,
			"localField":   "_id",
			"foreignField": "product_id",
			"as":           "inventory",
		}}},
		{{Key: "$project", Value: bson.M{
			"name":       1,
			"category":   1,
			"unit_price": 1,
			"created_at": 1,
			"stock_level": bson.M{"$ifNull": bson.A{
				bson.M{"$first": "$inventory.quantity"}, 0,
			}},
		}}},
	}

	cursor, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("supplier products: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []domain.ProductSummary
	for cursor.Next(ctx) {
		var row productRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("supplier products: decode: %w", err)
		}
		summaries = append(summaries, domain.ProductSummary{
			ID:          row.ID.Hex(),
			Name:        row.Name,
			Category:    row.Category,
			UnitPrice:   row.UnitPrice,
			StockLevel:  row.StockLevel,
			StockStatus: domain.ClassifyStock(row.StockLevel),
			CreatedAt:   row.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("supplier products: cursor: %w", err)
	}
	return summaries, nil
}

// CountSupplierProducts counts all products owned by the supplier.
func (r *DashboardRepository) CountSupplierProducts(ctx context.Context, supplierID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.products.CountDocuments(ctx, bson.M{"supplier_id": supplierID})
	if err != nil {
		return 0, fmt.Errorf("count supplier products: %w", err)
	}
	return n, nil
}
