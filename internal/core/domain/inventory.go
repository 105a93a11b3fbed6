package domain

import "time"

// StockStatus classifies a product's inventory level.
type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

// lowStockThreshold is the quantity at or below which a product counts
// as low stock.
const lowStockThreshold = 10

// ClassifyStock maps an inventory quantity to its status.
func ClassifyStock(quantity int64) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= lowStockThreshold:
		return StockLow
	}
	return StockIn
}

// OrderStatus is the lifecycle state of an order. Orders are read-only
// here; statuses are consumed for display classification only.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderSummary is a customer-dashboard row: one order with its item
// count aggregated in.
type OrderSummary struct {
	ID          string      `json:"id"`
	OrderDate   time.Time   `json:"order_date"`
	ItemCount   int64       `json:"item_count"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
}

// ProductSummary is a supplier-dashboard row: one product joined with
// its current inventory level.
type ProductSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category,omitempty"`
	UnitPrice   float64     `json:"unit_price"`
	StockLevel  int64       `json:"stock_level"`
	StockStatus StockStatus `json:"stock_status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AdminStats are the whole-system counts shown on the admin dashboard.
type AdminStats struct {
	Customers int64 `json:"customers"`
	Suppliers int64 `json:"suppliers"`
	Products  int64 `json:"products"`
	Orders    int64 `json:"orders"`
}

// StockStats are the per-supplier inventory counts.
type StockStats struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"in_stock"`
	LowStock   int64 `json:"low_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}
