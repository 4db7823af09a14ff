// Package memory provides a seeded, in-memory DatasetRepository so the
// report binaries and tests can run without a database.
package memory

import (
	"context"
	"time"

	"webstore_reports/internal/domain/webstore"
)

type DatasetRepository struct {
	store *webstore.EntityStore
}

// NewDatasetRepository wraps an already-built snapshot.
func NewDatasetRepository(store *webstore.EntityStore) *DatasetRepository {
	return &DatasetRepository{store: store}
}

func (r *DatasetRepository) LoadDataset(ctx context.Context) (*webstore.EntityStore, error) {
	return r.store, nil
}

// NewSeededRepository builds a small but complete dataset exercising every
// report: a customer without orders, pending and shipped orders, discounted
// lines, an Electronics product stocked in two stores.
func NewSeededRepository(now time.Time) (*DatasetRepository, error) {
	discountTen := 1

	store, err := webstore.NewEntityStore(
		[]webstore.Customer{
			{ID: 1, FirstName: "Alice", LastName: "Nguyen", Email: "alice.nguyen@example.com"},
			{ID: 2, FirstName: "Bob", LastName: "Tran", Email: "bob.tran@example.com"},
			{ID: 3, FirstName: "Carol", LastName: "Le", Email: "carol.le@example.com"},
			{ID: 4, FirstName: "Dan", LastName: "Pham", Email: "dan.pham@example.com"}, // no orders
		},
		[]webstore.Order{
			{ID: 101, CustomerID: 1, Status: webstore.StatusPending, OrderDate: now.AddDate(0, 0, -3)},
			{ID: 102, CustomerID: 1, Status: webstore.StatusShipped, OrderDate: now.AddDate(0, 0, -45)},
			{ID: 103, CustomerID: 2, Status: webstore.StatusPending, OrderDate: now.AddDate(0, 0, -30), DiscountCodeID: &discountTen},
			{ID: 104, CustomerID: 3, Status: webstore.StatusCompleted, OrderDate: now.AddDate(0, 0, -10)},
		},
		[]webstore.OrderItem{
			{ID: 1001, OrderID: 101, ProductID: 1, Quantity: 2, UnitPrice: webstore.MustMoney("10.00"), Discount: webstore.MustMoney("1.00")},
			{ID: 1002, OrderID: 101, ProductID: 2, Quantity: 1, UnitPrice: webstore.MustMoney("5.00"), Discount: webstore.MustMoney("0")},
			{ID: 1003, OrderID: 102, ProductID: 3, Quantity: 1, UnitPrice: webstore.MustMoney("799.90"), Discount: webstore.MustMoney("0")},
			{ID: 1004, OrderID: 103, ProductID: 3, Quantity: 2, UnitPrice: webstore.MustMoney("799.90"), Discount: webstore.MustMoney("50.00")},
			{ID: 1005, OrderID: 104, ProductID: 1, Quantity: 5, UnitPrice: webstore.MustMoney("9.50"), Discount: webstore.MustMoney("0")},
		},
		[]webstore.Product{
			{ID: 1, Name: "USB-C Cable", Price: webstore.MustMoney("10.00")},
			{ID: 2, Name: "Notebook", Price: webstore.MustMoney("5.00")},
			{ID: 3, Name: "Laptop Pro 14", Price: webstore.MustMoney("899.00")},
		},
		[]webstore.Category{
			{ID: 1, Name: "Electronics"},
			{ID: 2, Name: "Stationery"},
		},
		[]webstore.ProductCategory{
			{ProductID: 1, CategoryID: 1},
			{ProductID: 2, CategoryID: 2},
			{ProductID: 3, CategoryID: 1},
		},
		[]webstore.Stock{
			{ProductID: 1, StoreID: 1, QuantityInStock: 40},
			{ProductID: 3, StoreID: 1, QuantityInStock: 5},
			{ProductID: 3, StoreID: 2, QuantityInStock: 12},
		},
		[]webstore.Store{
			{ID: 1, Name: "Downtown"},
			{ID: 2, Name: "Airport"},
		},
		[]webstore.Carrier{
			{ID: 1, Name: "FastShip"},
		},
		[]webstore.DiscountCode{
			{ID: 1, Code: "WELCOME10"},
		},
	)
	if err != nil {
		return nil, err
	}
	return NewDatasetRepository(store), nil
}
