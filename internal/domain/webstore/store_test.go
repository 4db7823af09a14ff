package webstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCollections() ([]Customer, []Order, []OrderItem, []Product, []Category, []ProductCategory, []Stock, []Store, []Carrier, []DiscountCode) {
	return []Customer{{ID: 1, FirstName: "Alice", LastName: "Nguyen", Email: "a@example.com"}},
		[]Order{{ID: 10, CustomerID: 1, Status: StatusPending, OrderDate: time.Now()}},
		[]OrderItem{{ID: 100, OrderID: 10, ProductID: 20, Quantity: 1, UnitPrice: MustMoney("1.00")}},
		[]Product{{ID: 20, Name: "Widget", Price: MustMoney("1.00")}},
		[]Category{{ID: 30, Name: "Electronics"}},
		[]ProductCategory{{ProductID: 20, CategoryID: 30}},
		[]Stock{{ProductID: 20, StoreID: 40, QuantityInStock: 5}},
		[]Store{{ID: 40, Name: "Downtown"}},
		[]Carrier{{ID: 50, Name: "FastShip"}},
		[]DiscountCode{{ID: 60, Code: "WELCOME10"}}
}

func TestNewEntityStore_Valid(t *testing.T) {
	store, err := NewEntityStore(validCollections())
	require.NoError(t, err)
	require.NotNil(t, store)

	customer, err := store.CustomerByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alice Nguyen", customer.FullName())

	product, err := store.ProductByID(20)
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)
}

func TestNewEntityStore_DanglingOrderCustomer(t *testing.T) {
	customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes := validCollections()
	orders[0].CustomerID = 999

	store, err := NewEntityStore(customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes)

	assert.Nil(t, store)
	var refErr *ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "customer", refErr.Target)
	assert.Equal(t, 999, refErr.Ref)
}

func TestNewEntityStore_DanglingItemProduct(t *testing.T) {
	customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes := validCollections()
	items[0].ProductID = 777
	pcs = nil
	stocks = nil

	store, err := NewEntityStore(customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes)

	assert.Nil(t, store)
	var refErr *ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "product", refErr.Target)
}

func TestNewEntityStore_DanglingStockStore(t *testing.T) {
	customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes := validCollections()
	stocks[0].StoreID = 404

	store, err := NewEntityStore(customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes)

	assert.Nil(t, store)
	var refErr *ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "store", refErr.Target)
}

func TestNewEntityStore_DanglingDiscountCode(t *testing.T) {
	customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes := validCollections()
	missing := 123
	orders[0].DiscountCodeID = &missing

	store, err := NewEntityStore(customers, orders, items, products, categories, pcs, stocks, stores, carriers, codes)

	assert.Nil(t, store)
	var refErr *ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "discount code", refErr.Target)
}

func TestEntityStore_LookupMissingKey(t *testing.T) {
	store, err := NewEntityStore(validCollections())
	require.NoError(t, err)

	_, err = store.CustomerByID(999)
	var refErr *ReferentialIntegrityError
	assert.ErrorAs(t, err, &refErr)

	_, err = store.OrderByID(999)
	assert.ErrorAs(t, err, &refErr)

	_, err = store.StoreByID(999)
	assert.ErrorAs(t, err, &refErr)
}
