package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webstore_reports/internal/domain/webstore"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// newTestStore builds a dataset exercising every report: a customer without
// orders, a pending order with the documented 24.00 total, a boundary-dated
// order, discounted and undiscounted lines, and an Electronics product
// stocked in two stores.
func newTestStore(t *testing.T) *webstore.EntityStore {
	t.Helper()

	store, err := webstore.NewEntityStore(
		[]webstore.Customer{
			{ID: 1, FirstName: "Alice", LastName: "Nguyen", Email: "alice@example.com"},
			{ID: 2, FirstName: "Bob", LastName: "Tran", Email: "bob@example.com"},
			{ID: 3, FirstName: "Carol", LastName: "Le", Email: "carol@example.com"},
			{ID: 4, FirstName: "Dan", LastName: "Pham", Email: "dan@example.com"}, // never orders
		},
		[]webstore.Order{
			{ID: 101, CustomerID: 1, Status: webstore.StatusPending, OrderDate: testNow.AddDate(0, 0, -3)},
			{ID: 102, CustomerID: 1, Status: webstore.StatusCompleted, OrderDate: testNow.AddDate(0, 0, -40)},
			{ID: 103, CustomerID: 2, Status: webstore.StatusPending, OrderDate: testNow.AddDate(0, 0, -30)},
			{ID: 104, CustomerID: 3, Status: webstore.StatusShipped, OrderDate: testNow.AddDate(0, 0, -31)},
			{ID: 105, CustomerID: 3, Status: webstore.StatusCancelled, OrderDate: testNow.AddDate(0, 0, -50)}, // no items
		},
		[]webstore.OrderItem{
			{ID: 1001, OrderID: 101, ProductID: 1, Quantity: 2, UnitPrice: webstore.MustMoney("10.00"), Discount: webstore.MustMoney("1.00")},
			{ID: 1002, OrderID: 101, ProductID: 2, Quantity: 1, UnitPrice: webstore.MustMoney("5.00"), Discount: webstore.MustMoney("0")},
			{ID: 1003, OrderID: 102, ProductID: 3, Quantity: 1, UnitPrice: webstore.MustMoney("76.00"), Discount: webstore.MustMoney("0")},
			{ID: 1004, OrderID: 103, ProductID: 1, Quantity: 2, UnitPrice: webstore.MustMoney("25.00"), Discount: webstore.MustMoney("0")},
			{ID: 1005, OrderID: 104, ProductID: 3, Quantity: 2, UnitPrice: webstore.MustMoney("100.00"), Discount: webstore.MustMoney("0")},
		},
		[]webstore.Product{
			{ID: 1, Name: "Widget", Price: webstore.MustMoney("10.00")},
			{ID: 2, Name: "Gadget", Price: webstore.MustMoney("5.00")},
			{ID: 3, Name: "Laptop", Price: webstore.MustMoney("100.00")},
			{ID: 4, Name: "Gizmo", Price: webstore.MustMoney("5.00")}, // price ties with Gadget
			{ID: 5, Name: "Pen", Price: webstore.MustMoney("1.00")},
		},
		[]webstore.Category{
			{ID: 1, Name: "Electronics"},
			{ID: 2, Name: "Accessories"},
		},
		[]webstore.ProductCategory{
			{ProductID: 3, CategoryID: 1},
			{ProductID: 1, CategoryID: 2},
			{ProductID: 5, CategoryID: 2},
		},
		[]webstore.Stock{
			{ProductID: 3, StoreID: 1, QuantityInStock: 5},
			{ProductID: 3, StoreID: 2, QuantityInStock: 12},
			{ProductID: 1, StoreID: 1, QuantityInStock: 40},
		},
		[]webstore.Store{
			{ID: 1, Name: "Downtown"},
			{ID: 2, Name: "Airport"},
		},
		[]webstore.Carrier{{ID: 1, Name: "FastShip"}},
		[]webstore.DiscountCode{{ID: 1, Code: "WELCOME10"}},
	)
	require.NoError(t, err)
	return store
}

func newTestService(t *testing.T) *Service {
	return NewService(newTestStore(t), DefaultOptions())
}

func TestAllCustomers(t *testing.T) {
	rows := newTestService(t).AllCustomers()

	assert.Equal(t, []CustomerRow{
		{FullName: "Alice Nguyen", Email: "alice@example.com"},
		{FullName: "Bob Tran", Email: "bob@example.com"},
		{FullName: "Carol Le", Email: "carol@example.com"},
		{FullName: "Dan Pham", Email: "dan@example.com"},
	}, rows)
}

func TestOrdersWithItemCount(t *testing.T) {
	rows, err := newTestService(t).OrdersWithItemCount()
	require.NoError(t, err)

	assert.Equal(t, []OrderItemCountRow{
		{CustomerName: "Alice Nguyen", OrderID: 101, Status: webstore.StatusPending, ItemCount: 3},
		{CustomerName: "Alice Nguyen", OrderID: 102, Status: webstore.StatusCompleted, ItemCount: 1},
		{CustomerName: "Bob Tran", OrderID: 103, Status: webstore.StatusPending, ItemCount: 2},
		{CustomerName: "Carol Le", OrderID: 104, Status: webstore.StatusShipped, ItemCount: 2},
		// An order without items counts zero, it does not disappear.
		{CustomerName: "Carol Le", OrderID: 105, Status: webstore.StatusCancelled, ItemCount: 0},
	}, rows)
}

func TestProductsByPriceDesc(t *testing.T) {
	rows := newTestService(t).ProductsByPriceDesc()

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	// Gadget before Gizmo: equal prices keep store order.
	assert.Equal(t, []string{"Laptop", "Widget", "Gadget", "Gizmo", "Pen"}, names)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Price.Cmp(rows[i].Price), 0,
			"row %d must not be cheaper than row %d", i-1, i)
	}
}

func TestPendingOrdersWithTotal(t *testing.T) {
	rows, err := newTestService(t).PendingOrdersWithTotal()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	// (10.00*2 - 1.00) + (5.00*1 - 0) = 24.00
	assert.Equal(t, 101, rows[0].OrderID)
	assert.Equal(t, "24.00", rows[0].Total.String())
	assert.Equal(t, 103, rows[1].OrderID)
	assert.Equal(t, "50.00", rows[1].Total.String())
}

func TestOrderCountPerCustomer_IncludesZeroOrderCustomers(t *testing.T) {
	rows := newTestService(t).OrderCountPerCustomer()

	assert.Equal(t, []CustomerOrderCountRow{
		{FullName: "Alice Nguyen", OrderCount: 2},
		{FullName: "Bob Tran", OrderCount: 1},
		{FullName: "Carol Le", OrderCount: 2},
		{FullName: "Dan Pham", OrderCount: 0},
	}, rows)
}

func TestTop3CustomersByValue(t *testing.T) {
	rows, err := newTestService(t).Top3CustomersByValue()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Carol Le", rows[0].FullName)
	assert.Equal(t, "200.00", rows[0].TotalValue.String())
	assert.Equal(t, "Alice Nguyen", rows[1].FullName)
	assert.Equal(t, "100.00", rows[1].TotalValue.String())
	assert.Equal(t, "Bob Tran", rows[2].FullName)
	assert.Equal(t, "50.00", rows[2].TotalValue.String())
}

// The asymmetry between reports 5 and 6 is intentional: the ranking derives
// its groups from orders, so a customer without orders cannot appear.
func TestTopCustomers_ExcludesZeroOrderCustomers(t *testing.T) {
	svc := NewService(newTestStore(t), Options{
		RecentWindow:     30 * 24 * time.Hour,
		TopCustomers:     5,
		FeaturedCategory: "Electronics",
	})

	rows, err := svc.Top3CustomersByValue()
	require.NoError(t, err)

	// Underfill: asking for 5 returns the 3 customers that have orders.
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.NotEqual(t, "Dan Pham", r.FullName)
	}
}

func TestRecentOrders_BoundaryInclusive(t *testing.T) {
	rows, err := newTestService(t).RecentOrders(testNow)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 101, rows[0].OrderID)
	// Dated exactly now - 30 days: included.
	assert.Equal(t, 103, rows[1].OrderID)
	// Order 104 is one day older and must be excluded; asserted by Len above.
}

func TestTotalSoldPerProduct(t *testing.T) {
	rows, err := newTestService(t).TotalSoldPerProduct()
	require.NoError(t, err)

	assert.Equal(t, []ProductSalesRow{
		{ProductName: "Widget", TotalSold: 4},
		{ProductName: "Laptop", TotalSold: 3},
		{ProductName: "Gadget", TotalSold: 1},
	}, rows)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].TotalSold, rows[i].TotalSold)
	}
}

func TestDiscountedOrders_ListsOnlyDiscountedLines(t *testing.T) {
	rows, err := newTestService(t).DiscountedOrders()
	require.NoError(t, err)

	// Order 101 has two lines but only the Widget line is discounted.
	require.Len(t, rows, 1)
	assert.Equal(t, 101, rows[0].OrderID)
	assert.Equal(t, "Alice Nguyen", rows[0].CustomerName)
	assert.Equal(t, []string{"Widget"}, rows[0].DiscountedProducts)
}

func TestFeaturedCategoryStock(t *testing.T) {
	rows, err := newTestService(t).FeaturedCategoryStock()
	require.NoError(t, err)

	assert.Equal(t, []StockRow{
		{ProductName: "Laptop", StoreName: "Airport", MaxStock: 12},
		{ProductName: "Laptop", StoreName: "Downtown", MaxStock: 5},
	}, rows)
	// Widget is stocked and sold but sits in Accessories: never appears.
}

func TestReports_Idempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Top3CustomersByValue()
	require.NoError(t, err)
	second, err := svc.Top3CustomersByValue()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stockFirst, err := svc.FeaturedCategoryStock()
	require.NoError(t, err)
	stockSecond, err := svc.FeaturedCategoryStock()
	require.NoError(t, err)
	assert.Equal(t, stockFirst, stockSecond)

	recentFirst, err := svc.RecentOrders(testNow)
	require.NoError(t, err)
	recentSecond, err := svc.RecentOrders(testNow)
	require.NoError(t, err)
	assert.Equal(t, recentFirst, recentSecond)
}
