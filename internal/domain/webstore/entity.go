// Package webstore holds the entity model of the store dataset: typed,
// integer-keyed records with explicit foreign-key fields, plus the read-only
// EntityStore the reports run against.
package webstore

import "time"

// Order statuses are an open tag set; only the values the reports filter on
// get named constants.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// FullName is the display name used by every report projection.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Order struct {
	ID             int
	CustomerID     int
	Status         string
	OrderDate      time.Time
	DiscountCodeID *int // optional
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice Money // snapshot at order time, independent of catalog price
	Discount  Money // absolute amount subtracted from the line
}

// LineTotal is unit price times quantity minus the line discount. A discount
// exceeding the subtotal yields a negative total; that is valid input.
func (i OrderItem) LineTotal() Money {
	return i.UnitPrice.MulInt(i.Quantity).Sub(i.Discount)
}

// Discounted reports whether the line carries any discount.
func (i OrderItem) Discounted() bool {
	return i.Discount.IsPositive()
}

type Product struct {
	ID    int
	Name  string
	Price Money // current catalog price
}

type Category struct {
	ID   int
	Name string
}

// ProductCategory is the many-to-many association between products and
// categories.
type ProductCategory struct {
	ProductID  int
	CategoryID int
}

type Stock struct {
	ProductID       int
	StoreID         int
	QuantityInStock int
}

type Store struct {
	ID   int
	Name string
}

type Carrier struct {
	ID   int
	Name string
}

type DiscountCode struct {
	ID   int
	Code string
}

func NewOrderItem(id, orderID, productID, quantity int, unitPrice, discount Money) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, ErrInvalidPrice
	}
	if discount.IsNegative() {
		return OrderItem{}, ErrInvalidDiscount
	}
	return OrderItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Discount:  discount,
	}, nil
}

func NewOrder(id, customerID int, status string, orderDate time.Time) (Order, error) {
	if status == "" {
		return Order{}, ErrMissingField
	}
	return Order{
		ID:         id,
		CustomerID: customerID,
		Status:     status,
		OrderDate:  orderDate,
	}, nil
}
