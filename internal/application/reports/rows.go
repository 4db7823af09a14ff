package reports

import (
	"time"

	"webstore_reports/internal/domain/webstore"
)

// Row types are fixed tuples, one per report. Field order follows the report
// definitions and is what the console formatter and HTTP layer render.

type CustomerRow struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type OrderItemCountRow struct {
	CustomerName string `json:"customer_name"`
	OrderID      int    `json:"order_id"`
	Status       string `json:"status"`
	ItemCount    int    `json:"item_count"`
}

type ProductPriceRow struct {
	Name  string         `json:"name"`
	Price webstore.Money `json:"price"`
}

type PendingOrderRow struct {
	CustomerName string         `json:"customer_name"`
	OrderID      int            `json:"order_id"`
	OrderDate    time.Time      `json:"order_date"`
	Total        webstore.Money `json:"total"`
}

type CustomerOrderCountRow struct {
	FullName   string `json:"full_name"`
	OrderCount int    `json:"order_count"`
}

type CustomerValueRow struct {
	FullName   string         `json:"full_name"`
	TotalValue webstore.Money `json:"total_value"`
}

type RecentOrderRow struct {
	OrderID      int       `json:"order_id"`
	OrderDate    time.Time `json:"order_date"`
	CustomerName string    `json:"customer_name"`
}

type ProductSalesRow struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

type DiscountedOrderRow struct {
	OrderID            int      `json:"order_id"`
	CustomerName       string   `json:"customer_name"`
	DiscountedProducts []string `json:"discounted_products"`
}

type StockRow struct {
	ProductName string `json:"product_name"`
	StoreName   string `json:"store_name"`
	MaxStock    int    `json:"max_stock"`
}
