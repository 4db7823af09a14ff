// Package console renders report rows as human-readable text. It is the only
// place report output is formatted; the report definitions themselves return
// structured rows and never print.
package console

import (
	"fmt"
	"io"
	"time"

	"webstore_reports/internal/application/reports"
)

var headers = map[string]string{
	reports.NameAllCustomers:          "All Customers",
	reports.NameOrdersWithItemCount:   "Orders With Item Count",
	reports.NameProductsByPriceDesc:   "Products By Descending Price",
	reports.NamePendingOrdersTotal:    "Pending Orders With Total Price",
	reports.NameOrderCountPerCustomer: "Order Count Per Customer",
	reports.NameTopCustomersByValue:   "Top Customers By Order Value",
	reports.NameRecentOrders:          "Recent Orders",
	reports.NameTotalSoldPerProduct:   "Total Sold Per Product",
	reports.NameDiscountedOrders:      "Discounted Orders",
	reports.NameFeaturedCategoryStock: "Featured Category Stock",
}

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// WriteResults renders each result under its section header, in the order
// given. Failed reports print their error instead of rows.
func (f *Formatter) WriteResults(results []reports.Result) error {
	for _, res := range results {
		if err := f.WriteResult(res); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) WriteResult(res reports.Result) error {
	header := headers[res.Name]
	if header == "" {
		header = res.Name
	}
	if _, err := fmt.Fprintf(f.w, "=== %s ===\n", header); err != nil {
		return err
	}

	if res.Err != nil {
		_, err := fmt.Fprintf(f.w, "error: %v\n\n", res.Err)
		return err
	}

	if err := f.writeRows(res.Rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.w)
	return err
}

func (f *Formatter) writeRows(rows interface{}) error {
	switch typed := rows.(type) {
	case []reports.CustomerRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "%s - %s\n", r.FullName, r.Email); err != nil {
				return err
			}
		}
	case []reports.OrderItemCountRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Customer: %s, Order ID: %d, Status: %s, Item Count: %d\n",
				r.CustomerName, r.OrderID, r.Status, r.ItemCount); err != nil {
				return err
			}
		}
	case []reports.ProductPriceRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "%s - %s\n", r.Name, r.Price); err != nil {
				return err
			}
		}
	case []reports.PendingOrderRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Customer: %s, Order ID: %d, Order Date: %s, Total Price: %s\n",
				r.CustomerName, r.OrderID, r.OrderDate.Format(time.DateOnly), r.Total); err != nil {
				return err
			}
		}
	case []reports.CustomerOrderCountRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Customer: %s, Orders: %d\n", r.FullName, r.OrderCount); err != nil {
				return err
			}
		}
	case []reports.CustomerValueRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Customer: %s, Total Order Value: %s\n", r.FullName, r.TotalValue); err != nil {
				return err
			}
		}
	case []reports.RecentOrderRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Order ID: %d, Date: %s, Customer: %s\n",
				r.OrderID, r.OrderDate.Format(time.DateOnly), r.CustomerName); err != nil {
				return err
			}
		}
	case []reports.ProductSalesRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Product: %s, Total Sold: %d\n", r.ProductName, r.TotalSold); err != nil {
				return err
			}
		}
	case []reports.DiscountedOrderRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Order ID: %d, Customer: %s\n", r.OrderID, r.CustomerName); err != nil {
				return err
			}
			for _, p := range r.DiscountedProducts {
				if _, err := fmt.Fprintf(f.w, "  Discounted Product: %s\n", p); err != nil {
					return err
				}
			}
		}
	case []reports.StockRow:
		for _, r := range typed {
			if _, err := fmt.Fprintf(f.w, "Product: %s, Store: %s, Max Stock: %d\n",
				r.ProductName, r.StoreName, r.MaxStock); err != nil {
				return err
			}
		}
	case nil:
		// no rows
	default:
		return fmt.Errorf("unknown row type %T", rows)
	}
	return nil
}
