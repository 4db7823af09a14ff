// Package reports implements the fixed set of analytical reports over an
// EntityStore snapshot. Each report is a pure function of the snapshot (plus
// an explicit reference instant where a time window is involved) and returns
// an ordered slice of typed rows.
package reports

import (
	"time"

	"webstore_reports/internal/domain/webstore"
	"webstore_reports/pkg/relop"
)

// Options tunes the parameterized reports. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	RecentWindow     time.Duration
	TopCustomers     int
	FeaturedCategory string
}

func DefaultOptions() Options {
	return Options{
		RecentWindow:     30 * 24 * time.Hour,
		TopCustomers:     3,
		FeaturedCategory: "Electronics",
	}
}

type Service struct {
	store *webstore.EntityStore
	opts  Options
}

func NewService(store *webstore.EntityStore, opts Options) *Service {
	return &Service{store: store, opts: opts}
}

// itemsByOrder groups the order items by their order key, preserving item
// load order within each order.
func (s *Service) itemsByOrder() map[int][]webstore.OrderItem {
	groups := relop.GroupBy(relop.FromSlice(s.store.OrderItems), func(it webstore.OrderItem) int {
		return it.OrderID
	})
	byOrder := make(map[int][]webstore.OrderItem, len(groups))
	for _, g := range groups {
		byOrder[g.Key] = g.Members
	}
	return byOrder
}

func orderTotal(items []webstore.OrderItem) webstore.Money {
	return relop.Reduce(items, webstore.ZeroMoney, func(acc webstore.Money, it webstore.OrderItem) webstore.Money {
		return acc.Add(it.LineTotal())
	})
}

// AllCustomers projects every customer to (full name, email) in store
// iteration order. That order is whatever the dataset loader produced; it is
// not sorted here.
func (s *Service) AllCustomers() []CustomerRow {
	rows := make([]CustomerRow, 0, len(s.store.Customers))
	for _, c := range s.store.Customers {
		rows = append(rows, CustomerRow{FullName: c.FullName(), Email: c.Email})
	}
	return rows
}

// OrdersWithItemCount lists every order with its customer name, status and
// the sum of item quantities. Orders without items count 0.
func (s *Service) OrdersWithItemCount() ([]OrderItemCountRow, error) {
	byOrder := s.itemsByOrder()

	rows := make([]OrderItemCountRow, 0, len(s.store.Orders))
	for _, o := range s.store.Orders {
		customer, err := s.store.CustomerByID(o.CustomerID)
		if err != nil {
			return nil, err
		}
		count := relop.Sum(byOrder[o.ID], func(it webstore.OrderItem) int {
			return it.Quantity
		})
		rows = append(rows, OrderItemCountRow{
			CustomerName: customer.FullName(),
			OrderID:      o.ID,
			Status:       o.Status,
			ItemCount:    count,
		})
	}
	return rows, nil
}

// ProductsByPriceDesc lists every product sorted by catalog price, highest
// first. Equal prices keep store order (stable sort).
func (s *Service) ProductsByPriceDesc() []ProductPriceRow {
	rows := make([]ProductPriceRow, 0, len(s.store.Products))
	for _, p := range s.store.Products {
		rows = append(rows, ProductPriceRow{Name: p.Name, Price: p.Price})
	}
	return relop.SortDescFunc(rows, func(a, b ProductPriceRow) int {
		return a.Price.Cmp(b.Price)
	})
}

// PendingOrdersWithTotal lists orders with status "Pending" and their total
// over line totals (unit price x quantity - discount).
func (s *Service) PendingOrdersWithTotal() ([]PendingOrderRow, error) {
	byOrder := s.itemsByOrder()
	pending := relop.Filter(relop.FromSlice(s.store.Orders), func(o webstore.Order) bool {
		return o.Status == webstore.StatusPending
	})

	var rows []PendingOrderRow
	for o := range pending {
		customer, err := s.store.CustomerByID(o.CustomerID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PendingOrderRow{
			CustomerName: customer.FullName(),
			OrderID:      o.ID,
			OrderDate:    o.OrderDate,
			Total:        orderTotal(byOrder[o.ID]),
		})
	}
	return rows, nil
}

// OrderCountPerCustomer counts orders for every customer. Customers with no
// orders appear with count 0, unlike Top3CustomersByValue which derives its
// groups from orders and so never sees them.
func (s *Service) OrderCountPerCustomer() []CustomerOrderCountRow {
	groups := relop.GroupBy(relop.FromSlice(s.store.Orders), func(o webstore.Order) int {
		return o.CustomerID
	})
	counts := make(map[int]int, len(groups))
	for _, g := range groups {
		counts[g.Key] = relop.Count(g.Members)
	}

	rows := make([]CustomerOrderCountRow, 0, len(s.store.Customers))
	for _, c := range s.store.Customers {
		rows = append(rows, CustomerOrderCountRow{
			FullName:   c.FullName(),
			OrderCount: counts[c.ID],
		})
	}
	return rows
}

// Top3CustomersByValue ranks customers by the summed total of their orders
// and keeps the top N (3 by default). Grouping runs over orders, keyed by the
// customer's identity, so customers without orders produce no group and are
// absent from the result.
func (s *Service) Top3CustomersByValue() ([]CustomerValueRow, error) {
	byOrder := s.itemsByOrder()
	groups := relop.GroupBy(relop.FromSlice(s.store.Orders), func(o webstore.Order) int {
		return o.CustomerID
	})

	rows := make([]CustomerValueRow, 0, len(groups))
	for _, g := range groups {
		customer, err := s.store.CustomerByID(g.Key)
		if err != nil {
			return nil, err
		}
		total := relop.Reduce(g.Members, webstore.ZeroMoney, func(acc webstore.Money, o webstore.Order) webstore.Money {
			return acc.Add(orderTotal(byOrder[o.ID]))
		})
		rows = append(rows, CustomerValueRow{FullName: customer.FullName(), TotalValue: total})
	}

	ranked := relop.SortDescFunc(rows, func(a, b CustomerValueRow) int {
		return a.TotalValue.Cmp(b.TotalValue)
	})
	return relop.TopN(ranked, s.opts.TopCustomers), nil
}

// RecentOrders lists orders placed within the recent window ending at now.
// The lower bound is inclusive: an order dated exactly now minus the window
// is included. now is always supplied by the caller, never read from a clock.
func (s *Service) RecentOrders(now time.Time) ([]RecentOrderRow, error) {
	cutoff := now.Add(-s.opts.RecentWindow)
	recent := relop.Filter(relop.FromSlice(s.store.Orders), func(o webstore.Order) bool {
		return !o.OrderDate.Before(cutoff)
	})

	var rows []RecentOrderRow
	for o := range recent {
		customer, err := s.store.CustomerByID(o.CustomerID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, RecentOrderRow{
			OrderID:      o.ID,
			OrderDate:    o.OrderDate,
			CustomerName: customer.FullName(),
		})
	}
	return rows, nil
}

// TotalSoldPerProduct sums sold quantities per product across all orders,
// sorted by total sold descending.
func (s *Service) TotalSoldPerProduct() ([]ProductSalesRow, error) {
	groups := relop.GroupBy(relop.FromSlice(s.store.OrderItems), func(it webstore.OrderItem) int {
		return it.ProductID
	})

	rows := make([]ProductSalesRow, 0, len(groups))
	for _, g := range groups {
		product, err := s.store.ProductByID(g.Key)
		if err != nil {
			return nil, err
		}
		total := relop.Sum(g.Members, func(it webstore.OrderItem) int {
			return it.Quantity
		})
		rows = append(rows, ProductSalesRow{ProductName: product.Name, TotalSold: total})
	}

	return relop.SortDesc(rows, func(r ProductSalesRow) int {
		return r.TotalSold
	}), nil
}

// DiscountedOrders lists orders carrying at least one discounted line, with
// the product names of only those discounted lines.
func (s *Service) DiscountedOrders() ([]DiscountedOrderRow, error) {
	byOrder := s.itemsByOrder()

	var rows []DiscountedOrderRow
	for _, o := range s.store.Orders {
		discounted := relop.Collect(relop.Filter(relop.FromSlice(byOrder[o.ID]), webstore.OrderItem.Discounted))
		if len(discounted) == 0 {
			continue
		}
		customer, err := s.store.CustomerByID(o.CustomerID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(discounted))
		for _, it := range discounted {
			product, err := s.store.ProductByID(it.ProductID)
			if err != nil {
				return nil, err
			}
			names = append(names, product.Name)
		}
		rows = append(rows, DiscountedOrderRow{
			OrderID:            o.ID,
			CustomerName:       customer.FullName(),
			DiscountedProducts: names,
		})
	}
	return rows, nil
}

// saleInStock is the flattened row shape after the full join chain of the
// cross-entity report.
type saleInStock struct {
	product webstore.Product
	order   webstore.Order
	stock   webstore.Stock
	store   webstore.Store
}

type productStoreKey struct {
	ProductName string
	StoreName   string
}

// FeaturedCategoryStock chains inner joins Product -> ProductCategory ->
// Category (keeping the featured category only) -> OrderItem -> Order ->
// Stock -> Store, groups by (product name, store name) and reports the max
// quantity in stock per group, sorted descending. Products outside the
// category, never sold, or never stocked drop out at the corresponding join.
func (s *Service) FeaturedCategoryStock() ([]StockRow, error) {
	categorized := relop.Join(
		relop.FromSlice(s.store.Products),
		relop.FromSlice(s.store.ProductCategories),
		func(p webstore.Product) int { return p.ID },
		func(pc webstore.ProductCategory) int { return pc.ProductID },
	)
	withCategory := relop.Join(
		categorized,
		relop.FromSlice(s.store.Categories),
		func(pr relop.Pair[webstore.Product, webstore.ProductCategory]) int { return pr.Right.CategoryID },
		func(c webstore.Category) int { return c.ID },
	)
	featured := relop.Filter(withCategory, func(pr relop.Pair[relop.Pair[webstore.Product, webstore.ProductCategory], webstore.Category]) bool {
		return pr.Right.Name == s.opts.FeaturedCategory
	})
	featuredProducts := relop.Project(featured, func(pr relop.Pair[relop.Pair[webstore.Product, webstore.ProductCategory], webstore.Category]) webstore.Product {
		return pr.Left.Left
	})

	sold := relop.Join(
		featuredProducts,
		relop.FromSlice(s.store.OrderItems),
		func(p webstore.Product) int { return p.ID },
		func(it webstore.OrderItem) int { return it.ProductID },
	)
	withOrder := relop.Join(
		sold,
		relop.FromSlice(s.store.Orders),
		func(pr relop.Pair[webstore.Product, webstore.OrderItem]) int { return pr.Right.OrderID },
		func(o webstore.Order) int { return o.ID },
	)
	stocked := relop.Join(
		withOrder,
		relop.FromSlice(s.store.Stocks),
		func(pr relop.Pair[relop.Pair[webstore.Product, webstore.OrderItem], webstore.Order]) int { return pr.Left.Left.ID },
		func(st webstore.Stock) int { return st.ProductID },
	)
	withStore := relop.Join(
		stocked,
		relop.FromSlice(s.store.Stores),
		func(pr relop.Pair[relop.Pair[relop.Pair[webstore.Product, webstore.OrderItem], webstore.Order], webstore.Stock]) int {
			return pr.Right.StoreID
		},
		func(st webstore.Store) int { return st.ID },
	)
	flat := relop.Project(withStore, func(pr relop.Pair[relop.Pair[relop.Pair[relop.Pair[webstore.Product, webstore.OrderItem], webstore.Order], webstore.Stock], webstore.Store]) saleInStock {
		return saleInStock{
			product: pr.Left.Left.Left.Left,
			order:   pr.Left.Left.Right,
			stock:   pr.Left.Right,
			store:   pr.Right,
		}
	})

	groups := relop.GroupBy(flat, func(r saleInStock) productStoreKey {
		return productStoreKey{ProductName: r.product.Name, StoreName: r.store.Name}
	})

	rows := make([]StockRow, 0, len(groups))
	for _, g := range groups {
		maxStock, err := relop.Max(g.Members, func(r saleInStock) int {
			return r.stock.QuantityInStock
		})
		if err != nil {
			return nil, err
		}
		rows = append(rows, StockRow{
			ProductName: g.Key.ProductName,
			StoreName:   g.Key.StoreName,
			MaxStock:    maxStock,
		})
	}

	return relop.SortDesc(rows, func(r StockRow) int {
		return r.MaxStock
	}), nil
}
