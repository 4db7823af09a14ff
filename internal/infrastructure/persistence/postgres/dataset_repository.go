package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"webstore_reports/internal/domain/webstore"
)

// DatasetRepository loads the full relational dataset into an EntityStore.
// All relationships are materialized by key; report evaluation does no I/O.
type DatasetRepository struct {
	pool *pgxpool.Pool
}

func NewDatasetRepository(pool *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{pool: pool}
}

func (r *DatasetRepository) LoadDataset(ctx context.Context) (*webstore.EntityStore, error) {
	customers, err := r.loadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	orders, err := r.loadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	orderItems, err := r.loadOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	products, err := r.loadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	categories, err := r.loadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	productCategories, err := r.loadProductCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product categories: %w", err)
	}
	stocks, err := r.loadStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stocks: %w", err)
	}
	stores, err := r.loadStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stores: %w", err)
	}
	carriers, err := r.loadCarriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load carriers: %w", err)
	}
	discountCodes, err := r.loadDiscountCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load discount codes: %w", err)
	}

	return webstore.NewEntityStore(
		customers,
		orders,
		orderItems,
		products,
		categories,
		productCategories,
		stocks,
		stores,
		carriers,
		discountCodes,
	)
}

func (r *DatasetRepository) loadCustomers(ctx context.Context) ([]webstore.Customer, error) {
	const query = `
		SELECT customer_id, first_name, last_name, email
		FROM customers
		ORDER BY customer_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Customer
	for rows.Next() {
		var c webstore.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadOrders(ctx context.Context) ([]webstore.Order, error) {
	const query = `
		SELECT order_id, customer_id, order_status, order_date, discount_code_id
		FROM orders
		ORDER BY order_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Order
	for rows.Next() {
		var o webstore.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.OrderDate, &o.DiscountCodeID); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadOrderItems(ctx context.Context) ([]webstore.OrderItem, error) {
	const query = `
		SELECT order_item_id, order_id, product_id, quantity, unit_price, discount
		FROM order_items
		ORDER BY order_item_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.OrderItem
	for rows.Next() {
		var it webstore.OrderItem
		var unitPrice, discount decimal.Decimal
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &unitPrice, &discount); err != nil {
			return nil, err
		}
		it.UnitPrice = webstore.MoneyFromDecimal(unitPrice)
		it.Discount = webstore.MoneyFromDecimal(discount)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadProducts(ctx context.Context) ([]webstore.Product, error) {
	const query = `
		SELECT product_id, product_name, price
		FROM products
		ORDER BY product_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Product
	for rows.Next() {
		var p webstore.Product
		var price decimal.Decimal
		if err := rows.Scan(&p.ID, &p.Name, &price); err != nil {
			return nil, err
		}
		p.Price = webstore.MoneyFromDecimal(price)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadCategories(ctx context.Context) ([]webstore.Category, error) {
	const query = `
		SELECT category_id, category_name
		FROM categories
		ORDER BY category_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Category
	for rows.Next() {
		var c webstore.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadProductCategories(ctx context.Context) ([]webstore.ProductCategory, error) {
	const query = `
		SELECT product_id, category_id
		FROM product_categories
		ORDER BY product_id, category_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.ProductCategory
	for rows.Next() {
		var pc webstore.ProductCategory
		if err := rows.Scan(&pc.ProductID, &pc.CategoryID); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadStocks(ctx context.Context) ([]webstore.Stock, error) {
	const query = `
		SELECT product_id, store_id, quantity_in_stock
		FROM stocks
		ORDER BY product_id, store_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Stock
	for rows.Next() {
		var st webstore.Stock
		if err := rows.Scan(&st.ProductID, &st.StoreID, &st.QuantityInStock); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadStores(ctx context.Context) ([]webstore.Store, error) {
	const query = `
		SELECT store_id, store_name
		FROM stores
		ORDER BY store_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Store
	for rows.Next() {
		var s webstore.Store
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadCarriers(ctx context.Context) ([]webstore.Carrier, error) {
	const query = `
		SELECT carrier_id, carrier_name
		FROM carriers
		ORDER BY carrier_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.Carrier
	for rows.Next() {
		var c webstore.Carrier
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DatasetRepository) loadDiscountCodes(ctx context.Context) ([]webstore.DiscountCode, error) {
	const query = `
		SELECT discount_code_id, code
		FROM discount_codes
		ORDER BY discount_code_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []webstore.DiscountCode
	for rows.Next() {
		var d webstore.DiscountCode
		if err := rows.Scan(&d.ID, &d.Code); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
