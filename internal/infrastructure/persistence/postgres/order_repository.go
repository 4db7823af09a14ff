package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"webstore_reports/internal/domain/webstore"
)

// OrderRepository is the write side used by the order-event consumer: it
// upserts an order snapshot together with its items, replacing the previous
// item set so the dataset reflects the latest event.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) SaveOrder(ctx context.Context, order webstore.Order, items []webstore.OrderItem) error {
	const upsertOrder = `
		INSERT INTO orders (order_id, customer_id, order_status, order_date, discount_code_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO UPDATE
		SET customer_id = EXCLUDED.customer_id,
			order_status = EXCLUDED.order_status,
			order_date = EXCLUDED.order_date,
			discount_code_id = EXCLUDED.discount_code_id;
	`
	const deleteItems = `
		DELETE FROM order_items WHERE order_id = $1;
	`
	const insertItem = `
		INSERT INTO order_items (order_item_id, order_id, product_id, quantity, unit_price, discount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, upsertOrder,
		order.ID,
		order.CustomerID,
		order.Status,
		order.OrderDate,
		order.DiscountCodeID,
	); err != nil {
		return fmt.Errorf("upsert order %d: %w", order.ID, err)
	}

	if _, err := tx.Exec(ctx, deleteItems, order.ID); err != nil {
		return fmt.Errorf("clear items of order %d: %w", order.ID, err)
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, insertItem,
			it.ID,
			it.OrderID,
			it.ProductID,
			it.Quantity,
			it.UnitPrice.Decimal(),
			it.Discount.Decimal(),
		); err != nil {
			return fmt.Errorf("insert item %d of order %d: %w", it.ID, order.ID, err)
		}
	}

	return tx.Commit(ctx)
}
