// Package ingest persists order snapshot events consumed from Kafka so the
// reporting dataset stays current between runs.
package ingest

import (
	"context"
	"fmt"
	"time"

	"webstore_reports/internal/domain/repository"
	"webstore_reports/internal/domain/webstore"
)

// OrderEvent is one full order snapshot as published by the order system.
type OrderEvent struct {
	OrderID        int              `json:"order_id"`
	CustomerID     int              `json:"customer_id"`
	Status         string           `json:"status"`
	OrderDate      time.Time        `json:"order_date"`
	DiscountCodeID *int             `json:"discount_code_id,omitempty"`
	Items          []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	OrderItemID int            `json:"order_item_id"`
	ProductID   int            `json:"product_id"`
	Quantity    int            `json:"quantity"`
	UnitPrice   webstore.Money `json:"unit_price"`
	Discount    webstore.Money `json:"discount"`
}

type Service struct {
	writer repository.OrderWriter
}

func NewService(writer repository.OrderWriter) *Service {
	return &Service{writer: writer}
}

// HandleOrderEvent validates the snapshot through the domain constructors and
// writes it as one atomic upsert.
func (s *Service) HandleOrderEvent(ctx context.Context, event OrderEvent) error {
	order, err := webstore.NewOrder(event.OrderID, event.CustomerID, event.Status, event.OrderDate)
	if err != nil {
		return fmt.Errorf("order %d: %w", event.OrderID, err)
	}
	order.DiscountCodeID = event.DiscountCodeID

	items := make([]webstore.OrderItem, 0, len(event.Items))
	for _, ei := range event.Items {
		item, err := webstore.NewOrderItem(ei.OrderItemID, event.OrderID, ei.ProductID, ei.Quantity, ei.UnitPrice, ei.Discount)
		if err != nil {
			return fmt.Errorf("order %d item %d: %w", event.OrderID, ei.OrderItemID, err)
		}
		items = append(items, item)
	}

	if err := s.writer.SaveOrder(ctx, order, items); err != nil {
		return fmt.Errorf("save order %d: %w", event.OrderID, err)
	}
	return nil
}
