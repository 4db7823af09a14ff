package repository

import (
	"context"

	"webstore_reports/internal/domain/webstore"
)

// DatasetRepository hands the reporting engine a fully-resolved snapshot.
// No further I/O happens during report evaluation.
type DatasetRepository interface {
	LoadDataset(ctx context.Context) (*webstore.EntityStore, error)
}

// OrderWriter persists consumed order snapshots together with their items.
type OrderWriter interface {
	SaveOrder(ctx context.Context, order webstore.Order, items []webstore.OrderItem) error
}
