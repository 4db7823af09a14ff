package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededRepository(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	repo, err := NewSeededRepository(now)
	require.NoError(t, err)

	store, err := repo.LoadDataset(context.Background())
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.Len(t, store.Customers, 4)
	assert.NotEmpty(t, store.Orders)
	assert.NotEmpty(t, store.OrderItems)
	assert.Len(t, store.Stores, 2)

	// Same snapshot on every load.
	again, err := repo.LoadDataset(context.Background())
	require.NoError(t, err)
	assert.Same(t, store, again)
}
