package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"webstore_reports/internal/domain/webstore"
)

// MockOrderWriter mocks the repository.OrderWriter interface.
type MockOrderWriter struct {
	mock.Mock
}

func (m *MockOrderWriter) SaveOrder(ctx context.Context, order webstore.Order, items []webstore.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func validEvent() OrderEvent {
	return OrderEvent{
		OrderID:    101,
		CustomerID: 1,
		Status:     webstore.StatusPending,
		OrderDate:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Items: []OrderEventItem{
			{OrderItemID: 1001, ProductID: 1, Quantity: 2, UnitPrice: webstore.MustMoney("10.00"), Discount: webstore.MustMoney("1.00")},
		},
	}
}

func TestService_HandleOrderEvent_Success(t *testing.T) {
	// Arrange
	mockWriter := new(MockOrderWriter)
	service := NewService(mockWriter)

	ctx := context.Background()
	event := validEvent()

	mockWriter.On("SaveOrder", ctx, mock.MatchedBy(func(o webstore.Order) bool {
		return o.ID == 101 && o.Status == webstore.StatusPending
	}), mock.MatchedBy(func(items []webstore.OrderItem) bool {
		return len(items) == 1 && items[0].OrderID == 101
	})).Return(nil)

	// Act
	err := service.HandleOrderEvent(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockWriter.AssertExpectations(t)
}

func TestService_HandleOrderEvent_InvalidQuantity(t *testing.T) {
	// Arrange
	mockWriter := new(MockOrderWriter)
	service := NewService(mockWriter)

	event := validEvent()
	event.Items[0].Quantity = 0

	// Act
	err := service.HandleOrderEvent(context.Background(), event)

	// Assert
	assert.ErrorIs(t, err, webstore.ErrInvalidQuantity)
	mockWriter.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleOrderEvent_MissingStatus(t *testing.T) {
	// Arrange
	mockWriter := new(MockOrderWriter)
	service := NewService(mockWriter)

	event := validEvent()
	event.Status = ""

	// Act
	err := service.HandleOrderEvent(context.Background(), event)

	// Assert
	assert.ErrorIs(t, err, webstore.ErrMissingField)
	mockWriter.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleOrderEvent_WriterError(t *testing.T) {
	// Arrange
	mockWriter := new(MockOrderWriter)
	service := NewService(mockWriter)

	ctx := context.Background()
	saveErr := errors.New("db down")
	mockWriter.On("SaveOrder", ctx, mock.Anything, mock.Anything).Return(saveErr)

	// Act
	err := service.HandleOrderEvent(ctx, validEvent())

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "save order")
	mockWriter.AssertExpectations(t)
}
