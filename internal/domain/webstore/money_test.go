package webstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_ExactArithmetic(t *testing.T) {
	// The classic float trap: 0.1 + 0.2 must be exactly 0.30.
	sum := MustMoney("0.1").Add(MustMoney("0.2"))
	assert.Equal(t, "0.30", sum.String())
}

func TestMoney_String_TwoDecimals(t *testing.T) {
	assert.Equal(t, "5.00", MustMoney("5").String())
	assert.Equal(t, "5.10", MustMoney("5.1").String())
	assert.Equal(t, "-1.50", MustMoney("-1.5").String())
}

func TestMoneyFromString_Invalid(t *testing.T) {
	_, err := MoneyFromString("not-money")
	assert.Error(t, err)
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(MustMoney("19.9"))
	require.NoError(t, err)
	assert.Equal(t, `"19.90"`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 0, back.Cmp(MustMoney("19.90")))
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{
		Quantity:  2,
		UnitPrice: MustMoney("10.00"),
		Discount:  MustMoney("1.00"),
	}
	assert.Equal(t, "19.00", item.LineTotal().String())
}

func TestOrderItem_LineTotal_DiscountExceedsSubtotal(t *testing.T) {
	// Negative line totals are valid input, not an error.
	item := OrderItem{
		Quantity:  1,
		UnitPrice: MustMoney("5.00"),
		Discount:  MustMoney("7.50"),
	}
	assert.Equal(t, "-2.50", item.LineTotal().String())
	assert.True(t, item.LineTotal().IsNegative())
}

func TestNewOrderItem_Validation(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice Money
		discount  Money
		wantErr   error
	}{
		{name: "valid", quantity: 1, unitPrice: MustMoney("1.00"), discount: ZeroMoney},
		{name: "zero quantity", quantity: 0, unitPrice: MustMoney("1.00"), discount: ZeroMoney, wantErr: ErrInvalidQuantity},
		{name: "negative price", quantity: 1, unitPrice: MustMoney("-1.00"), discount: ZeroMoney, wantErr: ErrInvalidPrice},
		{name: "negative discount", quantity: 1, unitPrice: MustMoney("1.00"), discount: MustMoney("-0.01"), wantErr: ErrInvalidDiscount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderItem(1, 1, 1, tt.quantity, tt.unitPrice, tt.discount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
