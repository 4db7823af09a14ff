package webstore

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. All report arithmetic goes through
// this type so sums stay exact; currency display precision is two decimals.
type Money struct {
	value decimal.Decimal
}

// ZeroMoney is the additive identity for monetary sums.
var ZeroMoney = Money{}

// MoneyFromString parses a decimal literal such as "10.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// MustMoney is MoneyFromString for literals in fixtures and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromDecimal wraps an already-exact decimal value.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{value: d}
}

func (m Money) Add(o Money) Money {
	return Money{value: m.value.Add(o.value)}
}

func (m Money) Sub(o Money) Money {
	return Money{value: m.value.Sub(o.value)}
}

func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))}
}

// Cmp returns -1, 0 or 1 as m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int {
	return m.value.Cmp(o.value)
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.value.StringFixed(2)
}

// MarshalJSON emits the fixed two-decimal string form so JSON consumers never
// see a binary float.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal literals.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("unmarshal money %q: %w", s, err)
	}
	m.value = d
	return nil
}
