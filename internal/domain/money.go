package domain

import "github.com/shopspring/decimal"

// Money is a positive monetary amount rounded to two decimal places.
// NewMoney is the only construction path; every amount entering the
// system passes through it.
type Money struct {
	value decimal.Decimal
}

// NewMoney validates value and rounds it to two decimal places,
// half away from zero.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Money{}, ErrInvalidAmount
	}

	return Money{value: value.Round(2)}, nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) String() string {
	return m.value.StringFixed(2)
}
