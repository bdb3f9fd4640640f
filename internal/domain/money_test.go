package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        string
		expectError bool
	}{
		{name: "positive integer", value: "100", want: "100.00"},
		{name: "rounds half away from zero", value: "2.005", want: "2.01"},
		{name: "rounds down", value: "3.14159", want: "3.14"},
		{name: "rounds up", value: "2.675", want: "2.68"},
		{name: "already two decimals", value: "40.00", want: "40.00"},
		{name: "smallest unit", value: "0.01", want: "0.01"},
		{name: "zero rejected", value: "0", expectError: true},
		{name: "negative rejected", value: "-2.005", expectError: true},
		{name: "tiny negative rejected", value: "-0.001", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := decimal.NewFromString(tt.value)
			if err != nil {
				t.Fatalf("bad test value: %v", err)
			}

			money, err := NewMoney(value)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := money.String(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
