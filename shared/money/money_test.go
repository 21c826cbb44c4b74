package money_test

import (
	"testing"

	"hotel/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "two decimals", value: "299.00", want: "299.00"},
		{name: "integer", value: "459", want: "459.00"},
		{name: "zero", value: "0", want: "0.00"},
		{name: "negative", value: "-1.00", wantErr: money.ErrNegativeAmount},
		{name: "not a number", value: "$299", wantErr: money.ErrInvalidAmount},
		{name: "empty", value: "", wantErr: money.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, money.Format(got))
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		nights  int
		want    string
		wantErr bool
	}{
		{name: "three nights deluxe king", price: "299.00", nights: 3, want: "897.00"},
		{name: "one night presidential", price: "899.00", nights: 1, want: "899.00"},
		{name: "fractional price", price: "259.99", nights: 2, want: "519.98"},
		{name: "zero nights", price: "359.00", nights: 0, want: "0.00"},
		{name: "bad price", price: "abc", nights: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Total(tt.price, tt.nights)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
