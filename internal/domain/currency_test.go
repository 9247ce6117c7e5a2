package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{4999, "$49.99"},
		{123400, "$1,234.00"},
		{123456789, "$1,234,567.89"},
		{100000000, "$1,000,000.00"},
		{-4999, "-$49.99"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.cents); got != tt.want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		cents int64
		major float64
	}{
		{"49.99", 4999, 49.99},
		{"12.50", 1250, 12.50},
		{"1", 100, 1},
		{"0.01", 1, 0.01},
		{"10.005", 1001, 10.01}, // rounds at the 2-decimal boundary
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		cents := ToCents(d)
		if cents != tt.cents {
			t.Errorf("ToCents(%s) = %d, want %d", tt.input, cents, tt.cents)
		}
		if got := FromCents(cents); got != tt.major {
			t.Errorf("FromCents(%d) = %v, want %v", cents, got, tt.major)
		}
	}
}
