package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/helpers"
)

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected int64
	}{
		{
			name:     "whole dollars",
			amount:   1250,
			expected: 125000,
		},
		{
			name:     "two fraction digits",
			amount:   468.75,
			expected: 46875,
		},
		{
			name:     "rounds repeating fraction",
			amount:   1606.6176470588235,
			expected: 160662,
		},
		{
			name:     "rounds up at half a cent",
			amount:   0.005,
			expected: 1,
		},
		{
			name:     "near-integer float noise",
			amount:   999.99,
			expected: 99999,
		},
		{
			name:     "zero",
			amount:   0,
			expected: 0,
		},
		{
			name:     "huge amount saturates at the int64 ceiling",
			amount:   1e300,
			expected: math.MaxInt64,
		},
		{
			name:     "huge negative amount saturates at the int64 floor",
			amount:   -1e300,
			expected: math.MinInt64,
		},
		{
			name:     "not a number yields zero cents",
			amount:   math.NaN(),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.DollarsToCents(tt.amount))
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name        string
		amountCents int64
		expected    string
	}{
		{
			name:        "zero",
			amountCents: 0,
			expected:    "$0.00",
		},
		{
			name:        "under a thousand",
			amountCents: 46875,
			expected:    "$468.75",
		},
		{
			name:        "thousand separator",
			amountCents: 125000,
			expected:    "$1,250.00",
		},
		{
			name:        "non-round cents",
			amountCents: 160662,
			expected:    "$1,606.62",
		},
		{
			name:        "multiple separators",
			amountCents: 123456789,
			expected:    "$1,234,567.89",
		},
		{
			name:        "exactly one million",
			amountCents: 100000000,
			expected:    "$1,000,000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.FormatUSD(tt.amountCents))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected string
	}{
		{
			name:     "zero attainment",
			ratio:    0,
			expected: "0.0%",
		},
		{
			name:     "half attainment",
			ratio:    0.5,
			expected: "50.0%",
		},
		{
			name:     "full attainment",
			ratio:    1,
			expected: "100.0%",
		},
		{
			name:     "over quota rounds to one decimal",
			ratio:    19.0 / 17.0,
			expected: "111.8%",
		},
		{
			name:     "repeating fraction",
			ratio:    10.0 / 12.0,
			expected: "83.3%",
		},
		{
			name:     "well over quota",
			ratio:    2.5,
			expected: "250.0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.FormatPercent(tt.ratio))
		})
	}
}
