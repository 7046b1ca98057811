package decimal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	xdecimal "github.com/fiscalmx/cfdi-extractor/internal/decimal"
)

func TestFromStringOrZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain number", "116.00", "116"},
		{"whitespace", " 16.5 ", "16.5"},
		{"empty", "", "0"},
		{"garbage", "not-a-number", "0"},
		{"negative", "-3.25", "-3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, xdecimal.FromStringOrZero(tt.input).Equal(expected))
		})
	}
}

func TestTruncateInt(t *testing.T) {
	assert.Equal(t, int64(1), xdecimal.TruncateInt("1.0"))
	assert.Equal(t, int64(2), xdecimal.TruncateInt("2.7"))
	assert.Equal(t, int64(0), xdecimal.TruncateInt(""))
	assert.Equal(t, int64(0), xdecimal.TruncateInt("abc"))
	assert.Equal(t, int64(-1), xdecimal.TruncateInt("-1.9"))
}

func TestSum(t *testing.T) {
	values := []decimal.Decimal{
		decimal.RequireFromString("16.00"),
		decimal.RequireFromString("8.00"),
	}
	assert.True(t, xdecimal.Sum(values).Equal(decimal.RequireFromString("24.00")))
	assert.True(t, xdecimal.Sum(nil).IsZero())
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, xdecimal.IsNonNegative(xdecimal.Zero))
	assert.True(t, xdecimal.IsNonNegative(decimal.RequireFromString("0.01")))
	assert.False(t, xdecimal.IsNonNegative(decimal.RequireFromString("-0.01")))
}
