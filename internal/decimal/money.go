package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses a decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// FromStringOrZero parses a decimal from string, substituting zero for
// absent or unparsable values. CFDI producers occasionally emit empty or
// corrupted numeric attributes; callers that tolerate that use this form.
func FromStringOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero
	}
	return d
}

// TruncateInt parses a decimal representation and truncates it to an
// integer, so a Cantidad of "2.0" or "2.7" both yield 2. Unparsable
// values yield 0.
func TruncateInt(s string) int64 {
	return FromStringOrZero(s).IntPart()
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
