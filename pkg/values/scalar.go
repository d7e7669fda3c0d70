package values

import (
	"math"
	"strconv"
)

// Fixed-point precision for scalar arithmetic. Scalar resource math is only
// meaningful to one-thousandth of a unit; converting through fixed point keeps
// repeated accumulation of fractional amounts (0.1 cpus, say) exact instead of
// drifting with float error.
const fixedPrecision = 1000

// fixedRange bounds the amounts that go through fixed-point math, leaving
// headroom so the sum of two in-range fixed values cannot overflow int64.
// Larger amounts (byte-denominated resources reach 1e19) are compared and
// combined as plain floats; float64 cannot resolve thousandths at that
// magnitude anyway.
const fixedRange = float64(math.MaxInt64) / (4 * fixedPrecision)

// Scalar is a numeric amount of a named resource, e.g. CPU shares or bytes of
// memory. The zero value is the additive identity.
type Scalar struct {
	value float64
}

// NewScalar returns a Scalar holding the given amount.
func NewScalar(value float64) Scalar {
	return Scalar{value: value}
}

func toFixed(value float64) int64 {
	return int64(math.Round(value * fixedPrecision))
}

func fromFixed(fixed int64) float64 {
	return float64(fixed) / fixedPrecision
}

func inFixedRange(value float64) bool {
	return math.Abs(value) < fixedRange
}

// Value returns the amount as a float64, rounded to the supported precision.
func (s Scalar) Value() float64 {
	if !inFixedRange(s.value) {
		return s.value
	}
	return fromFixed(toFixed(s.value))
}

// Add returns the sum of the two scalars.
func (s Scalar) Add(other Scalar) Scalar {
	if !inFixedRange(s.value) || !inFixedRange(other.value) {
		return Scalar{value: s.value + other.value}
	}
	return Scalar{value: fromFixed(toFixed(s.value) + toFixed(other.value))}
}

// Sub returns the difference of the two scalars. The result may be negative;
// callers that require non-negative amounts must check before storing it.
func (s Scalar) Sub(other Scalar) Scalar {
	if !inFixedRange(s.value) || !inFixedRange(other.value) {
		return Scalar{value: s.value - other.value}
	}
	return Scalar{value: fromFixed(toFixed(s.value) - toFixed(other.value))}
}

// Cmp returns -1, 0, or 1 as s is less than, equal to, or greater than other.
func (s Scalar) Cmp(other Scalar) int {
	if !inFixedRange(s.value) || !inFixedRange(other.value) {
		switch {
		case s.value < other.value:
			return -1
		case s.value > other.value:
			return 1
		default:
			return 0
		}
	}

	a, b := toFixed(s.value), toFixed(other.value)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether s is strictly smaller than other.
func (s Scalar) LessThan(other Scalar) bool {
	return s.Cmp(other) < 0
}

// LessThanOrEqual reports whether s is at most other.
func (s Scalar) LessThanOrEqual(other Scalar) bool {
	return s.Cmp(other) <= 0
}

// Equal reports whether the two scalars hold the same amount.
func (s Scalar) Equal(other Scalar) bool {
	return s.Cmp(other) == 0
}

// IsZero reports whether the scalar holds no amount.
func (s Scalar) IsZero() bool {
	return s.Cmp(Scalar{}) == 0
}

// IsNegative reports whether the scalar holds a negative amount. The raw sign
// is checked, not the rounded one, so any negative input is rejected at parse
// time regardless of magnitude.
func (s Scalar) IsNegative() bool {
	return s.value < 0
}

func (s Scalar) String() string {
	return strconv.FormatFloat(s.Value(), 'f', -1, 64)
}
