package business

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// Money represents a non-negative monetary amount in the platform currency.
// Amounts are kept rounded to two decimal places; every arithmetic result is
// re-rounded so repeated operations cannot accumulate sub-centavo drift.
// The zero value is a valid zero amount.
type Money struct {
	value float64
}

// NewMoney creates a Money value. Negative amounts are rejected, never
// clamped.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errors.Errorf("money amount cannot be negative: %v", amount)
	}
	return Money{value: roundCentavos(amount)}, nil
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the numeric amount.
func (m Money) Amount() float64 {
	return m.value
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.value == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{value: roundCentavos(m.value + other.value)}
}

// Subtract returns m minus other, floored at zero. Discounts can exceed the
// amount they apply to; the payable amount never goes negative.
func (m Money) Subtract(other Money) Money {
	result := m.value - other.value
	if result < 0 {
		result = 0
	}
	return Money{value: roundCentavos(result)}
}

// GreaterThan reports whether m is strictly larger than other.
func (m Money) GreaterThan(other Money) bool {
	return m.value > other.value
}

// moneyJSON is the canonical wire shape for monetary values.
type moneyJSON struct {
	Value float64 `json:"value"`
}

// MarshalJSON encodes the amount as {"value": n}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Value: m.value})
}

// UnmarshalJSON decodes {"value": n}, enforcing the non-negative invariant.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "invalid money payload")
	}
	parsed, err := NewMoney(raw.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Percentage represents a percentage in [0, 100].
type Percentage struct {
	value float64
}

// NewPercentage creates a Percentage. Out-of-range values are rejected, never
// clamped.
func NewPercentage(value float64) (Percentage, error) {
	if value < 0 || value > 100 {
		return Percentage{}, errors.Errorf("percentage must be between 0 and 100, got %v", value)
	}
	return Percentage{value: value}, nil
}

// MustPercentage creates a Percentage and panics on an out-of-range value.
// Intended for statically known constants.
func MustPercentage(value float64) Percentage {
	p, err := NewPercentage(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the numeric percentage.
func (p Percentage) Value() float64 {
	return p.value
}

// Apply returns the percentage of the given amount, rounded to two decimal
// places. The result is always within [0, amount].
func (p Percentage) Apply(amount Money) Money {
	return Money{value: roundCentavos(amount.value * p.value / 100)}
}

// MarshalJSON encodes the percentage as a bare number.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON decodes a bare number, enforcing the range invariant.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	var raw float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "invalid percentage payload")
	}
	parsed, err := NewPercentage(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// roundCentavos rounds to two decimal places.
func roundCentavos(v float64) float64 {
	return math.Round(v*100) / 100
}
