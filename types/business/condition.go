package business

import (
	"strings"

	"github.com/google/uuid"
)

// ConditionOperator identifies a comparison applied by a discount condition.
type ConditionOperator string

const (
	OperatorEquals             ConditionOperator = "equals"
	OperatorNotEquals          ConditionOperator = "not_equals"
	OperatorGreaterThan        ConditionOperator = "greater_than"
	OperatorGreaterThanOrEqual ConditionOperator = "greater_than_or_equal"
	OperatorLessThan           ConditionOperator = "less_than"
	OperatorLessThanOrEqual    ConditionOperator = "less_than_or_equal"
	OperatorContains           ConditionOperator = "contains"
	OperatorNotContains        ConditionOperator = "not_contains"
)

// IsValid reports whether the operator is one of the supported comparisons.
func (o ConditionOperator) IsValid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals,
		OperatorGreaterThan, OperatorGreaterThanOrEqual,
		OperatorLessThan, OperatorLessThanOrEqual,
		OperatorContains, OperatorNotContains:
		return true
	}
	return false
}

// DiscountCondition is a single predicate over the user context. Conditions
// are created with their owning rule and never mutated afterwards.
type DiscountCondition struct {
	ID       uuid.UUID         `json:"id"`
	Field    string            `json:"field"` // dot-path into the user context
	Operator ConditionOperator `json:"operator"`
	Value    interface{}       `json:"value"`
}

// NewDiscountCondition creates a condition with a fresh id.
func NewDiscountCondition(field string, operator ConditionOperator, value interface{}) DiscountCondition {
	return DiscountCondition{
		ID:       uuid.New(),
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

// Evaluate resolves the condition field against the context and applies the
// operator. Evaluation is fail-closed: a missing field, nil terminal value,
// operand type mismatch, or unknown operator all evaluate to false rather
// than erroring, so a malformed rule can never grant a discount.
func (c DiscountCondition) Evaluate(ctx UserContext) bool {
	actual, ok := ctx.Resolve(c.Field)
	if !ok {
		return false
	}

	switch c.Operator {
	case OperatorEquals:
		return valuesEqual(actual, c.Value)
	case OperatorNotEquals:
		return !valuesEqual(actual, c.Value)
	case OperatorGreaterThan:
		return compareNumeric(actual, c.Value, func(a, b float64) bool { return a > b })
	case OperatorGreaterThanOrEqual:
		return compareNumeric(actual, c.Value, func(a, b float64) bool { return a >= b })
	case OperatorLessThan:
		return compareNumeric(actual, c.Value, func(a, b float64) bool { return a < b })
	case OperatorLessThanOrEqual:
		return compareNumeric(actual, c.Value, func(a, b float64) bool { return a <= b })
	case OperatorContains:
		return compareStrings(actual, c.Value, func(a, b string) bool { return strings.Contains(a, b) })
	case OperatorNotContains:
		return compareStrings(actual, c.Value, func(a, b string) bool { return !strings.Contains(a, b) })
	default:
		return false
	}
}

// valuesEqual performs strict equality over the supported primitive kinds.
// Numbers compare across integer/float representations so a context int
// matches a JSON-decoded float64.
func valuesEqual(a, b interface{}) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

func compareNumeric(a, b interface{}, cmp func(a, b float64) bool) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return false
	}
	return cmp(af, bf)
}

func compareStrings(a, b interface{}, cmp func(a, b string) bool) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if !aok || !bok {
		return false
	}
	return cmp(strings.ToLower(as), strings.ToLower(bs))
}

// toFloat widens any Go numeric type to float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
