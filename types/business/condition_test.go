package business_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tahanan/tahanan-api/types/business"
)

func TestUserContext_Resolve(t *testing.T) {
	ctx := business.UserContext{
		"age": 65,
		"booking": map[string]interface{}{
			"listing": map[string]interface{}{
				"type": "hosted",
			},
			"hour": 5,
		},
		"nothing": nil,
	}

	tests := []struct {
		name     string
		path     string
		expected interface{}
		found    bool
	}{
		{name: "top-level field", path: "age", expected: 65, found: true},
		{name: "nested field", path: "booking.hour", expected: 5, found: true},
		{name: "deeply nested field", path: "booking.listing.type", expected: "hosted", found: true},
		{name: "missing field", path: "missing", found: false},
		{name: "missing nested segment", path: "booking.missing", found: false},
		{name: "path through non-map", path: "age.years", found: false},
		{name: "nil terminal value", path: "nothing", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ctx.Resolve(tt.path)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestDiscountCondition_Evaluate(t *testing.T) {
	ctx := business.UserContext{
		"age":      65,
		"hasPWDId": true,
		"userType": "Guest",
		"score":    4.5,
		"tags":     []string{"vip"},
	}

	tests := []struct {
		name     string
		field    string
		operator business.ConditionOperator
		value    interface{}
		expected bool
	}{
		{name: "equals matching number", field: "age", operator: business.OperatorEquals, value: 65, expected: true},
		{name: "equals across numeric types", field: "age", operator: business.OperatorEquals, value: float64(65), expected: true},
		{name: "equals non-matching", field: "age", operator: business.OperatorEquals, value: 64, expected: false},
		{name: "equals matching bool", field: "hasPWDId", operator: business.OperatorEquals, value: true, expected: true},
		{name: "equals type mismatch", field: "age", operator: business.OperatorEquals, value: "65", expected: false},
		{name: "not_equals", field: "age", operator: business.OperatorNotEquals, value: 64, expected: true},
		{name: "not_equals matching value", field: "age", operator: business.OperatorNotEquals, value: 65, expected: false},
		{name: "greater_than true", field: "age", operator: business.OperatorGreaterThan, value: 60, expected: true},
		{name: "greater_than equal boundary", field: "age", operator: business.OperatorGreaterThan, value: 65, expected: false},
		{name: "greater_than_or_equal boundary", field: "age", operator: business.OperatorGreaterThanOrEqual, value: 65, expected: true},
		{name: "greater_than on float field", field: "score", operator: business.OperatorGreaterThan, value: 4, expected: true},
		{name: "less_than true", field: "age", operator: business.OperatorLessThan, value: 70, expected: true},
		{name: "less_than_or_equal boundary", field: "age", operator: business.OperatorLessThanOrEqual, value: 65, expected: true},
		{name: "numeric operator on string field", field: "userType", operator: business.OperatorGreaterThan, value: 10, expected: false},
		{name: "numeric operator with string operand", field: "age", operator: business.OperatorGreaterThan, value: "60", expected: false},
		{name: "contains case-insensitive", field: "userType", operator: business.OperatorContains, value: "guest", expected: true},
		{name: "contains substring", field: "userType", operator: business.OperatorContains, value: "ues", expected: true},
		{name: "contains no match", field: "userType", operator: business.OperatorContains, value: "host", expected: false},
		{name: "contains on non-string field", field: "age", operator: business.OperatorContains, value: "6", expected: false},
		{name: "not_contains", field: "userType", operator: business.OperatorNotContains, value: "host", expected: true},
		{name: "missing field fails closed", field: "missing", operator: business.OperatorEquals, value: 1, expected: false},
		{name: "unknown operator fails closed", field: "age", operator: business.ConditionOperator("matches"), value: 65, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			condition := business.NewDiscountCondition(tt.field, tt.operator, tt.value)
			assert.Equal(t, tt.expected, condition.Evaluate(ctx))
		})
	}
}
