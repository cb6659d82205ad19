package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahanan/tahanan-api/services"
	"github.com/tahanan/tahanan-api/types/business"
)

func appliedDiscount(t *testing.T, name string, percent, amount float64, vatExempt bool) business.AppliedDiscount {
	t.Helper()
	rule := business.NewDiscountRule(name, business.DiscountTypeCustom, business.MustPercentage(percent), vatExempt, nil)
	return rule.CalculateDiscount(mustMoney(t, amount))
}

func TestVATCalculator_Calculate_StandardPath(t *testing.T) {
	calculator := services.NewVATCalculator()

	tests := []struct {
		name            string
		originalAmount  float64
		discounts       []business.AppliedDiscount
		expectedNet     float64
		expectedVAT     float64
		expectedTotal   float64
	}{
		{
			name:           "no discounts",
			originalAmount: 100,
			discounts:      nil,
			expectedNet:    100,
			expectedVAT:    12,
			expectedTotal:  112,
		},
		{
			name:           "single discount nets out",
			originalAmount: 100,
			discounts:      []business.AppliedDiscount{appliedDiscount(t, "Student", 15, 100, false)},
			expectedNet:    85,
			expectedVAT:    10.2,
			expectedTotal:  95.2,
		},
		{
			name:           "multiple discounts sum before netting",
			originalAmount: 100,
			discounts: []business.AppliedDiscount{
				appliedDiscount(t, "Promo A", 10, 100, false),
				appliedDiscount(t, "Promo B", 15, 100, false),
			},
			expectedNet:   75,
			expectedVAT:   9,
			expectedTotal: 84,
		},
		{
			name:           "discounts above amount clamp net at zero",
			originalAmount: 100,
			discounts: []business.AppliedDiscount{
				appliedDiscount(t, "Sixty", 60, 100, false),
				appliedDiscount(t, "Seventy", 70, 100, false),
			},
			expectedNet:   0,
			expectedVAT:   0,
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calculator.Calculate(mustMoney(t, tt.originalAmount), tt.discounts)

			assert.False(t, result.IsExempt)
			assert.Empty(t, result.ExemptionReasons)
			assert.InDelta(t, tt.expectedNet, result.NetAmount.Amount(), 1e-9)
			assert.InDelta(t, tt.expectedVAT, result.VATAmount.Amount(), 1e-9)
			assert.InDelta(t, tt.expectedTotal, result.TotalAmount.Amount(), 1e-9)
			assert.InDelta(t, result.NetAmount.Amount()+result.VATAmount.Amount(), result.TotalAmount.Amount(), 1e-9)
			assert.Equal(t, 12.0, result.VATRate.Value())
		})
	}
}

func TestVATCalculator_Calculate_ExemptionDominance(t *testing.T) {
	calculator := services.NewVATCalculator()

	exempt := appliedDiscount(t, "Senior Citizen Discount", 20, 100, true)
	regular := appliedDiscount(t, "Promo", 10, 100, false)

	result := calculator.Calculate(mustMoney(t, 100), []business.AppliedDiscount{regular, exempt})

	// Any VAT-exempt discount exempts the whole transaction: zero VAT and a
	// total equal to the original amount. Discount amounts are not netted
	// out on this branch.
	assert.True(t, result.IsExempt)
	assert.Equal(t, 0.0, result.VATAmount.Amount())
	assert.Equal(t, 100.0, result.NetAmount.Amount())
	assert.Equal(t, 100.0, result.TotalAmount.Amount())

	require.Len(t, result.ExemptionReasons, 1)
	assert.Equal(t, "Senior Citizen Discount", result.ExemptionReasons[0].Name)
}

func TestVATCalculator_CalculateWithCustomRate(t *testing.T) {
	calculator := services.NewVATCalculator()

	result := calculator.CalculateWithCustomRate(mustMoney(t, 200), nil, business.MustPercentage(5))

	assert.Equal(t, 200.0, result.NetAmount.Amount())
	assert.Equal(t, 10.0, result.VATAmount.Amount())
	assert.Equal(t, 210.0, result.TotalAmount.Amount())
	assert.Equal(t, 5.0, result.VATRate.Value())
}

func TestNewVATCalculatorWithRate(t *testing.T) {
	calculator := services.NewVATCalculatorWithRate(business.MustPercentage(8))
	assert.Equal(t, 8.0, calculator.Rate().Value())

	result := calculator.Calculate(mustMoney(t, 50), nil)
	assert.Equal(t, 4.0, result.VATAmount.Amount())
}
