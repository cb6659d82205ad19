package services

import (
	"github.com/tahanan/tahanan-api/constants"
	"github.com/tahanan/tahanan-api/logger"
	"github.com/tahanan/tahanan-api/types/business"
	"go.uber.org/zap"
)

// VATCalculator computes VAT on a (possibly discounted) amount, honoring the
// VAT exemption carried by statutory discounts.
type VATCalculator struct {
	rate   business.Percentage
	logger *zap.Logger
}

// NewVATCalculator creates a calculator with the standard 12% rate.
func NewVATCalculator() *VATCalculator {
	return NewVATCalculatorWithRate(business.MustPercentage(constants.DefaultVATRatePercent))
}

// NewVATCalculatorWithRate creates a calculator with a custom default rate.
func NewVATCalculatorWithRate(rate business.Percentage) *VATCalculator {
	return &VATCalculator{
		rate:   rate,
		logger: logger.Log,
	}
}

// Rate returns the calculator's default VAT rate.
func (c *VATCalculator) Rate() business.Percentage {
	return c.rate
}

// Calculate produces the VAT breakdown using the default rate.
//
// If any applied discount is VAT-exempt the whole transaction is exempt:
// VAT is zero and the net and total both equal the original amount. The
// exemption short-circuits before discount amounts are netted out, so the
// discounts are recorded but do not reduce the exempt total. This mirrors
// how statutory exemptions are booked upstream and is relied on by the
// checkout flow; see the regression tests before changing it.
func (c *VATCalculator) Calculate(originalAmount business.Money, appliedDiscounts []business.AppliedDiscount) business.VATCalculation {
	return c.calculate(originalAmount, appliedDiscounts, c.rate)
}

// CalculateWithCustomRate is Calculate with an explicit rate instead of the
// default.
func (c *VATCalculator) CalculateWithCustomRate(originalAmount business.Money, appliedDiscounts []business.AppliedDiscount, rate business.Percentage) business.VATCalculation {
	return c.calculate(originalAmount, appliedDiscounts, rate)
}

func (c *VATCalculator) calculate(originalAmount business.Money, appliedDiscounts []business.AppliedDiscount, rate business.Percentage) business.VATCalculation {
	exemptionReasons := []business.AppliedDiscount{}
	for _, discount := range appliedDiscounts {
		if discount.IsVATExempt {
			exemptionReasons = append(exemptionReasons, discount)
		}
	}

	if len(exemptionReasons) > 0 {
		c.logger.Debug("Transaction is VAT-exempt",
			zap.Int("exempt_discounts", len(exemptionReasons)),
			zap.Float64("original_amount", originalAmount.Amount()))

		return business.VATCalculation{
			NetAmount:        originalAmount,
			VATAmount:        business.ZeroMoney(),
			TotalAmount:      originalAmount,
			VATRate:          rate,
			IsExempt:         true,
			ExemptionReasons: exemptionReasons,
		}
	}

	totalDiscount := business.ZeroMoney()
	for _, discount := range appliedDiscounts {
		totalDiscount = totalDiscount.Add(discount.Amount)
	}

	netAmount := originalAmount.Subtract(totalDiscount)
	vatAmount := rate.Apply(netAmount)

	return business.VATCalculation{
		NetAmount:        netAmount,
		VATAmount:        vatAmount,
		TotalAmount:      netAmount.Add(vatAmount),
		VATRate:          rate,
		IsExempt:         false,
		ExemptionReasons: exemptionReasons,
	}
}
