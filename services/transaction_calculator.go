package services

import (
	"github.com/tahanan/tahanan-api/interfaces"
	"github.com/tahanan/tahanan-api/logger"
	"github.com/tahanan/tahanan-api/types/business"
	"go.uber.org/zap"
)

// TransactionCalculator orchestrates the discount engine and VAT calculator
// into the final transaction breakdown consumed by checkout and reporting.
type TransactionCalculator struct {
	discounts interfaces.DiscountCalculator
	vat       interfaces.VATCalculator
	logger    *zap.Logger
}

// NewTransactionCalculator creates a transaction calculator.
func NewTransactionCalculator(discounts interfaces.DiscountCalculator, vat interfaces.VATCalculator) *TransactionCalculator {
	return &TransactionCalculator{
		discounts: discounts,
		vat:       vat,
		logger:    logger.Log,
	}
}

// Calculate applies every eligible discount to the original amount, computes
// VAT on the result and wraps both into the terminal audit artifact.
func (c *TransactionCalculator) Calculate(originalAmount business.Money, ctx business.UserContext) business.TransactionCalculation {
	appliedDiscounts := c.discounts.ApplyAllApplicableDiscounts(originalAmount, ctx)
	vatCalculation := c.vat.Calculate(originalAmount, appliedDiscounts)

	calculation := business.TransactionCalculation{
		OriginalAmount:   originalAmount,
		AppliedDiscounts: appliedDiscounts,
		VATCalculation:   vatCalculation,
		FinalAmount:      vatCalculation.TotalAmount,
	}

	c.logger.Info("Calculated transaction",
		zap.Float64("original_amount", originalAmount.Amount()),
		zap.Int("applied_discounts", len(appliedDiscounts)),
		zap.Bool("vat_exempt", vatCalculation.IsExempt),
		zap.Float64("final_amount", calculation.FinalAmount.Amount()))

	return calculation
}

// CalculateWithCustomVATRate is Calculate with an explicit VAT rate.
func (c *TransactionCalculator) CalculateWithCustomVATRate(originalAmount business.Money, ctx business.UserContext, rate business.Percentage) business.TransactionCalculation {
	appliedDiscounts := c.discounts.ApplyAllApplicableDiscounts(originalAmount, ctx)
	vatCalculation := c.vat.CalculateWithCustomRate(originalAmount, appliedDiscounts, rate)

	return business.TransactionCalculation{
		OriginalAmount:   originalAmount,
		AppliedDiscounts: appliedDiscounts,
		VATCalculation:   vatCalculation,
		FinalAmount:      vatCalculation.TotalAmount,
	}
}
