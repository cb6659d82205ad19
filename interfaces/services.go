package interfaces

import (
	"github.com/tahanan/tahanan-api/types/business"
)

// DiscountCalculator selects and applies discount rules for a transaction.
type DiscountCalculator interface {
	GetApplicableDiscounts(ctx business.UserContext) []business.DiscountRule
	ApplyBestDiscount(amount business.Money, ctx business.UserContext) *business.AppliedDiscount
	ApplyAllApplicableDiscounts(amount business.Money, ctx business.UserContext) []business.AppliedDiscount
}

// VATCalculator computes the VAT breakdown for a discounted amount.
type VATCalculator interface {
	Calculate(originalAmount business.Money, appliedDiscounts []business.AppliedDiscount) business.VATCalculation
	CalculateWithCustomRate(originalAmount business.Money, appliedDiscounts []business.AppliedDiscount, rate business.Percentage) business.VATCalculation
}
