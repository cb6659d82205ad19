package business

// VATCalculation is the VAT breakdown for a single transaction.
//
// When IsExempt is true the transaction carried at least one VAT-exempt
// discount: VATAmount is zero and NetAmount and TotalAmount both equal the
// original amount. ExemptionReasons lists the exempt discounts that
// triggered the branch.
type VATCalculation struct {
	NetAmount        Money             `json:"netAmount"`
	VATAmount        Money             `json:"vatAmount"`
	TotalAmount      Money             `json:"totalAmount"`
	VATRate          Percentage        `json:"vatRate"`
	IsExempt         bool              `json:"isExempt"`
	ExemptionReasons []AppliedDiscount `json:"exemptionReasons"`
}

// TransactionCalculation is the terminal audit artifact returned to callers:
// the original amount, every applied discount, the VAT breakdown and the
// final payable amount. FinalAmount always equals VATCalculation.TotalAmount.
type TransactionCalculation struct {
	OriginalAmount   Money             `json:"originalAmount"`
	AppliedDiscounts []AppliedDiscount `json:"appliedDiscounts"`
	VATCalculation   VATCalculation    `json:"vatCalculation"`
	FinalAmount      Money             `json:"finalAmount"`
}

// TotalDiscountAmount sums the applied discount amounts. The sum is reported
// regardless of whether the VAT-exemption branch actually subtracted the
// discounts from the payable total.
func (t TransactionCalculation) TotalDiscountAmount() Money {
	total := ZeroMoney()
	for _, discount := range t.AppliedDiscounts {
		total = total.Add(discount.Amount)
	}
	return total
}

// SavingsAmount is how much less the caller pays than the original amount,
// floored at zero.
func (t TransactionCalculation) SavingsAmount() Money {
	return t.OriginalAmount.Subtract(t.FinalAmount)
}
