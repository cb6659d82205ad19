package responses

import (
	"time"

	"github.com/google/uuid"
)

// Flattened projections of the calculation artifacts for the reporting
// layer. Monetary values are plain numbers here; analytics aggregation does
// not round-trip these back into the engine.

// AppliedDiscountResponse is the reporting view of one applied discount.
type AppliedDiscountResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Percentage  float64   `json:"percentage"`
	Amount      float64   `json:"amount"`
	IsVATExempt bool      `json:"is_vat_exempt"`
	AppliedAt   time.Time `json:"applied_at"`
}

// VATCalculationResponse is the reporting view of a VAT breakdown.
type VATCalculationResponse struct {
	NetAmount        float64                   `json:"net_amount"`
	VATAmount        float64                   `json:"vat_amount"`
	TotalAmount      float64                   `json:"total_amount"`
	VATRate          float64                   `json:"vat_rate"`
	IsExempt         bool                      `json:"is_exempt"`
	ExemptionReasons []AppliedDiscountResponse `json:"exemption_reasons"`
}

// TransactionCalculationResponse is the reporting view of a full
// transaction breakdown.
type TransactionCalculationResponse struct {
	OriginalAmount      float64                   `json:"original_amount"`
	AppliedDiscounts    []AppliedDiscountResponse `json:"applied_discounts"`
	VATCalculation      VATCalculationResponse    `json:"vat_calculation"`
	FinalAmount         float64                   `json:"final_amount"`
	TotalDiscountAmount float64                   `json:"total_discount_amount"`
	SavingsAmount       float64                   `json:"savings_amount"`
}
