package helpers

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tahanan/tahanan-api/types/api/responses"
	"github.com/tahanan/tahanan-api/types/business"
)

var validate = validator.New()

// DiscountRuleRow mirrors the discount_rules table owned by the
// administration layer: conditions are stored as a JSON column. The core
// only converts rows to and from domain rules; it never touches storage.
type DiscountRuleRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=senior pwd custom"`
	Percentage  float64   `json:"percentage" validate:"gte=0,lte=100"`
	IsVATExempt bool      `json:"is_vat_exempt"`
	Conditions  []byte    `json:"conditions"`
	IsActive    bool      `json:"is_active"`
	OperatorID  uuid.UUID `json:"operator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// conditionRow is the JSON shape of one entry in the conditions column.
type conditionRow struct {
	ID       uuid.UUID   `json:"id"`
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// RuleFromRow converts a stored rule row into a domain rule. Rows that fail
// structural validation or carry malformed condition JSON are rejected; a
// bad row must never load as an always-matching rule.
func RuleFromRow(row DiscountRuleRow) (business.DiscountRule, error) {
	if err := validate.Struct(row); err != nil {
		return business.DiscountRule{}, errors.Wrap(err, "invalid discount rule row")
	}

	percentage, err := business.NewPercentage(row.Percentage)
	if err != nil {
		return business.DiscountRule{}, errors.Wrapf(err, "rule %q", row.Name)
	}

	conditions := []business.DiscountCondition{}
	if len(row.Conditions) > 0 {
		var parsed []conditionRow
		if err := json.Unmarshal(row.Conditions, &parsed); err != nil {
			return business.DiscountRule{}, errors.Wrapf(err, "rule %q has malformed conditions", row.Name)
		}
		for _, c := range parsed {
			condition := business.DiscountCondition{
				ID:       c.ID,
				Field:    c.Field,
				Operator: business.ConditionOperator(c.Operator),
				Value:    c.Value,
			}
			if condition.ID == uuid.Nil {
				condition.ID = uuid.New()
			}
			conditions = append(conditions, condition)
		}
	}

	return business.DiscountRule{
		ID:          row.ID,
		Name:        row.Name,
		Type:        business.DiscountType(row.Type),
		Percentage:  percentage,
		IsVATExempt: row.IsVATExempt,
		Conditions:  conditions,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// RuleToRow converts a domain rule back into its row shape for the
// administration layer to persist.
func RuleToRow(rule business.DiscountRule, operatorID uuid.UUID) (DiscountRuleRow, error) {
	conditionRows := make([]conditionRow, 0, len(rule.Conditions))
	for _, c := range rule.Conditions {
		conditionRows = append(conditionRows, conditionRow{
			ID:       c.ID,
			Field:    c.Field,
			Operator: string(c.Operator),
			Value:    c.Value,
		})
	}

	conditionsJSON, err := json.Marshal(conditionRows)
	if err != nil {
		return DiscountRuleRow{}, errors.Wrapf(err, "failed to serialize conditions for rule %q", rule.Name)
	}

	return DiscountRuleRow{
		ID:          rule.ID,
		Name:        rule.Name,
		Type:        string(rule.Type),
		Percentage:  rule.Percentage.Value(),
		IsVATExempt: rule.IsVATExempt,
		Conditions:  conditionsJSON,
		IsActive:    rule.IsActive,
		OperatorID:  operatorID,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}, nil
}

// AppliedDiscountToResponse converts an applied discount to its reporting
// projection.
func AppliedDiscountToResponse(discount business.AppliedDiscount) responses.AppliedDiscountResponse {
	return responses.AppliedDiscountResponse{
		ID:          discount.ID,
		Type:        string(discount.Type),
		Name:        discount.Name,
		Percentage:  discount.Percentage.Value(),
		Amount:      discount.Amount.Amount(),
		IsVATExempt: discount.IsVATExempt,
		AppliedAt:   discount.AppliedAt,
	}
}

// VATCalculationToResponse converts a VAT breakdown to its reporting
// projection.
func VATCalculationToResponse(calculation business.VATCalculation) responses.VATCalculationResponse {
	reasons := make([]responses.AppliedDiscountResponse, 0, len(calculation.ExemptionReasons))
	for _, reason := range calculation.ExemptionReasons {
		reasons = append(reasons, AppliedDiscountToResponse(reason))
	}

	return responses.VATCalculationResponse{
		NetAmount:        calculation.NetAmount.Amount(),
		VATAmount:        calculation.VATAmount.Amount(),
		TotalAmount:      calculation.TotalAmount.Amount(),
		VATRate:          calculation.VATRate.Value(),
		IsExempt:         calculation.IsExempt,
		ExemptionReasons: reasons,
	}
}

// TransactionToResponse converts a transaction breakdown to its reporting
// projection, including the derived totals.
func TransactionToResponse(calculation business.TransactionCalculation) responses.TransactionCalculationResponse {
	discounts := make([]responses.AppliedDiscountResponse, 0, len(calculation.AppliedDiscounts))
	for _, discount := range calculation.AppliedDiscounts {
		discounts = append(discounts, AppliedDiscountToResponse(discount))
	}

	return responses.TransactionCalculationResponse{
		OriginalAmount:      calculation.OriginalAmount.Amount(),
		AppliedDiscounts:    discounts,
		VATCalculation:      VATCalculationToResponse(calculation.VATCalculation),
		FinalAmount:         calculation.FinalAmount.Amount(),
		TotalDiscountAmount: calculation.TotalDiscountAmount().Amount(),
		SavingsAmount:       calculation.SavingsAmount().Amount(),
	}
}
