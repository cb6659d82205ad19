package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/tahanan/tahanan-api/constants"
)

// DiscountType classifies a discount rule.
type DiscountType string

const (
	// DiscountTypeSenior is the statutory senior citizen discount (RA 9994).
	DiscountTypeSenior DiscountType = "senior"
	// DiscountTypePWD is the statutory PWD discount (RA 10754).
	DiscountTypePWD DiscountType = "pwd"
	// DiscountTypeCustom is an operator-defined promotional discount.
	DiscountTypeCustom DiscountType = "custom"
)

// IsValid reports whether the type is a known discount type.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypeSenior, DiscountTypePWD, DiscountTypeCustom:
		return true
	}
	return false
}

// IsStatutory reports whether the type is mandated by law. At most one rule
// of each statutory type may exist.
func (t DiscountType) IsStatutory() bool {
	return t == DiscountTypeSenior || t == DiscountTypePWD
}

// DiscountRule is a named, typed percentage discount gated by a conjunction
// of conditions. Rules are value types: the update methods return a modified
// copy with a bumped UpdatedAt instead of mutating in place, so rule
// snapshots can be shared across concurrent evaluations safely.
type DiscountRule struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Type        DiscountType        `json:"type"`
	Percentage  Percentage          `json:"percentage"`
	IsVATExempt bool                `json:"isVATExempt"`
	Conditions  []DiscountCondition `json:"conditions"`
	IsActive    bool                `json:"isActive"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// NewDiscountRule creates an active rule with a fresh id and timestamps.
func NewDiscountRule(name string, dtype DiscountType, percentage Percentage, isVATExempt bool, conditions []DiscountCondition) DiscountRule {
	now := time.Now()
	return DiscountRule{
		ID:          uuid.New(),
		Name:        name,
		Type:        dtype,
		Percentage:  percentage,
		IsVATExempt: isVATExempt,
		Conditions:  append([]DiscountCondition{}, conditions...),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewSeniorCitizenRule returns the statutory senior citizen rule: 20%,
// VAT-exempt, age at least 60.
func NewSeniorCitizenRule() DiscountRule {
	return NewDiscountRule(
		"Senior Citizen Discount",
		DiscountTypeSenior,
		MustPercentage(constants.StatutoryDiscountPercent),
		true,
		[]DiscountCondition{
			NewDiscountCondition("age", OperatorGreaterThanOrEqual, constants.SeniorCitizenMinimumAge),
		},
	)
}

// NewPWDRule returns the statutory PWD rule: 20%, VAT-exempt, a valid PWD ID
// on file.
func NewPWDRule() DiscountRule {
	return NewDiscountRule(
		"PWD Discount",
		DiscountTypePWD,
		MustPercentage(constants.StatutoryDiscountPercent),
		true,
		[]DiscountCondition{
			NewDiscountCondition("hasPWDId", OperatorEquals, true),
		},
	)
}

// CanApplyToUser reports whether the rule is active and every condition
// evaluates true against the context. A rule without conditions applies to
// everyone.
func (r DiscountRule) CanApplyToUser(ctx UserContext) bool {
	if !r.IsActive {
		return false
	}
	for _, condition := range r.Conditions {
		if !condition.Evaluate(ctx) {
			return false
		}
	}
	return true
}

// CalculateDiscount computes the discount snapshot this rule yields for an
// amount. Eligibility is not checked here; the engine gates on
// CanApplyToUser before calling.
func (r DiscountRule) CalculateDiscount(amount Money) AppliedDiscount {
	return AppliedDiscount{
		ID:          uuid.New(),
		Type:        r.Type,
		Name:        r.Name,
		Percentage:  r.Percentage,
		Amount:      r.Percentage.Apply(amount),
		IsVATExempt: r.IsVATExempt,
		AppliedAt:   time.Now(),
	}
}

// Activate returns a copy of the rule marked active.
func (r DiscountRule) Activate() DiscountRule {
	r.IsActive = true
	r.UpdatedAt = time.Now()
	return r
}

// Deactivate returns a copy of the rule marked inactive. Deactivated rules
// are retained but excluded from eligibility.
func (r DiscountRule) Deactivate() DiscountRule {
	r.IsActive = false
	r.UpdatedAt = time.Now()
	return r
}

// UpdatePercentage returns a copy of the rule with a new percentage.
func (r DiscountRule) UpdatePercentage(percentage Percentage) DiscountRule {
	r.Percentage = percentage
	r.UpdatedAt = time.Now()
	return r
}

// UpdateVATExemption returns a copy of the rule with a new exemption flag.
func (r DiscountRule) UpdateVATExemption(isVATExempt bool) DiscountRule {
	r.IsVATExempt = isVATExempt
	r.UpdatedAt = time.Now()
	return r
}

// AddCondition returns a copy of the rule with the condition appended.
func (r DiscountRule) AddCondition(condition DiscountCondition) DiscountRule {
	r.Conditions = append(append([]DiscountCondition{}, r.Conditions...), condition)
	r.UpdatedAt = time.Now()
	return r
}

// RemoveCondition returns a copy of the rule without the identified
// condition.
func (r DiscountRule) RemoveCondition(conditionID uuid.UUID) DiscountRule {
	conditions := make([]DiscountCondition, 0, len(r.Conditions))
	for _, condition := range r.Conditions {
		if condition.ID != conditionID {
			conditions = append(conditions, condition)
		}
	}
	r.Conditions = conditions
	r.UpdatedAt = time.Now()
	return r
}

// AppliedDiscount is the immutable per-transaction record of a rule's
// computed effect. It is a snapshot, not linked back to the rule.
type AppliedDiscount struct {
	ID          uuid.UUID    `json:"id"`
	Type        DiscountType `json:"type"`
	Name        string       `json:"name"`
	Percentage  Percentage   `json:"percentage"`
	Amount      Money        `json:"amount"`
	IsVATExempt bool         `json:"isVATExempt"`
	AppliedAt   time.Time    `json:"appliedAt"`
}
