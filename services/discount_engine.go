package services

import (
	"github.com/google/uuid"
	"github.com/tahanan/tahanan-api/logger"
	"github.com/tahanan/tahanan-api/types/business"
	"go.uber.org/zap"
)

// DiscountEngine holds the rule collection and selects the discounts that
// apply to a transaction.
//
// Evaluation is pure and safe to run concurrently over a fixed rule set.
// AddRule/RemoveRule are not internally synchronized; callers sharing an
// engine across goroutines must serialize mutation externally.
type DiscountEngine struct {
	rules  []business.DiscountRule
	logger *zap.Logger
}

// NewDiscountEngine creates an engine with no rules.
func NewDiscountEngine() *DiscountEngine {
	return &DiscountEngine{
		rules:  []business.DiscountRule{},
		logger: logger.Log,
	}
}

// NewStatutoryDiscountEngine creates an engine preloaded with the senior
// citizen and PWD rules.
func NewStatutoryDiscountEngine() *DiscountEngine {
	engine := NewDiscountEngine()
	engine.AddRule(business.NewSeniorCitizenRule())
	engine.AddRule(business.NewPWDRule())
	return engine
}

// AddRule appends a rule. A rule with an id already present replaces the
// existing rule in place, keeping its position in iteration order.
func (e *DiscountEngine) AddRule(rule business.DiscountRule) {
	for i, existing := range e.rules {
		if existing.ID == rule.ID {
			e.rules[i] = rule
			return
		}
	}
	e.rules = append(e.rules, rule)
}

// RemoveRule deletes the rule with the given id and reports whether it was
// present.
func (e *DiscountEngine) RemoveRule(id uuid.UUID) bool {
	for i, rule := range e.rules {
		if rule.ID == id {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			return true
		}
	}
	return false
}

// GetRule returns the rule with the given id.
func (e *DiscountEngine) GetRule(id uuid.UUID) (business.DiscountRule, bool) {
	for _, rule := range e.rules {
		if rule.ID == id {
			return rule, true
		}
	}
	return business.DiscountRule{}, false
}

// Rules returns a copy of the held rules in insertion order.
func (e *DiscountEngine) Rules() []business.DiscountRule {
	return append([]business.DiscountRule{}, e.rules...)
}

// GetApplicableDiscounts returns every rule eligible for the context, in
// insertion order. Order carries no meaning beyond deterministic tie-breaks.
func (e *DiscountEngine) GetApplicableDiscounts(ctx business.UserContext) []business.DiscountRule {
	applicable := []business.DiscountRule{}
	for _, rule := range e.rules {
		if rule.CanApplyToUser(ctx) {
			applicable = append(applicable, rule)
		}
	}
	return applicable
}

// ApplyBestDiscount applies the eligible rule yielding the largest absolute
// discount amount, not the largest percentage. Among exact ties the first
// rule in iteration order wins. Returns nil when no rule is eligible; "no
// discount" is a valid outcome, not an error.
func (e *DiscountEngine) ApplyBestDiscount(amount business.Money, ctx business.UserContext) *business.AppliedDiscount {
	var best *business.AppliedDiscount
	for _, rule := range e.GetApplicableDiscounts(ctx) {
		applied := rule.CalculateDiscount(amount)
		if best == nil || applied.Amount.GreaterThan(best.Amount) {
			best = &applied
		}
	}

	if best != nil {
		e.logger.Debug("Applied best discount",
			zap.String("discount_name", best.Name),
			zap.Float64("discount_amount", best.Amount.Amount()))
	}
	return best
}

// ApplyAllApplicableDiscounts returns one applied discount per eligible
// rule. Each discount is computed independently against the original amount;
// discounts are never compounded against each other and the combined sum is
// not capped, even past 100%.
func (e *DiscountEngine) ApplyAllApplicableDiscounts(amount business.Money, ctx business.UserContext) []business.AppliedDiscount {
	applied := []business.AppliedDiscount{}
	for _, rule := range e.GetApplicableDiscounts(ctx) {
		applied = append(applied, rule.CalculateDiscount(amount))
	}
	return applied
}

// CalculateTotalWithDiscountsAndVAT applies every eligible discount and runs
// the VAT calculation in one step, producing the full transaction breakdown.
func (e *DiscountEngine) CalculateTotalWithDiscountsAndVAT(amount business.Money, ctx business.UserContext, vatCalculator *VATCalculator) business.TransactionCalculation {
	appliedDiscounts := e.ApplyAllApplicableDiscounts(amount, ctx)
	vatCalculation := vatCalculator.Calculate(amount, appliedDiscounts)

	return business.TransactionCalculation{
		OriginalAmount:   amount,
		AppliedDiscounts: appliedDiscounts,
		VATCalculation:   vatCalculation,
		FinalAmount:      vatCalculation.TotalAmount,
	}
}
