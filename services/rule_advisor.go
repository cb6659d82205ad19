package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/tahanan/tahanan-api/constants"
	"github.com/tahanan/tahanan-api/types/business"
)

// Rule advisor: stateless helpers backing the rule administration screens.
// Nothing here runs on the transaction hot path. Validation errors block
// rule activation; warnings and conflict reports are advisory only and
// enforcement stays with the administrative caller.

// RuleValidationResult separates blocking errors from advisory warnings.
type RuleValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateDiscountRule runs structural checks on a rule. Statutory rules
// that deviate from the mandated 20% / VAT-exempt / qualifying-condition
// convention are flagged as warnings, not errors.
func ValidateDiscountRule(rule business.DiscountRule) RuleValidationResult {
	result := RuleValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if strings.TrimSpace(rule.Name) == "" {
		result.Errors = append(result.Errors, "rule name is required")
	}
	if !rule.Type.IsValid() {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown discount type %q", string(rule.Type)))
	}
	if rule.Percentage.Value() < 0 || rule.Percentage.Value() > 100 {
		result.Errors = append(result.Errors, "percentage must be between 0 and 100")
	}
	for i, condition := range rule.Conditions {
		if strings.TrimSpace(condition.Field) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("condition %d has an empty field path", i+1))
		}
		if !condition.Operator.IsValid() {
			result.Errors = append(result.Errors, fmt.Sprintf("condition %d has unknown operator %q", i+1, string(condition.Operator)))
		}
	}

	switch rule.Type {
	case business.DiscountTypeSenior:
		if rule.Percentage.Value() != constants.StatutoryDiscountPercent {
			result.Warnings = append(result.Warnings, "senior citizen discount is normally 20%")
		}
		if !rule.IsVATExempt {
			result.Warnings = append(result.Warnings, "senior citizen discount is normally VAT-exempt")
		}
		if !hasConditionOnField(rule, "age") {
			result.Warnings = append(result.Warnings, "senior citizen rule should include an age condition")
		}
	case business.DiscountTypePWD:
		if rule.Percentage.Value() != constants.StatutoryDiscountPercent {
			result.Warnings = append(result.Warnings, "PWD discount is normally 20%")
		}
		if !rule.IsVATExempt {
			result.Warnings = append(result.Warnings, "PWD discount is normally VAT-exempt")
		}
		if !hasConditionOnField(rule, "hasPWDId") {
			result.Warnings = append(result.Warnings, "PWD rule should include a hasPWDId condition")
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func hasConditionOnField(rule business.DiscountRule, field string) bool {
	for _, condition := range rule.Conditions {
		if condition.Field == field {
			return true
		}
	}
	return false
}

// EligibilityResult explains whether a user qualifies for a discount type
// and what is missing. It is driven by the statutory requirements for the
// type, independent of any live rule's condition list, so it can guide users
// even before an operator has configured rules.
type EligibilityResult struct {
	Eligible          bool     `json:"eligible"`
	MissingConditions []string `json:"missingConditions"`
	RequiredDocuments []string `json:"requiredDocuments"`
}

// CheckDiscountEligibility explains eligibility for a discount type.
func CheckDiscountEligibility(dtype business.DiscountType, ctx business.UserContext) EligibilityResult {
	result := EligibilityResult{
		MissingConditions: []string{},
		RequiredDocuments: []string{},
	}

	switch dtype {
	case business.DiscountTypeSenior:
		result.RequiredDocuments = []string{"Senior Citizen ID", "Valid government-issued ID"}
		age, ok := resolveNumber(ctx, "age")
		if !ok || age < constants.SeniorCitizenMinimumAge {
			result.MissingConditions = append(result.MissingConditions,
				fmt.Sprintf("age must be at least %d", constants.SeniorCitizenMinimumAge))
		}
	case business.DiscountTypePWD:
		result.RequiredDocuments = []string{"PWD ID", "Valid government-issued ID"}
		hasID, ok := resolveBool(ctx, "hasPWDId")
		if !ok || !hasID {
			result.MissingConditions = append(result.MissingConditions, "a valid PWD ID must be on file")
		}
	}

	result.Eligible = len(result.MissingConditions) == 0
	return result
}

func resolveNumber(ctx business.UserContext, field string) (float64, bool) {
	value, ok := ctx.Resolve(field)
	if !ok {
		return 0, false
	}
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func resolveBool(ctx business.UserContext, field string) (bool, bool) {
	value, ok := ctx.Resolve(field)
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

// RuleSuggestion is a rule template the advisor recommends to an operator.
type RuleSuggestion struct {
	Name        string                       `json:"name"`
	Type        business.DiscountType        `json:"type"`
	Percentage  business.Percentage          `json:"percentage"`
	IsVATExempt bool                         `json:"isVATExempt"`
	Conditions  []business.DiscountCondition `json:"conditions"`
	Reason      string                       `json:"reason"`
}

// SuggestDiscountRules recommends rules for an operator's listing context.
// The statutory senior and PWD rules are always suggested; the rest depend
// on the listing type and target customers in the context.
func SuggestDiscountRules(ctx business.UserContext) []RuleSuggestion {
	senior := business.NewSeniorCitizenRule()
	pwd := business.NewPWDRule()

	suggestions := []RuleSuggestion{
		{
			Name:        senior.Name,
			Type:        senior.Type,
			Percentage:  senior.Percentage,
			IsVATExempt: senior.IsVATExempt,
			Conditions:  senior.Conditions,
			Reason:      "Mandated by RA 9994 for all establishments",
		},
		{
			Name:        pwd.Name,
			Type:        pwd.Type,
			Percentage:  pwd.Percentage,
			IsVATExempt: pwd.IsVATExempt,
			Conditions:  pwd.Conditions,
			Reason:      "Mandated by RA 10754 for all establishments",
		},
	}

	if listingType, ok := ctx.Resolve("listingType"); ok {
		switch listingType {
		case "hosted":
			suggestions = append(suggestions, RuleSuggestion{
				Name:        "First-Time Guest Discount",
				Type:        business.DiscountTypeCustom,
				Percentage:  business.MustPercentage(constants.FirstTimeGuestDiscountPercent),
				IsVATExempt: false,
				Conditions: []business.DiscountCondition{
					business.NewDiscountCondition("totalBookings", business.OperatorEquals, 0),
				},
				Reason: "Encourages first bookings on hosted listings",
			})
		case "facility":
			suggestions = append(suggestions, RuleSuggestion{
				Name:        "Early Bird Discount",
				Type:        business.DiscountTypeCustom,
				Percentage:  business.MustPercentage(constants.EarlyBirdDiscountPercent),
				IsVATExempt: false,
				Conditions: []business.DiscountCondition{
					business.NewDiscountCondition("bookingHour", business.OperatorLessThan, constants.EarlyBirdCutoffHour),
				},
				Reason: "Fills facility slots before 06:00",
			})
		}
	}

	if targetsStudents(ctx) {
		suggestions = append(suggestions, RuleSuggestion{
			Name:        "Student Discount",
			Type:        business.DiscountTypeCustom,
			Percentage:  business.MustPercentage(constants.StudentDiscountPercent),
			IsVATExempt: false,
			Conditions: []business.DiscountCondition{
				business.NewDiscountCondition("isStudent", business.OperatorEquals, true),
			},
			Reason: "Listing targets student customers",
		})
	}

	return suggestions
}

func targetsStudents(ctx business.UserContext) bool {
	value, ok := ctx.Resolve("targetCustomers")
	if !ok {
		return false
	}
	switch targets := value.(type) {
	case []string:
		for _, t := range targets {
			if strings.EqualFold(t, "students") {
				return true
			}
		}
	case []interface{}:
		for _, t := range targets {
			if s, ok := t.(string); ok && strings.EqualFold(s, "students") {
				return true
			}
		}
	}
	return false
}

// HistoricalData feeds the revenue impact estimate for a proposed rule.
type HistoricalData struct {
	MonthlyTransactions      int     `json:"monthlyTransactions"`
	AverageTransactionAmount float64 `json:"averageTransactionAmount"`
	EligibleCustomerPercent  float64 `json:"eligibleCustomerPercent"`
}

// DiscountImpact estimates the monthly revenue effect of a rule.
type DiscountImpact struct {
	EstimatedMonthlyUsage int     `json:"estimatedMonthlyUsage"`
	DiscountAmount        float64 `json:"discountAmount"`
	VATImpact             float64 `json:"vatImpact"`
	RevenueImpact         float64 `json:"revenueImpact"`
}

// CalculateDiscountImpact estimates the monthly cost of a rule against
// historical transaction data, assuming 70% of eligible customers actually
// claim the discount. For VAT-exempt rules the forgone VAT on the discounted
// revenue is counted on top of the discount itself.
func CalculateDiscountImpact(rule business.DiscountRule, data HistoricalData) DiscountImpact {
	estimatedUsage := int(math.Round(float64(data.MonthlyTransactions) * data.EligibleCustomerPercent / 100 * constants.ImpactAdoptionRate))
	discountAmount := float64(estimatedUsage) * data.AverageTransactionAmount * rule.Percentage.Value() / 100

	vatImpact := 0.0
	if rule.IsVATExempt {
		vatImpact = discountAmount * constants.DefaultVATRatePercent / 100
	}

	return DiscountImpact{
		EstimatedMonthlyUsage: estimatedUsage,
		DiscountAmount:        discountAmount,
		VATImpact:             vatImpact,
		RevenueImpact:         discountAmount + vatImpact,
	}
}

// ConflictType identifies a kind of rule conflict.
type ConflictType string

const (
	// ConflictDuplicate flags an exact rule name collision.
	ConflictDuplicate ConflictType = "duplicate"
	// ConflictExclusiveType flags a second rule of a statutory type; only
	// one senior and one PWD rule may exist.
	ConflictExclusiveType ConflictType = "exclusive_type"
	// ConflictOverlappingCondition flags two rules sharing an identical
	// field/operator/value condition.
	ConflictOverlappingCondition ConflictType = "overlapping_condition"
)

// RuleConflict describes a single conflict between a proposed rule and an
// existing one.
type RuleConflict struct {
	Type     ConflictType `json:"type"`
	RuleID   uuid.UUID    `json:"ruleId"`
	RuleName string       `json:"ruleName"`
	Message  string       `json:"message"`
}

// ConflictReport is the advisory result of conflict detection. It never
// blocks rule creation by itself.
type ConflictReport struct {
	HasConflicts bool           `json:"hasConflicts"`
	Conflicts    []RuleConflict `json:"conflicts"`
}

// ValidateDiscountRuleConflicts checks a proposed rule against the existing
// rule set for name collisions, statutory-type duplication and overlapping
// condition tuples.
func ValidateDiscountRuleConflicts(newRule business.DiscountRule, existingRules []business.DiscountRule) ConflictReport {
	report := ConflictReport{Conflicts: []RuleConflict{}}

	for _, existing := range existingRules {
		if existing.ID == newRule.ID {
			continue
		}

		if existing.Name == newRule.Name {
			report.Conflicts = append(report.Conflicts, RuleConflict{
				Type:     ConflictDuplicate,
				RuleID:   existing.ID,
				RuleName: existing.Name,
				Message:  fmt.Sprintf("a rule named %q already exists", existing.Name),
			})
		}

		if newRule.Type.IsStatutory() && existing.Type == newRule.Type {
			report.Conflicts = append(report.Conflicts, RuleConflict{
				Type:     ConflictExclusiveType,
				RuleID:   existing.ID,
				RuleName: existing.Name,
				Message:  fmt.Sprintf("only one %s rule is allowed", string(newRule.Type)),
			})
		}

		if overlap, field := conditionsOverlap(newRule, existing); overlap {
			report.Conflicts = append(report.Conflicts, RuleConflict{
				Type:     ConflictOverlappingCondition,
				RuleID:   existing.ID,
				RuleName: existing.Name,
				Message:  fmt.Sprintf("rule %q already matches on %s with the same operator and value", existing.Name, field),
			})
		}
	}

	report.HasConflicts = len(report.Conflicts) > 0
	return report
}

func conditionsOverlap(a, b business.DiscountRule) (bool, string) {
	for _, ca := range a.Conditions {
		for _, cb := range b.Conditions {
			if ca.Field == cb.Field && ca.Operator == cb.Operator && fmt.Sprintf("%v", ca.Value) == fmt.Sprintf("%v", cb.Value) {
				return true, ca.Field
			}
		}
	}
	return false, ""
}
