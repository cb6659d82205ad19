package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tahanan/tahanan-api/services"
	"github.com/tahanan/tahanan-api/types/business"
)

func TestValidateDiscountRule(t *testing.T) {
	t.Run("well-formed custom rule passes", func(t *testing.T) {
		rule := business.NewDiscountRule("Weekend Promo", business.DiscountTypeCustom, business.MustPercentage(10), false, nil)

		result := services.ValidateDiscountRule(rule)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("structural problems are blocking errors", func(t *testing.T) {
		rule := business.NewDiscountRule("  ", business.DiscountType("mega"), business.MustPercentage(10), false,
			[]business.DiscountCondition{
				business.NewDiscountCondition("", business.ConditionOperator("matches"), 1),
			})

		result := services.ValidateDiscountRule(rule)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "rule name is required")
		assert.Contains(t, result.Errors, `unknown discount type "mega"`)
		assert.Contains(t, result.Errors, "condition 1 has an empty field path")
		assert.Contains(t, result.Errors, `condition 1 has unknown operator "matches"`)
	})

	t.Run("statutory deviations are warnings only", func(t *testing.T) {
		rule := business.NewDiscountRule("Senior Special", business.DiscountTypeSenior, business.MustPercentage(15), false, nil)

		result := services.ValidateDiscountRule(rule)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Len(t, result.Warnings, 3)
		assert.Contains(t, result.Warnings, "senior citizen discount is normally 20%")
		assert.Contains(t, result.Warnings, "senior citizen discount is normally VAT-exempt")
		assert.Contains(t, result.Warnings, "senior citizen rule should include an age condition")
	})

	t.Run("statutory factory rules produce no warnings", func(t *testing.T) {
		assert.Empty(t, services.ValidateDiscountRule(business.NewSeniorCitizenRule()).Warnings)
		assert.Empty(t, services.ValidateDiscountRule(business.NewPWDRule()).Warnings)
	})

	t.Run("PWD rule missing its id condition warns", func(t *testing.T) {
		rule := business.NewDiscountRule("PWD Promo", business.DiscountTypePWD, business.MustPercentage(20), true, nil)

		result := services.ValidateDiscountRule(rule)

		assert.True(t, result.IsValid)
		assert.Contains(t, result.Warnings, "PWD rule should include a hasPWDId condition")
	})
}

func TestCheckDiscountEligibility(t *testing.T) {
	tests := []struct {
		name            string
		dtype           business.DiscountType
		ctx             business.UserContext
		expectEligible  bool
		expectMissing   int
		expectDocuments int
	}{
		{name: "senior at qualifying age", dtype: business.DiscountTypeSenior, ctx: business.UserContext{"age": 60}, expectEligible: true, expectDocuments: 2},
		{name: "senior above qualifying age", dtype: business.DiscountTypeSenior, ctx: business.UserContext{"age": 82}, expectEligible: true, expectDocuments: 2},
		{name: "senior below qualifying age", dtype: business.DiscountTypeSenior, ctx: business.UserContext{"age": 45}, expectMissing: 1, expectDocuments: 2},
		{name: "senior with no age in context", dtype: business.DiscountTypeSenior, ctx: business.UserContext{}, expectMissing: 1, expectDocuments: 2},
		{name: "pwd with id on file", dtype: business.DiscountTypePWD, ctx: business.UserContext{"hasPWDId": true}, expectEligible: true, expectDocuments: 2},
		{name: "pwd without id", dtype: business.DiscountTypePWD, ctx: business.UserContext{"hasPWDId": false}, expectMissing: 1, expectDocuments: 2},
		{name: "custom has no statutory requirements", dtype: business.DiscountTypeCustom, ctx: business.UserContext{}, expectEligible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := services.CheckDiscountEligibility(tt.dtype, tt.ctx)

			assert.Equal(t, tt.expectEligible, result.Eligible)
			assert.Len(t, result.MissingConditions, tt.expectMissing)
			assert.Len(t, result.RequiredDocuments, tt.expectDocuments)
		})
	}
}

func TestSuggestDiscountRules(t *testing.T) {
	suggestionNames := func(suggestions []services.RuleSuggestion) []string {
		names := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			names = append(names, s.Name)
		}
		return names
	}

	t.Run("statutory rules always suggested", func(t *testing.T) {
		suggestions := services.SuggestDiscountRules(business.UserContext{})

		require.Len(t, suggestions, 2)
		assert.Equal(t, "Senior Citizen Discount", suggestions[0].Name)
		assert.Equal(t, "PWD Discount", suggestions[1].Name)
		assert.True(t, suggestions[0].IsVATExempt)
		assert.Equal(t, 20.0, suggestions[0].Percentage.Value())
	})

	t.Run("hosted listing adds first-time guest discount", func(t *testing.T) {
		suggestions := services.SuggestDiscountRules(business.UserContext{"listingType": "hosted"})

		names := suggestionNames(suggestions)
		assert.Contains(t, names, "First-Time Guest Discount")
		assert.NotContains(t, names, "Early Bird Discount")

		for _, s := range suggestions {
			if s.Name == "First-Time Guest Discount" {
				assert.Equal(t, 10.0, s.Percentage.Value())
				assert.False(t, s.IsVATExempt)
			}
		}
	})

	t.Run("facility listing adds early bird discount", func(t *testing.T) {
		suggestions := services.SuggestDiscountRules(business.UserContext{"listingType": "facility"})

		names := suggestionNames(suggestions)
		assert.Contains(t, names, "Early Bird Discount")

		for _, s := range suggestions {
			if s.Name == "Early Bird Discount" {
				assert.Equal(t, 15.0, s.Percentage.Value())
				require.Len(t, s.Conditions, 1)
				assert.Equal(t, "bookingHour", s.Conditions[0].Field)
				assert.Equal(t, business.OperatorLessThan, s.Conditions[0].Operator)
			}
		}
	})

	t.Run("student targeting adds student discount", func(t *testing.T) {
		suggestions := services.SuggestDiscountRules(business.UserContext{
			"listingType":     "hosted",
			"targetCustomers": []interface{}{"families", "Students"},
		})

		names := suggestionNames(suggestions)
		assert.Contains(t, names, "Student Discount")
		assert.Len(t, suggestions, 4)
	})
}

func TestCalculateDiscountImpact(t *testing.T) {
	data := services.HistoricalData{
		MonthlyTransactions:      1000,
		AverageTransactionAmount: 500,
		EligibleCustomerPercent:  20,
	}

	t.Run("VAT-exempt rule counts forgone VAT", func(t *testing.T) {
		impact := services.CalculateDiscountImpact(business.NewSeniorCitizenRule(), data)

		// 1000 tx * 20% eligible * 70% adoption = 140 uses.
		assert.Equal(t, 140, impact.EstimatedMonthlyUsage)
		assert.InDelta(t, 14000, impact.DiscountAmount, 1e-9)
		assert.InDelta(t, 1680, impact.VATImpact, 1e-9)
		assert.InDelta(t, 15680, impact.RevenueImpact, 1e-9)
	})

	t.Run("non-exempt rule has no VAT impact", func(t *testing.T) {
		rule := business.NewDiscountRule("Promo", business.DiscountTypeCustom, business.MustPercentage(10), false, nil)

		impact := services.CalculateDiscountImpact(rule, data)

		assert.Equal(t, 140, impact.EstimatedMonthlyUsage)
		assert.InDelta(t, 7000, impact.DiscountAmount, 1e-9)
		assert.Equal(t, 0.0, impact.VATImpact)
		assert.InDelta(t, 7000, impact.RevenueImpact, 1e-9)
	})

	t.Run("usage rounds to nearest whole transaction", func(t *testing.T) {
		impact := services.CalculateDiscountImpact(business.NewPWDRule(), services.HistoricalData{
			MonthlyTransactions:      33,
			AverageTransactionAmount: 100,
			EligibleCustomerPercent:  10,
		})

		// 33 * 0.10 * 0.7 = 2.31 -> 2
		assert.Equal(t, 2, impact.EstimatedMonthlyUsage)
	})
}

func TestValidateDiscountRuleConflicts(t *testing.T) {
	senior := business.NewSeniorCitizenRule()
	promo := business.NewDiscountRule("Weekend Promo", business.DiscountTypeCustom, business.MustPercentage(10), false,
		[]business.DiscountCondition{
			business.NewDiscountCondition("dayOfWeek", business.OperatorEquals, "saturday"),
		})
	existing := []business.DiscountRule{senior, promo}

	t.Run("duplicate name", func(t *testing.T) {
		newRule := business.NewDiscountRule("Weekend Promo", business.DiscountTypeCustom, business.MustPercentage(25), false, nil)

		report := services.ValidateDiscountRuleConflicts(newRule, existing)

		assert.True(t, report.HasConflicts)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, services.ConflictDuplicate, report.Conflicts[0].Type)
		assert.Equal(t, promo.ID, report.Conflicts[0].RuleID)
	})

	t.Run("second statutory rule of same type", func(t *testing.T) {
		newRule := business.NewDiscountRule("Another Senior Rule", business.DiscountTypeSenior, business.MustPercentage(20), true, nil)

		report := services.ValidateDiscountRuleConflicts(newRule, existing)

		assert.True(t, report.HasConflicts)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, services.ConflictExclusiveType, report.Conflicts[0].Type)
	})

	t.Run("overlapping condition tuple", func(t *testing.T) {
		newRule := business.NewDiscountRule("Saturday Special", business.DiscountTypeCustom, business.MustPercentage(5), false,
			[]business.DiscountCondition{
				business.NewDiscountCondition("dayOfWeek", business.OperatorEquals, "saturday"),
			})

		report := services.ValidateDiscountRuleConflicts(newRule, existing)

		assert.True(t, report.HasConflicts)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, services.ConflictOverlappingCondition, report.Conflicts[0].Type)
		assert.Equal(t, "Weekend Promo", report.Conflicts[0].RuleName)
	})

	t.Run("no conflicts", func(t *testing.T) {
		newRule := business.NewDiscountRule("Holiday Promo", business.DiscountTypeCustom, business.MustPercentage(8), false,
			[]business.DiscountCondition{
				business.NewDiscountCondition("isHoliday", business.OperatorEquals, true),
			})

		report := services.ValidateDiscountRuleConflicts(newRule, existing)

		assert.False(t, report.HasConflicts)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("rule does not conflict with itself", func(t *testing.T) {
		report := services.ValidateDiscountRuleConflicts(senior, existing)
		assert.False(t, report.HasConflicts)
	})
}
