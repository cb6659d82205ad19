package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockDiscountCalculatorForTest creates a new mock DiscountCalculator for testing
func NewMockDiscountCalculatorForTest(t *testing.T) *MockDiscountCalculator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDiscountCalculator(ctrl)
}

// NewMockVATCalculatorForTest creates a new mock VATCalculator for testing
func NewMockVATCalculatorForTest(t *testing.T) *MockVATCalculator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockVATCalculator(ctrl)
}
