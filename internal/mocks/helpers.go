package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockCommissionServiceForTest creates a new mock CommissionService for testing
func NewMockCommissionServiceForTest(t *testing.T) *MockCommissionService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCommissionService(ctrl)
}
