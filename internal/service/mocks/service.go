package mocks

import (
	"Hustings/internal/api/dto"
	"context"
	"errors"
)

// MockEngagementService is a function-based mock of service.EngagementService
// for testing the handler and job layers.
type MockEngagementService struct {
	GetTopCandidatesFunc func(ctx context.Context) ([]*dto.TopCandidateDTO, error)
	GetPanelFunc         func(ctx context.Context) ([]*dto.PanelMemberDTO, error)
	GetEngagementFunc    func(ctx context.Context) ([]*dto.CandidateEngagementDTO, error)
	InvalidateFunc       func(ctx context.Context) error
	RefreshFunc          func(ctx context.Context) (*dto.EngagementRefreshDTO, error)
}

// GetTopCandidates implements the EngagementService interface
func (m *MockEngagementService) GetTopCandidates(ctx context.Context) ([]*dto.TopCandidateDTO, error) {
	if m.GetTopCandidatesFunc != nil {
		return m.GetTopCandidatesFunc(ctx)
	}
	return nil, errors.New("GetTopCandidatesFunc not implemented")
}

// GetPanel implements the EngagementService interface
func (m *MockEngagementService) GetPanel(ctx context.Context) ([]*dto.PanelMemberDTO, error) {
	if m.GetPanelFunc != nil {
		return m.GetPanelFunc(ctx)
	}
	return nil, errors.New("GetPanelFunc not implemented")
}

// GetEngagement implements the EngagementService interface
func (m *MockEngagementService) GetEngagement(ctx context.Context) ([]*dto.CandidateEngagementDTO, error) {
	if m.GetEngagementFunc != nil {
		return m.GetEngagementFunc(ctx)
	}
	return nil, errors.New("GetEngagementFunc not implemented")
}

// Invalidate implements the EngagementService interface
func (m *MockEngagementService) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return errors.New("InvalidateFunc not implemented")
}

// Refresh implements the EngagementService interface
func (m *MockEngagementService) Refresh(ctx context.Context) (*dto.EngagementRefreshDTO, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil, errors.New("RefreshFunc not implemented")
}
