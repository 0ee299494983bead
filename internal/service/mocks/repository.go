package mocks

import (
	"Hustings/internal/model"
	"context"
	"errors"
	"sync"
)

// MockCandidateRepo is a function-based mock of repository.CandidateRepo
type MockCandidateRepo struct {
	ListCandidateProfilesFunc func(ctx context.Context) ([]*model.CandidateProfile, error)
	Calls                     int
	mu                        sync.Mutex
}

// ListCandidateProfiles implements the CandidateRepo interface
func (m *MockCandidateRepo) ListCandidateProfiles(ctx context.Context) ([]*model.CandidateProfile, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ListCandidateProfilesFunc != nil {
		return m.ListCandidateProfilesFunc(ctx)
	}
	return nil, errors.New("ListCandidateProfilesFunc not implemented")
}

// CallCount reads Calls under the lock
func (m *MockCandidateRepo) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
