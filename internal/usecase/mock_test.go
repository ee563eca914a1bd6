package usecase

import (
	"context"

	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	args := m.Called(ctx, username)
	// We need to handle the case where the returned slice is nil (e.g., when an error occurs).
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) FetchLanguageBytes(ctx context.Context, username, repo string) (map[string]int64, error) {
	args := m.Called(ctx, username, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// stubActivity returns a fixed series or error.
type stubActivity struct {
	series []domain.MonthlyActivity
	err    error
}

func (s stubActivity) Activity(context.Context, string) ([]domain.MonthlyActivity, error) {
	return s.series, s.err
}
