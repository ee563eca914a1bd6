// Package activity provides the annual activity series shown next to a profile.
package activity

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/naka-gawa/github-insights/internal/domain"
)

// Months is the length of the annual series.
const Months = 12

// Mock returns a synthetic series derived from the login. The same login on
// the same month always produces the same series.
type Mock struct {
	Now func() time.Time
}

// NewMock creates a Mock anchored at the current time.
func NewMock() *Mock {
	return &Mock{Now: time.Now}
}

func (m *Mock) Activity(_ context.Context, login string) ([]domain.MonthlyActivity, error) {
	series := make([]domain.MonthlyActivity, 0, Months)
	for _, month := range lastMonths(m.Now(), Months) {
		h := fnv.New32a()
		h.Write([]byte(login))
		h.Write([]byte(month))
		series = append(series, domain.MonthlyActivity{
			Month:         month,
			Contributions: int(h.Sum32() % 80),
		})
	}
	return series, nil
}

// ContributionFetcher reads a user's contribution calendar.
type ContributionFetcher interface {
	FetchContributions(ctx context.Context, username string, from, to time.Time) ([]domain.MonthlyActivity, error)
}

// GitHub serves the series from the user's real contribution calendar.
type GitHub struct {
	Fetcher ContributionFetcher
	Now     func() time.Time
}

// NewGitHub creates a GitHub source anchored at the current time.
func NewGitHub(fetcher ContributionFetcher) *GitHub {
	return &GitHub{Fetcher: fetcher, Now: time.Now}
}

// Activity returns one entry per month of the last year, zero-filled where
// the calendar has no days.
func (g *GitHub) Activity(ctx context.Context, login string) ([]domain.MonthlyActivity, error) {
	now := g.Now().UTC()
	months := lastMonths(now, Months)
	from, err := time.Parse("2006-01", months[0])
	if err != nil {
		return nil, err
	}

	calendar, err := g.Fetcher.FetchContributions(ctx, login, from, now)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(calendar))
	for _, c := range calendar {
		counts[c.Month] += c.Contributions
	}

	series := make([]domain.MonthlyActivity, 0, len(months))
	for _, month := range months {
		series = append(series, domain.MonthlyActivity{Month: month, Contributions: counts[month]})
	}
	return series, nil
}

// lastMonths returns n YYYY-MM labels ending with the month of now, oldest first.
func lastMonths(now time.Time, n int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = first.AddDate(0, i-n+1, 0).Format("2006-01")
	}
	return labels
}
