package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/naka-gawa/github-insights/internal/gateway"
	"github.com/naka-gawa/github-insights/internal/review"
	"golang.org/x/sync/errgroup"
)

// ActivitySource provides the annual activity series of a user.
type ActivitySource interface {
	Activity(ctx context.Context, login string) ([]domain.MonthlyActivity, error)
}

// Analyzer is the use case for analysing a GitHub profile.
// It orchestrates fetching, filtering, aggregation, scoring and review.
type Analyzer struct {
	fetcher  gateway.Fetcher
	reviewer review.Reviewer
	activity ActivitySource
	logger   *log.Logger
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(fetcher gateway.Fetcher, reviewer review.Reviewer, activity ActivitySource, logger *log.Logger) *Analyzer {
	return &Analyzer{
		fetcher:  fetcher,
		reviewer: reviewer,
		activity: activity,
		logger:   logger,
	}
}

// Analyze builds the full analysis of one user. Any failure fetching the
// profile or the repository list aborts the analysis; language and activity
// failures are absorbed.
func (a *Analyzer) Analyze(ctx context.Context, username string, filter bool) (*domain.AnalysisResult, error) {
	a.logger.Printf("Usecase: Analysing %s (filter=%t)...", username, filter)
	if !domain.ValidLogin(username) {
		return nil, fmt.Errorf("invalid login %q: %w", username, domain.ErrNotFound)
	}

	profile, err := a.fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := a.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []domain.Repository{}
	}

	effective := domain.FilterRepositories(repos, filter)
	a.logger.Printf("Usecase: %d of %d repositories kept.", len(effective), len(repos))

	totals := AggregateLanguages(ctx, a.fetcher, username, effective, a.logger)
	score := domain.Score(profile, effective, totals)

	text, err := a.reviewer.Review(ctx, profile, totals, score)
	if err != nil {
		return nil, fmt.Errorf("failed to generate review: %w", err)
	}

	series, err := a.activity.Activity(ctx, profile.Login)
	if err != nil {
		a.logger.Printf("Usecase: Activity of %s unavailable: %v", profile.Login, err)
		series = []domain.MonthlyActivity{}
	}

	a.logger.Println("Usecase: Analysis complete.")
	return &domain.AnalysisResult{
		Profile:      profile,
		Repositories: effective,
		Languages:    totals,
		Ranked:       RankLanguages(totals),
		Score:        score,
		Review:       text,
		Activity:     series,
		Summary:      Summarize(effective),
		Filtered:     filter,
	}, nil
}

// Compare analyses two users concurrently. The first failure cancels the
// other analysis and is returned.
func (a *Analyzer) Compare(ctx context.Context, first, second string, filter bool) (*domain.Comparison, error) {
	var result domain.Comparison

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		result.First, err = a.Analyze(egCtx, first, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		result.Second, err = a.Analyze(egCtx, second, filter)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
