// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/naka-gawa/github-insights/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// AggregateLanguages fetches the language bytes of every repository concurrently
// and sums them into one LanguageTotals once all fetches have settled.
// A repository whose fetch fails is logged and contributes nothing.
func AggregateLanguages(ctx context.Context, fetcher gateway.Fetcher, username string, repos []domain.Repository, logger *log.Logger) *domain.LanguageTotals {
	partials := make([]map[string]int64, len(repos))

	// Every goroutine returns nil so one failure never cancels the others.
	var eg errgroup.Group
	for i, repo := range repos {
		eg.Go(func() error {
			languages, err := fetcher.FetchLanguageBytes(ctx, username, repo.Name)
			if err != nil {
				logger.Printf("  Skipping languages of %s/%s: %v", username, repo.Name, err)
				return nil
			}
			partials[i] = languages
			return nil
		})
	}
	_ = eg.Wait()

	totals := domain.NewLanguageTotals()
	for _, partial := range partials {
		totals.Merge(partial)
	}
	return totals
}
