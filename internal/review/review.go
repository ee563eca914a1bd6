// Package review generates the short text review attached to an analysis.
package review

import (
	"context"
	"fmt"

	"github.com/naka-gawa/github-insights/internal/domain"
)

// Reviewer writes a review of a profile. Implementations may call out to a
// text-generation service; the Template implementation is local.
type Reviewer interface {
	Review(ctx context.Context, profile domain.Profile, totals *domain.LanguageTotals, score int) (string, error)
}

// Template renders a fixed review. It names the first language of the
// totals in insertion order, which is not necessarily the one with the most bytes.
type Template struct{}

// NewTemplate creates a Template reviewer.
func NewTemplate() *Template {
	return &Template{}
}

func (Template) Review(_ context.Context, profile domain.Profile, totals *domain.LanguageTotals, score int) (string, error) {
	language := totals.First()
	if language == "" {
		language = "a variety of technologies"
	}
	return fmt.Sprintf(
		"%s shows a strong inclination towards %s. With %d public repositories and a hireability score of %d/100, "+
			"their profile suggests %s. Consistent contributions and a clear focus on %s make them a candidate worth a closer look.",
		profile.DisplayName(), language, profile.PublicRepos, score, verdict(score), language,
	), nil
}

func verdict(score int) string {
	switch {
	case score >= 70:
		return "a seasoned developer with broad, visible experience"
	case score >= 40:
		return "a solid developer with growing public experience"
	default:
		return "an early-stage developer building up a public portfolio"
	}
}
