package usecase

import (
	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-insights/internal/domain"
)

// Summarize computes star and size figures over the effective repository set.
func Summarize(repos []domain.Repository) domain.RepositorySummary {
	summary := domain.RepositorySummary{Count: len(repos)}
	if len(repos) == 0 {
		return summary
	}

	stars := make(stats.Float64Data, 0, len(repos))
	sizes := make(stats.Float64Data, 0, len(repos))
	top := repos[0]
	for _, r := range repos {
		stars = append(stars, float64(r.Stars))
		sizes = append(sizes, float64(r.Size))
		if r.Stars > top.Stars {
			top = r
		}
	}

	total, _ := stats.Sum(stars)
	mean, _ := stats.Mean(stars)
	medianStars, _ := stats.Median(stars)
	medianSize, _ := stats.Median(sizes)

	summary.TotalStars = int(total)
	summary.MeanStars = round(mean)
	summary.MedianStars = medianStars
	summary.MedianSize = medianSize
	summary.TopRepository = top.Name
	return summary
}

// RankLanguages returns the value-sorted language view with percentages
// rounded to two decimals.
func RankLanguages(totals *domain.LanguageTotals) []domain.LanguageShare {
	ranked := totals.Ranked()
	for i := range ranked {
		ranked[i].Percent = round(ranked[i].Percent)
	}
	return ranked
}

func round(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
