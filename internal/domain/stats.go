package domain

// RepositorySummary holds aggregate figures over the effective repository set.
type RepositorySummary struct {
	Count         int     `json:"count"`
	TotalStars    int     `json:"total_stars"`
	MeanStars     float64 `json:"mean_stars"`
	MedianStars   float64 `json:"median_stars"`
	MedianSize    float64 `json:"median_size"`
	TopRepository string  `json:"top_repository,omitempty"`
}
