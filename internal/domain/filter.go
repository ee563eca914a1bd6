package domain

import "strings"

// MinRepositorySize is the smallest size (in the upstream's KB unit) a
// repository may report and survive filtering.
const MinRepositorySize = 100

// FilterRepositories removes low-value repositories when enabled: forks,
// repositories smaller than MinRepositorySize and anything whose description
// mentions "template". The input slice is never modified and the relative
// order of the survivors is preserved.
func FilterRepositories(repos []Repository, enabled bool) []Repository {
	if !enabled {
		return repos
	}
	kept := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork || r.Size < MinRepositorySize {
			continue
		}
		if strings.Contains(strings.ToLower(r.Description), "template") {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
