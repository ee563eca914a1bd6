package domain

const (
	maxFollowerPoints  = 30
	maxVolumePoints    = 30
	maxDiversityPoints = 40
)

// Score computes the hireability score of a profile in [0,100].
//
// It is the sum of three independently capped terms:
//   - followers: one point per 10 followers, at most 30
//   - volume: two points per full 5 repositories, at most 30
//   - diversity: ten points per language beyond the first, at most 40
func Score(profile Profile, repos []Repository, totals *LanguageTotals) int {
	followers := min(maxFollowerPoints, max(0, profile.Followers/10))
	volume := min(maxVolumePoints, (len(repos)/5)*2)
	diversity := min(maxDiversityPoints, max(0, (totals.Len()-1)*10))

	return clampScore(followers + volume + diversity)
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
