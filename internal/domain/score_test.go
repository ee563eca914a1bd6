package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reposOfCount(n int) []Repository {
	repos := make([]Repository, n)
	for i := range repos {
		repos[i] = Repository{Name: fmt.Sprintf("repo-%d", i), Size: 200}
	}
	return repos
}

func totalsOf(languages ...string) *LanguageTotals {
	totals := NewLanguageTotals()
	for i, l := range languages {
		totals.Add(l, int64(1000*(i+1)))
	}
	return totals
}

func TestScore(t *testing.T) {
	testCases := []struct {
		name      string
		followers int
		repos     int
		languages []string
		expected  int
	}{
		{
			name:      "45 followers, 12 repositories, 3 languages",
			followers: 45,
			repos:     12,
			languages: []string{"Go", "TypeScript", "Shell"},
			expected:  4 + 4 + 20,
		},
		{
			name:     "empty profile",
			expected: 0,
		},
		{
			name:      "single language contributes nothing",
			followers: 9,
			repos:     4,
			languages: []string{"Go"},
			expected:  0,
		},
		{
			name:      "every term saturated",
			followers: 100000,
			repos:     1000,
			languages: []string{"Go", "Rust", "C", "Python", "Ruby", "Java", "Zig"},
			expected:  100,
		},
		{
			name:      "diversity saturates at five languages",
			languages: []string{"Go", "Rust", "C", "Python", "Ruby"},
			expected:  40,
		},
		{
			name:      "volume is a step function",
			repos:     9,
			languages: nil,
			expected:  2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := Profile{Login: "octocat", Followers: tc.followers}
			got := Score(profile, reposOfCount(tc.repos), totalsOf(tc.languages...))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	langs := []string{"Go", "Rust", "C", "Python", "Ruby", "Java"}
	for _, followers := range []int{-50, 0, 7, 99, 300, 1 << 20} {
		for _, repos := range []int{0, 1, 5, 14, 75, 300} {
			for n := 0; n <= len(langs); n++ {
				score := Score(Profile{Followers: followers}, reposOfCount(repos), totalsOf(langs[:n]...))
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestScore_Monotonic(t *testing.T) {
	base := Profile{Followers: 20}
	repos := reposOfCount(7)
	langs := totalsOf("Go", "C")

	prev := -1
	for followers := 0; followers <= 400; followers += 13 {
		s := Score(Profile{Followers: followers}, repos, langs)
		assert.GreaterOrEqual(t, s, prev, "followers=%d", followers)
		prev = s
	}

	prev = -1
	for n := 0; n <= 100; n += 5 {
		s := Score(base, reposOfCount(n), langs)
		assert.GreaterOrEqual(t, s, prev, "repos=%d", n)
		prev = s
	}

	all := []string{"Go", "Rust", "C", "Python", "Ruby", "Java", "Zig"}
	prev = -1
	for n := 0; n <= len(all); n++ {
		s := Score(base, repos, totalsOf(all[:n]...))
		assert.GreaterOrEqual(t, s, prev, "languages=%d", n)
		prev = s
	}
}

func TestScore_NegativeFollowersContributeNothing(t *testing.T) {
	// Each term is clamped on its own, so a negative follower count cannot
	// eat into the other terms.
	assert.Equal(t, 40, Score(Profile{Followers: -500}, nil, totalsOf("Go", "Rust", "C", "Python", "Ruby")))
	assert.Equal(t, 4, Score(Profile{Followers: -1}, reposOfCount(10), nil))
}

func TestScore_NilTotals(t *testing.T) {
	assert.Equal(t, 3, Score(Profile{Followers: 30}, nil, nil))
}
