package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"
	"time"

	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discard = log.New(io.Discard, "", 0)

func TestAggregateLanguages(t *testing.T) {
	testCases := []struct {
		name      string
		repos     []string
		responses map[string]map[string]int64
		failures  map[string]error
		expected  map[string]int64
	}{
		{
			name:  "happy path - sums bytes across repositories",
			repos: []string{"api", "web"},
			responses: map[string]map[string]int64{
				"api": {"Go": 1000, "Makefile": 20},
				"web": {"TypeScript": 5000, "Go": 10},
			},
			expected: map[string]int64{"Go": 1010, "Makefile": 20, "TypeScript": 5000},
		},
		{
			name:  "partial failure - failed repository contributes nothing",
			repos: []string{"api", "broken"},
			responses: map[string]map[string]int64{
				"api": {"Go": 1000},
			},
			failures: map[string]error{"broken": errors.New("502 bad gateway")},
			expected: map[string]int64{"Go": 1000},
		},
		{
			name:     "empty case - no repositories",
			expected: map[string]int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			repos := make([]domain.Repository, 0, len(tc.repos))
			for _, name := range tc.repos {
				repos = append(repos, domain.Repository{Name: name})
				if err, ok := tc.failures[name]; ok {
					fetcher.On("FetchLanguageBytes", mock.Anything, "octocat", name).Return(nil, err)
					continue
				}
				fetcher.On("FetchLanguageBytes", mock.Anything, "octocat", name).Return(tc.responses[name], nil)
			}

			totals := AggregateLanguages(context.Background(), fetcher, "octocat", repos, discard)

			assert.Equal(t, tc.expected, totals.Map())
			assert.Equal(t, len(tc.expected), totals.Len())
			fetcher.AssertExpectations(t)
		})
	}
}

// Six repositories whose fetches complete in reverse order must still produce
// the pointwise sum, and any permutation of the input gives the same totals.
func TestAggregateLanguages_OrderIndependent(t *testing.T) {
	responses := []map[string]int64{
		{"Go": 100, "Shell": 5},
		{"Go": 200},
		{"Python": 300, "Go": 1},
		{"TypeScript": 400, "CSS": 40},
		{"Rust": 500},
		{"Go": 600, "Rust": 6},
	}
	names := []string{"r0", "r1", "r2", "r3", "r4", "r5"}

	fetcher := new(mockFetcher)
	repos := make([]domain.Repository, len(names))
	for i, name := range names {
		repos[i] = domain.Repository{Name: name}
		delay := time.Duration(len(names)-i) * 5 * time.Millisecond
		fetcher.On("FetchLanguageBytes", mock.Anything, "octocat", name).Return(responses[i], nil).After(delay)
	}

	expected := map[string]int64{"Go": 901, "Shell": 5, "Python": 300, "TypeScript": 400, "CSS": 40, "Rust": 506}

	totals := AggregateLanguages(context.Background(), fetcher, "octocat", repos, discard)
	assert.Equal(t, expected, totals.Map())

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		permuted := append([]domain.Repository(nil), repos...)
		rng.Shuffle(len(permuted), func(a, b int) { permuted[a], permuted[b] = permuted[b], permuted[a] })

		got := AggregateLanguages(context.Background(), fetcher, "octocat", permuted, discard)
		assert.Equal(t, expected, got.Map())
	}
}

// Insertion order follows repository order, not completion order.
func TestAggregateLanguages_InsertionOrderFollowsRepositories(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchLanguageBytes", mock.Anything, "octocat", "slow").Return(map[string]int64{"Shell": 10}, nil).After(20 * time.Millisecond)
	fetcher.On("FetchLanguageBytes", mock.Anything, "octocat", "fast").Return(map[string]int64{"Go": 9000}, nil)

	repos := []domain.Repository{{Name: "slow"}, {Name: "fast"}}
	totals := AggregateLanguages(context.Background(), fetcher, "octocat", repos, discard)

	assert.Equal(t, []string{"Shell", "Go"}, totals.Names())
}

func TestSummarize(t *testing.T) {
	repos := []domain.Repository{
		{Name: "a", Stars: 1, Size: 100},
		{Name: "b", Stars: 10, Size: 300},
		{Name: "c", Stars: 4, Size: 200},
		{Name: "d", Stars: 0, Size: 1000},
	}

	summary := Summarize(repos)

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 15, summary.TotalStars)
	assert.InDelta(t, 3.75, summary.MeanStars, 0.001)
	assert.InDelta(t, 2.5, summary.MedianStars, 0.001)
	assert.InDelta(t, 250, summary.MedianSize, 0.001)
	assert.Equal(t, "b", summary.TopRepository)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.RepositorySummary{}, Summarize(nil))
}

func TestRankLanguages(t *testing.T) {
	totals := domain.NewLanguageTotals()
	totals.Add("Go", 2)
	totals.Add("C", 1)

	ranked := RankLanguages(totals)

	assert.Equal(t, []domain.LanguageShare{
		{Language: "Go", Bytes: 2, Percent: 66.67},
		{Language: "C", Bytes: 1, Percent: 33.33},
	}, ranked)
}
