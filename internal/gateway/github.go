// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-insights/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// maxRepositories is the single page of repositories fetched per user.
const maxRepositories = 100

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (domain.Profile, error)
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	FetchLanguageBytes(ctx context.Context, username, repo string) (map[string]int64, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// contributionsQuery fetches the contribution calendar of one user.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions githubv4.Int
				Weeks              []struct {
					ContributionDays []struct {
						Date              string
						ContributionCount githubv4.Int
					}
				}
			}
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// apiURL overrides the REST base URL (GitHub Enterprise); empty means api.github.com.
func NewGitHubGateway(token, apiURL string, logger *log.Logger) (*GitHubGateway, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		},
	}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if apiURL != "" {
		var err error
		restClient, err = restClient.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		graphqlClient = githubv4.NewEnterpriseClient(graphqlEndpoint(apiURL), httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// graphqlEndpoint derives the GraphQL endpoint from a REST base URL,
// e.g. https://ghe.example.com/api/v3/ -> https://ghe.example.com/api/graphql.
func graphqlEndpoint(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil {
		return strings.TrimSuffix(apiURL, "/") + "/graphql"
	}
	path := strings.TrimSuffix(u.Path, "/")
	path = strings.TrimSuffix(path, "/v3")
	u.Path = path + "/graphql"
	return u.String()
}

func (g *GitHubGateway) FetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	g.logger.Printf("Fetching profile of %s...", username)
	user, resp, err := g.restClient.Users.Get(ctx, url.PathEscape(username))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to fetch profile %q: %w", username, classify(resp, err))
	}
	return domain.Profile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		Bio:         user.GetBio(),
		Followers:   user.GetFollowers(),
		PublicRepos: user.GetPublicRepos(),
	}, nil
}

// FetchRepositories returns the first page (at most 100) of the user's repositories.
// A successful response whose body is not a JSON array, or not JSON at all,
// yields an empty list.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Printf("Fetching repositories of %s...", username)
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: maxRepositories},
	}
	repos, resp, err := g.restClient.Repositories.ListByUser(ctx, url.PathEscape(username), opts)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) {
			g.logger.Printf("  Repository list of %s is not a collection, treating as empty.", username)
			return []domain.Repository{}, nil
		}
		return nil, fmt.Errorf("failed to fetch repositories of %q: %w", username, classify(resp, err))
	}

	result := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		result = append(result, domain.Repository{
			Name:        r.GetName(),
			Fork:        r.GetFork(),
			Size:        r.GetSize(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			URL:         r.GetHTMLURL(),
		})
	}
	if resp != nil && resp.NextPage != 0 {
		g.logger.Printf("  %s has more than %d repositories; only the first page is analysed.", username, maxRepositories)
	}
	return result, nil
}

func (g *GitHubGateway) FetchLanguageBytes(ctx context.Context, username, repo string) (map[string]int64, error) {
	languages, resp, err := g.restClient.Repositories.ListLanguages(ctx, url.PathEscape(username), url.PathEscape(repo))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch languages of %s/%s: %w", username, repo, classify(resp, err))
	}
	result := make(map[string]int64, len(languages))
	for name, n := range languages {
		result[name] = int64(n)
	}
	return result, nil
}

// FetchContributions returns the user's contribution calendar between from and to,
// summed per calendar month in chronological order.
func (g *GitHubGateway) FetchContributions(ctx context.Context, username string, from, to time.Time) ([]domain.MonthlyActivity, error) {
	g.logger.Printf("Fetching contribution calendar of %s...", username)
	variables := map[string]interface{}{
		"login": githubv4.String(username),
		"from":  githubv4.DateTime{Time: from},
		"to":    githubv4.DateTime{Time: to},
	}
	var q contributionsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for contributions: %w", err)
	}

	var months []domain.MonthlyActivity
	index := make(map[string]int)
	for _, week := range q.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			if len(day.Date) < len("2006-01") {
				continue
			}
			month := day.Date[:len("2006-01")]
			i, ok := index[month]
			if !ok {
				i = len(months)
				index[month] = i
				months = append(months, domain.MonthlyActivity{Month: month})
			}
			months[i].Contributions += int(day.ContributionCount)
		}
	}
	return months, nil
}

// classify maps a failed go-github call onto the domain error taxonomy.
// A 2xx status means the body could not be decoded, which is not an
// upstream failure.
func classify(resp *github.Response, err error) error {
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	var ghErr *github.ErrorResponse
	if status == 0 && errors.As(err, &ghErr) && ghErr.Response != nil {
		status = ghErr.Response.StatusCode
	}

	switch {
	case status >= 200 && status < 300:
		return fmt.Errorf("malformed github response: %w", err)
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	default:
		return &domain.UpstreamError{StatusCode: status, Err: err}
	}
}
