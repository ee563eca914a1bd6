// Package domain contains the core data structures and domain logic for the application.
package domain

// Profile is the subset of a GitHub user account the analysis works with.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Followers   int    `json:"followers"`
	PublicRepos int    `json:"public_repos"`
}

// DisplayName returns the profile's name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// Repository is a single repository owned by the analysed user.
// Size is reported by GitHub in kilobytes.
type Repository struct {
	Name        string `json:"name"`
	Fork        bool   `json:"fork"`
	Size        int    `json:"size"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stargazers_count"`
	URL         string `json:"html_url"`
}

// MonthlyActivity is one point of the annual activity series.
type MonthlyActivity struct {
	Month         string `json:"month"` // YYYY-MM
	Contributions int    `json:"contributions"`
}

// AnalysisResult is the response aggregate for one analysed user.
// Repositories is exactly the set Languages, Score and Summary were computed from.
type AnalysisResult struct {
	Profile      Profile           `json:"profile"`
	Repositories []Repository      `json:"repositories"`
	Languages    *LanguageTotals   `json:"languages"`
	Ranked       []LanguageShare   `json:"ranked_languages"`
	Score        int               `json:"score"`
	Review       string            `json:"review"`
	Activity     []MonthlyActivity `json:"activity"`
	Summary      RepositorySummary `json:"summary"`
	Filtered     bool              `json:"filtered"`
}

// Comparison holds two analyses side by side.
type Comparison struct {
	First  *AnalysisResult `json:"first"`
	Second *AnalysisResult `json:"second"`
}
