package domain

import "regexp"

// loginPattern follows GitHub's username rules: alphanumerics and single
// hyphens, no leading or trailing hyphen, at most 39 characters.
var loginPattern = regexp.MustCompile(`^[A-Za-z0-9](?:-?[A-Za-z0-9]){0,38}$`)

// ValidLogin reports whether username can be a GitHub login.
func ValidLogin(username string) bool {
	return loginPattern.MatchString(username)
}
