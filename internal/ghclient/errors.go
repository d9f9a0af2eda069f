package ghclient

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// IsNotFound reports whether err is a GitHub 404: the repository, issue,
// PR, or commit does not exist or is not visible with the current token.
func IsNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// IsAuthError reports whether err is an authentication failure (401).
func IsAuthError(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsRateLimited reports whether err is a rate limit or forbidden response.
func IsRateLimited(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil &&
			(ghErr.Response.StatusCode == http.StatusForbidden ||
				ghErr.Response.StatusCode == http.StatusTooManyRequests)
	}
	return false
}
