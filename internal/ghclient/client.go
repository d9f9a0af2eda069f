// Package ghclient wraps the go-github client and converts API responses
// into the internal record model.
package ghclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint. Used by tests
// to run against a local HTTP server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		// go-github requires a trailing slash on the base URL
		if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", baseURL, err)
		}
		c.client.BaseURL = parsed
		return nil
	}
}

// NewClient creates a GitHub client. An empty token yields an
// unauthenticated client for public repositories.
func NewClient(token string, opts ...Option) (*Client, error) {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(context.Background(), ts)
		client = github.NewClient(tc)
	} else {
		client = github.NewClient(nil)
	}

	c := &Client{client: client}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// GetAuthenticatedUser returns the authenticated user's login. Used as a
// credential check before any repository work starts.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// RateLimits returns the current API rate limit status.
func (c *Client) RateLimits(ctx context.Context) (*github.RateLimits, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}
	return limits, nil
}
