package core

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v82/github"
)

// NewGitHubClient creates an unauthenticated GitHub client.
// A nil httpClient uses http.DefaultClient, which has no request timeout.
func NewGitHubClient(httpClient *http.Client) *github.Client {
	return github.NewClient(httpClient)
}

// NewGitHubClientWithBaseURL creates an unauthenticated GitHub client that
// sends requests to baseURL instead of the public API.
func NewGitHubClientWithBaseURL(httpClient *http.Client, baseURL string) (*github.Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing scheme or host", baseURL)
	}

	// go-github resolves relative paths, so the base must end with a slash
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}

	client := github.NewClient(httpClient)
	client.BaseURL = u

	return client, nil
}
