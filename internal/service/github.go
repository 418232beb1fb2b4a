package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"devconnector/internal/config"
	"devconnector/internal/model"
)

// GithubClient fetches a user's public repositories from the GitHub API.
//
// Only the handful of fields the profile page renders are decoded. An
// optional token raises the unauthenticated rate limit; requests work
// without one.
type GithubClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// GithubRepo is one repository as rendered on a profile page.
type GithubRepo struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	Language        *string   `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}

const githubAPIURL = "https://api.github.com"

func NewGithubClient(cfg *config.Config) *GithubClient {
	return &GithubClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: githubAPIURL,
		token:   cfg.GithubToken,
	}
}

// GetRepos returns the user's five most recently created public repositories.
// Every upstream failure (unknown user, rate limit, network) collapses into
// ErrGithubUserNotFound; the API exposes no finer distinction.
func (c *GithubClient) GetRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, model.ErrGithubUserNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, model.ErrGithubUserNotFound
	}

	var repos []GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	return repos, nil
}
