package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"devconnector/internal/cache"
	"devconnector/internal/models"
	"devconnector/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
)

const githubTimeout = 10 * time.Second

// GitHubConfig points the proxy at the GitHub API.
type GitHubConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// GitHubService fetches a user's most recent public repositories.
type GitHubService struct {
	cfg   GitHubConfig
	cache *cache.Cache
}

// NewGitHubService returns a GitHubService. c may be nil.
func NewGitHubService(cfg GitHubConfig, c *cache.Cache) *GitHubService {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GitHubService{cfg: cfg, cache: c}
}

// Repos returns GitHub's JSON list of up to five repositories of username.
func (s *GitHubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewNotFoundError("No Github profile found")
	}

	var repos json.RawMessage
	err := s.cache.Aside(ctx, cache.GitHubReposKey(username), &repos, cache.GitHubReposTTL, func() error {
		body, err := s.fetch(ctx, username)
		if err != nil {
			return err
		}
		repos = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

func (s *GitHubService) fetch(ctx context.Context, username string) (body []byte, err error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.cfg.BaseURL, url.PathEscape(username))

	_, span := observability.StartClientSpan(ctx, "github.repos",
		attribute.String("github.username", username))
	defer func() { observability.EndSpan(span, err) }()

	agent := fiber.Get(endpoint).
		Set(fiber.HeaderUserAgent, "devconnector").
		Set(fiber.HeaderAccept, "application/vnd.github+json").
		Timeout(githubTimeout)
	if s.cfg.ClientID != "" && s.cfg.ClientSecret != "" {
		agent.BasicAuth(s.cfg.ClientID, s.cfg.ClientSecret)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		observability.GitHubRequests.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(fmt.Errorf("github request: %w", errs[0]))
	}
	if code != fiber.StatusOK {
		observability.GitHubRequests.WithLabelValues("not_found").Inc()
		observability.Logger.InfoContext(ctx, "github profile lookup failed", "username", username, "status", code)
		return nil, models.NewNotFoundError("No Github profile found")
	}
	if !json.Valid(body) {
		observability.GitHubRequests.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(fmt.Errorf("github returned invalid JSON"))
	}

	observability.GitHubRequests.WithLabelValues("ok").Inc()
	return body, nil
}
