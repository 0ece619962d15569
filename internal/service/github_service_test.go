package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"devconnector/internal/cache"
	"devconnector/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGitHub(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		switch r.URL.Path {
		case "/users/octocat/repos":
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "id", user)
			assert.Equal(t, "secret", pass)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name":"hello-world"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHubService_ReposCached(t *testing.T) {
	var calls int32
	srv := fakeGitHub(t, &calls)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := NewGitHubService(GitHubConfig{BaseURL: srv.URL + "/", ClientID: "id", ClientSecret: "secret"}, cache.New(rdb))
	ctx := context.Background()

	repos, err := svc.Repos(ctx, "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"hello-world"}]`, string(repos))

	repos, err = svc.Repos(ctx, "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"hello-world"}]`, string(repos))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, cache.GitHubReposTTL, mr.TTL(cache.GitHubReposKey("octocat")))
}

func TestGitHubService_NotFoundIsNotCached(t *testing.T) {
	var calls int32
	srv := fakeGitHub(t, &calls)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := NewGitHubService(GitHubConfig{BaseURL: srv.URL}, cache.New(rdb))

	_, err := svc.Repos(context.Background(), "ghost")
	assertAppError(t, err, models.CodeNotFound, "No Github profile found")
	assert.False(t, mr.Exists(cache.GitHubReposKey("ghost")))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGitHubService_TransportError(t *testing.T) {
	var calls int32
	srv := fakeGitHub(t, &calls)
	srv.Close()

	svc := NewGitHubService(GitHubConfig{BaseURL: srv.URL}, nil)
	_, err := svc.Repos(context.Background(), "octocat")
	assertAppError(t, err, models.CodeInternal, "")
}
