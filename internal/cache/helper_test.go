package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, New(rdb)
}

func TestCache_NilIsAlwaysMiss(t *testing.T) {
	ctx := context.Background()
	for name, c := range map[string]*Cache{"nil cache": nil, "nil client": New(nil)} {
		t.Run(name, func(t *testing.T) {
			var dest payload
			found, err := c.GetJSON(ctx, "k", &dest)
			assert.NoError(t, err)
			assert.False(t, found)
			assert.NoError(t, c.SetJSON(ctx, "k", payload{Name: "x"}, time.Minute))
			assert.NotPanics(t, func() { c.Invalidate(ctx, "k") })
			assert.Nil(t, c.Client())

			calls := 0
			err = c.Aside(ctx, "k", &dest, time.Minute, func() error {
				calls++
				dest.Name = "fetched"
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, 1, calls)
			assert.Equal(t, "fetched", dest.Name)
		})
	}
}

func TestCache_AsideStoresAndReuses(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			dest.Name = "octocat"
			return nil
		}
	}

	var first payload
	require.NoError(t, c.Aside(ctx, GitHubReposKey("OctoCat"), &first, GitHubReposTTL, fetch(&first)))
	var second payload
	require.NoError(t, c.Aside(ctx, GitHubReposKey("octocat"), &second, GitHubReposTTL, fetch(&second)))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "octocat", second.Name)
	assert.True(t, mr.Exists("github:repos:octocat"))
	assert.Equal(t, GitHubReposTTL, mr.TTL("github:repos:octocat"))

	c.Invalidate(ctx, GitHubReposKey("octocat"))
	assert.False(t, mr.Exists("github:repos:octocat"))
}

func TestCache_AsideFetchErrorNotCached(t *testing.T) {
	mr, c := newTestCache(t)

	var dest payload
	err := c.Aside(context.Background(), UserKey(1), &dest, UserTTL, func() error {
		return errors.New("db down")
	})
	assert.Error(t, err)
	assert.False(t, mr.Exists(UserKey(1)))
}

func TestCache_AsideFallsBackWhenRedisDown(t *testing.T) {
	mr, c := newTestCache(t)
	mr.Close()

	var dest payload
	err := c.Aside(context.Background(), UserKey(2), &dest, UserTTL, func() error {
		dest.Name = "from-db"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "from-db", dest.Name)
}

func TestNewClient_Unreachable(t *testing.T) {
	assert.Nil(t, NewClient("127.0.0.1:1"))
	assert.Nil(t, NewClient("redis://%zz"))
}

func TestNewClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewClient(mr.Addr())
	require.NotNil(t, rdb)
	_ = rdb.Close()
}
