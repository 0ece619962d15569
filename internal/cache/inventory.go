package cache

import (
	"fmt"
	"strings"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	GitHubReposKeyPrefix = "github:repos:%s"
)

const (
	UserTTL        = 5 * time.Minute
	GitHubReposTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// GitHubReposKey is case-insensitive because GitHub usernames are.
func GitHubReposKey(username string) string {
	return fmt.Sprintf(GitHubReposKeyPrefix, strings.ToLower(username))
}
