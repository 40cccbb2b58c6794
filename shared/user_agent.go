package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_agent.go -package mocks reddit_parrot/shared IUserAgent

const (
	versionFileName   = "version.txt"
	defaultVersion    = "dev"
	userAgentTemplate = "RedditParrot/%s (by /r/%s)"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg.Subreddit),
	}
}

// Reddit throttles generic agents hard, so the string names the bot and its subreddit.
func buildUserAgentString(subreddit string) string {
	versionBytes, _ := os.ReadFile(versionFileName)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = defaultVersion
	}
	return fmt.Sprintf(userAgentTemplate, versionStr, subreddit)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}
