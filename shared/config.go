package shared

import (
	"encoding/json"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"strings"
)

const (
	configVarName  = "CONFIG"                // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
	dotEnvFile     = ".env"
)

const (
	FeedKindApi = "api"
	FeedKindRss = "rss"

	LedgerKindCsv    = "csv"
	LedgerKindSqlite = "sqlite"
	LedgerKindRedis  = "redis"
)

const (
	defaultPostLimit      = 10
	defaultDelaySec       = 600
	defaultMediaDir       = "media"
	defaultCsvFile        = "cache.csv"
	defaultRedisKeyPrefix = "tootbot:"
	defaultTwitterMaxLen  = 280
	defaultMastodonMaxLen = 500
	defaultVisibility     = "public"
	defaultSpoilerText    = "NSFW"
)

type Config struct {
	Secrets              Secrets        `json:"-"`
	LogFile              string         `json:"log_file"`
	LogLevel             string         `json:"log_level"`
	ServicePort          uint           `json:"service_port"`
	Subreddit            string         `json:"subreddit"`
	FeedKind             string         `json:"feed_kind"`
	PostLimit            int            `json:"post_limit"`
	DelayBetweenPostsSec int            `json:"delay_between_posts_sec"`
	NsfwPostsAllowed     bool           `json:"nsfw_posts_allowed"`
	SelfPostsAllowed     bool           `json:"self_posts_allowed"`
	SpoilersAllowed      bool           `json:"spoilers_allowed"`
	Hashtags             []string       `json:"hashtags"`
	MediaPostsOnly       bool           `json:"media_posts_only"`
	MediaDir             string         `json:"media_dir"`
	MediaKeepHours       int            `json:"media_keep_hours"`
	Ledger               LedgerConfig   `json:"ledger"`
	Twitter              TwitterConfig  `json:"twitter"`
	Mastodon             MastodonConfig `json:"mastodon"`
}

type LedgerConfig struct {
	Kind           string `json:"kind"`
	CsvFile        string `json:"csv_file"`
	DbFile         string `json:"db_file"`
	RedisKeyPrefix string `json:"redis_key_prefix"`
}

type TwitterConfig struct {
	Enabled   bool `json:"enabled"`
	MaxLength int  `json:"max_length"`
}

type MastodonConfig struct {
	Enabled         bool   `json:"enabled"`
	InstanceDomain  string `json:"instance_domain"`
	Visibility      string `json:"visibility"`
	MaxLength       int    `json:"max_length"`
	NsfwSpoilerText string `json:"nsfw_spoiler_text"`
	SensitiveMedia  bool   `json:"sensitive_media"` // Mark all media as sensitive, not only on adult posts
}

type Secrets struct {
	RedditClientId           string   `json:"reddit_client_id"`
	RedditClientSecret       string   `json:"reddit_client_secret"`
	ImgurClientId            string   `json:"imgur_client_id"`
	ImgurClientSecret        string   `json:"imgur_client_secret"`
	TwitterConsumerKey       string   `json:"twitter_consumer_key"`
	TwitterConsumerSecret    string   `json:"twitter_consumer_secret"`
	TwitterAccessToken       string   `json:"twitter_access_token"`
	TwitterAccessTokenSecret string   `json:"twitter_access_token_secret"`
	MastodonAccessToken      string   `json:"mastodon_access_token"`
	RedisUrl                 string   `json:"redis_url"`
	MetricsAuth              string   `json:"metrics_auth"`
	ApiKeys                  []string `json:"api_keys"`
}

// Environment variables that override values from the secrets file.
var secretEnvVars = map[string]func(s *Secrets) *string{
	"REDDIT_AGENT":                func(s *Secrets) *string { return &s.RedditClientId },
	"REDDIT_SECRET":               func(s *Secrets) *string { return &s.RedditClientSecret },
	"IMGUR_ID":                    func(s *Secrets) *string { return &s.ImgurClientId },
	"IMGUR_SECRET":                func(s *Secrets) *string { return &s.ImgurClientSecret },
	"TWITTER_CONSUMER_KEY":        func(s *Secrets) *string { return &s.TwitterConsumerKey },
	"TWITTER_CONSUMER_SECRET":     func(s *Secrets) *string { return &s.TwitterConsumerSecret },
	"TWITTER_ACCESS_TOKEN":        func(s *Secrets) *string { return &s.TwitterAccessToken },
	"TWITTER_ACCESS_TOKEN_SECRET": func(s *Secrets) *string { return &s.TwitterAccessTokenSecret },
	"MASTODON_ACCESS_TOKEN":       func(s *Secrets) *string { return &s.MastodonAccessToken },
	"REDIS_URL":                   func(s *Secrets) *string { return &s.RedisUrl },
}

func LoadConfig() *Config {

	// Optional .env file; a missing one is not an error
	_ = godotenv.Load(dotEnvFile)

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	cfg, err := ReadConfig(cfgPath, secretsPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// ReadConfig parses the config and secrets files, applies environment overrides and defaults,
// and validates the result.
func ReadConfig(cfgPath, secretsPath string) (*Config, error) {

	var config Config
	if err := deserializeFile(cfgPath, &config); err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("failed to read config file '%s'", cfgPath), Err: err}
	}
	// Secrets file is optional when everything comes from the environment
	if _, err := os.Stat(secretsPath); err == nil {
		if err = deserializeFile(secretsPath, &config.Secrets); err != nil {
			return nil, &ConfigError{Msg: fmt.Sprintf("failed to read secrets file '%s'", secretsPath), Err: err}
		}
	}
	config.Secrets.applyEnv()
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (s *Secrets) applyEnv() {
	for name, field := range secretEnvVars {
		if val := os.Getenv(name); val != "" {
			*field(s) = val
		}
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.FeedKind == "" {
		cfg.FeedKind = FeedKindApi
	}
	if cfg.PostLimit <= 0 {
		cfg.PostLimit = defaultPostLimit
	}
	if cfg.DelayBetweenPostsSec <= 0 {
		cfg.DelayBetweenPostsSec = defaultDelaySec
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = defaultMediaDir
	}
	if cfg.Ledger.Kind == "" {
		cfg.Ledger.Kind = LedgerKindCsv
	}
	if cfg.Ledger.CsvFile == "" {
		cfg.Ledger.CsvFile = defaultCsvFile
	}
	if cfg.Ledger.RedisKeyPrefix == "" {
		cfg.Ledger.RedisKeyPrefix = defaultRedisKeyPrefix
	}
	if cfg.Twitter.MaxLength <= 0 {
		cfg.Twitter.MaxLength = defaultTwitterMaxLen
	}
	if cfg.Mastodon.MaxLength <= 0 {
		cfg.Mastodon.MaxLength = defaultMastodonMaxLen
	}
	if cfg.Mastodon.Visibility == "" {
		cfg.Mastodon.Visibility = defaultVisibility
	}
	if cfg.Mastodon.NsfwSpoilerText == "" {
		cfg.Mastodon.NsfwSpoilerText = defaultSpoilerText
	}
	cfg.Mastodon.InstanceDomain = strings.TrimRight(cfg.Mastodon.InstanceDomain, "/")
}

func (cfg *Config) Validate() error {
	fail := func(format string, args ...any) error {
		return &ConfigError{Msg: fmt.Sprintf(format, args...)}
	}
	if cfg.Subreddit == "" {
		return fail("subreddit must be set")
	}
	switch cfg.FeedKind {
	case FeedKindApi:
		if cfg.Secrets.RedditClientId == "" || cfg.Secrets.RedditClientSecret == "" {
			return fail("feed kind '%s' needs Reddit client ID and secret", FeedKindApi)
		}
	case FeedKindRss:
	default:
		return fail("unknown feed kind '%s'", cfg.FeedKind)
	}
	switch cfg.Ledger.Kind {
	case LedgerKindCsv:
	case LedgerKindSqlite:
		if cfg.Ledger.DbFile == "" {
			return fail("ledger kind '%s' needs db_file", LedgerKindSqlite)
		}
	case LedgerKindRedis:
		if cfg.Secrets.RedisUrl == "" {
			return fail("ledger kind '%s' needs a Redis URL", LedgerKindRedis)
		}
	default:
		return fail("unknown ledger kind '%s'", cfg.Ledger.Kind)
	}
	if !cfg.Twitter.Enabled && !cfg.Mastodon.Enabled {
		return fail("at least one of Twitter or Mastodon must be enabled")
	}
	if cfg.Twitter.Enabled {
		s := &cfg.Secrets
		if s.TwitterConsumerKey == "" || s.TwitterConsumerSecret == "" ||
			s.TwitterAccessToken == "" || s.TwitterAccessTokenSecret == "" {
			return fail("Twitter is enabled but its keys are missing")
		}
	}
	if cfg.Mastodon.Enabled {
		if cfg.Mastodon.InstanceDomain == "" {
			return fail("Mastodon is enabled but instance_domain is not set")
		}
		if cfg.Secrets.MastodonAccessToken == "" {
			return fail("Mastodon is enabled but the access token is missing")
		}
		switch cfg.Mastodon.Visibility {
		case "public", "unlisted", "private", "direct":
		default:
			return fail("invalid Mastodon visibility '%s'", cfg.Mastodon.Visibility)
		}
	}
	return nil
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		return err
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		return err
	}
	// Parse
	return json.Unmarshal(cfgJson, obj)
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
