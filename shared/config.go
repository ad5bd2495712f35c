package shared

import (
	"encoding/json"
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
)

const (
	defaultRemoteTimeoutSec = 30
	defaultSyncSchedule     = "@hourly"
	defaultCacheExpireSec   = 600
	defaultExcerptWords     = 55
	defaultFeedCheckMin     = 15
	defaultMaxLinks         = 2
)

type Config struct {
	Secrets          Secrets    `json:"-"`
	LogFile          string     `json:"log_file"`
	LogLevel         string     `json:"log_level"`
	ServicePort      uint       `json:"service_port"`
	DbFile           string     `json:"db_file"`
	Debug            bool       `json:"debug"`
	RemoteTimeoutSec int        `json:"remote_timeout_sec"`
	SyncSchedule     string     `json:"sync_schedule"`
	Accounts         []Account  `json:"accounts"`
	Blog             Blog       `json:"blog"`
	Crosspost        Crosspost  `json:"crosspost"`
	Cache            Cache      `json:"cache"`
	Moderation       Moderation `json:"moderation"`
}

// Account is a connected Diaspora* identity, user@pod.
type Account struct {
	Handle       string `json:"handle"`
	SyncComments bool   `json:"sync_comments"`
}

type Blog struct {
	Url            string `json:"url"`
	Name           string `json:"name"`
	FeedUrl        string `json:"feed_url"`
	FeedCheckMin   int    `json:"feed_check_min"`
	CommentsNotify bool   `json:"comments_notify"`
}

type Crosspost struct {
	ExcludeCategories []string     `json:"exclude_categories"`
	PostTypes         []string     `json:"post_types"`
	UseExcerpt        bool         `json:"use_excerpt"`
	UseGeo            bool         `json:"use_geo"`
	AdditionalMarkup  string       `json:"additional_markup"`
	AdditionalTags    []string     `json:"additional_tags"`
	ExcludeTags       bool         `json:"exclude_tags"`
	AutoServices      AutoServices `json:"auto_services"`
	ExcerptWords      int          `json:"excerpt_words"`
}

type AutoServices struct {
	Twitter   bool `json:"twitter"`
	Tumblr    bool `json:"tumblr"`
	WordPress bool `json:"wordpress"`
	Facebook  bool `json:"facebook"`
}

type Cache struct {
	ExpireInSec int    `json:"expire_in_sec"`
	RedisUrl    string `json:"redis_url"`
}

type Moderation struct {
	RequireApproval bool     `json:"require_approval"`
	ModerationKeys  []string `json:"moderation_keys"`
	DisallowedKeys  []string `json:"disallowed_keys"`
	MaxLinks        int      `json:"max_links"`
}

type Secrets struct {
	Passwords   map[string]string `json:"passwords"`
	ApiKeys     []string          `json:"api_keys"`
	HookKeys    map[string]string `json:"hook_keys"`
	MetricsAuth string            `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Optional .env with CONFIG and SECRETS paths
	_ = godotenv.Load()

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in zero values that have a non-zero default.
func (cfg *Config) ApplyDefaults() {
	if cfg.RemoteTimeoutSec <= 0 {
		cfg.RemoteTimeoutSec = defaultRemoteTimeoutSec
	}
	if cfg.SyncSchedule == "" {
		cfg.SyncSchedule = defaultSyncSchedule
	}
	if cfg.Cache.ExpireInSec <= 0 {
		cfg.Cache.ExpireInSec = defaultCacheExpireSec
	}
	if cfg.Crosspost.ExcerptWords <= 0 {
		cfg.Crosspost.ExcerptWords = defaultExcerptWords
	}
	if cfg.Blog.FeedCheckMin <= 0 {
		cfg.Blog.FeedCheckMin = defaultFeedCheckMin
	}
	if cfg.Moderation.MaxLinks <= 0 {
		cfg.Moderation.MaxLinks = defaultMaxLinks
	}
	if cfg.Debug {
		cfg.LogLevel = "Debug"
	}
}

// PostingAccount is the account new crossposts are published from.
func (cfg *Config) PostingAccount() *Account {
	if len(cfg.Accounts) == 0 {
		return nil
	}
	return &cfg.Accounts[0]
}

func (cfg *Config) GetAccount(handle string) *Account {
	handle = strings.ToLower(handle)
	for i := range cfg.Accounts {
		if strings.ToLower(cfg.Accounts[i].Handle) == handle {
			return &cfg.Accounts[i]
		}
	}
	return nil
}

func (cfg *Config) IsConnected() bool {
	acct := cfg.PostingAccount()
	if acct == nil {
		return false
	}
	_, hasPass := cfg.Secrets.Passwords[acct.Handle]
	return hasPass
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
