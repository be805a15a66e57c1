package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "go.yaml.in/yaml/v3"
)

// Config contains runtime configuration values. It is loaded once at startup
// and never mutated afterwards.
type Config struct {
	Project        ProjectConfig    `yaml:"project"`
	AuthMap        string           `yaml:"authmap"`
	Ticket         TicketConfig     `yaml:"ticket"`
	Wiki           WikiConfig       `yaml:"wiki"`
	Repository     RepositoryConfig `yaml:"repository"`
	ListenAddr     string           `yaml:"listen_addr"`
	MaxConnections int              `yaml:"max_connections"`
	RequestTimeout time.Duration    `yaml:"request_timeout"`
	Log            LogConfig        `yaml:"log"`
}

// ProjectConfig describes the tracker instance.
type ProjectConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// Target is where one notification domain posts to.
type Target struct {
	WebhookURL string `yaml:"webhook"`
	Channel    string `yaml:"channel"`
	Username   string `yaml:"username"`
}

// TicketConfig controls ticket notifications.
type TicketConfig struct {
	Target `yaml:",inline"`
	Fields []string `yaml:"fields"`
}

// WikiConfig controls wiki notifications. Pages is a regular expression
// matched against the start of a page name for change notifications.
type WikiConfig struct {
	Target       `yaml:",inline"`
	NotifyAdd    bool   `yaml:"notify_add"`
	NotifyDelete bool   `yaml:"notify_delete"`
	NotifyChange bool   `yaml:"notify_change"`
	Pages        string `yaml:"pages"`
}

// RepositoryConfig controls changeset notifications.
type RepositoryConfig struct {
	Target       `yaml:",inline"`
	NotifyAdd    bool `yaml:"notify_add"`
	NotifyModify bool `yaml:"notify_modify"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

const (
	defaultProjectName    = "Trac"
	defaultWebhookURL     = "https://hooks.slack.com/services/"
	defaultChannel        = "#Trac"
	defaultWikiChannel    = "#TracWiki"
	defaultUsername       = "Trac-Bot"
	defaultTicketFields   = "type,component,resolution"
	defaultWikiPages      = ".*"
	defaultListenAddr     = ":8080"
	defaultMaxConnections = 64
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{Name: defaultProjectName},
		Ticket: TicketConfig{
			Target: Target{WebhookURL: defaultWebhookURL, Channel: defaultChannel, Username: defaultUsername},
			Fields: splitList(defaultTicketFields),
		},
		Wiki: WikiConfig{
			Target:       Target{WebhookURL: defaultWebhookURL, Channel: defaultWikiChannel, Username: defaultUsername},
			NotifyAdd:    true,
			NotifyDelete: true,
			NotifyChange: false,
			Pages:        defaultWikiPages,
		},
		Repository: RepositoryConfig{
			Target:       Target{WebhookURL: defaultWebhookURL, Channel: defaultChannel, Username: defaultUsername},
			NotifyAdd:    true,
			NotifyModify: false,
		},
		ListenAddr:     defaultListenAddr,
		MaxConnections: defaultMaxConnections,
		Log:            LogConfig{Format: defaultLogFormat, Level: defaultLogLevel},
	}
}

// Load builds a Config from defaults, an optional .env file, an optional
// YAML file named by CONFIG_FILE and finally environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(getenvDefault("DOTENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Project.Name = strings.TrimSpace(getenvDefault("TRAC_PROJECT_NAME", c.Project.Name))
	c.Project.BaseURL = getenvDefault("TRAC_BASE_URL", c.Project.BaseURL)
	c.AuthMap = getenvDefault("SLACK_AUTHMAP", c.AuthMap)

	c.Ticket.Target = targetFromEnv("SLACK", c.Ticket.Target)
	if val := os.Getenv("SLACK_FIELDS"); val != "" {
		c.Ticket.Fields = splitList(val)
	}

	c.Wiki.Target = targetFromEnv("SLACK_WIKI", c.Wiki.Target)
	c.Wiki.NotifyAdd = parseBoolDefault("SLACK_WIKIADD", c.Wiki.NotifyAdd)
	c.Wiki.NotifyDelete = parseBoolDefault("SLACK_WIKIDEL", c.Wiki.NotifyDelete)
	c.Wiki.NotifyChange = parseBoolDefault("SLACK_WIKICHANGE", c.Wiki.NotifyChange)
	c.Wiki.Pages = getenvDefault("SLACK_WIKIPAGES", c.Wiki.Pages)

	c.Repository.Target = targetFromEnv("SLACK_REPO", c.Repository.Target)
	c.Repository.NotifyAdd = parseBoolDefault("SLACK_REPOADD", c.Repository.NotifyAdd)
	c.Repository.NotifyModify = parseBoolDefault("SLACK_REPOMOD", c.Repository.NotifyModify)

	c.ListenAddr = getenvDefault("LISTEN_ADDR", c.ListenAddr)
	c.MaxConnections = parseIntDefault("MAX_CONNECTIONS", c.MaxConnections)
	c.RequestTimeout = parseDurationDefault("REQUEST_TIMEOUT", c.RequestTimeout)
	c.Log.Format = getenvDefault("LOG_FORMAT", c.Log.Format)
	c.Log.Level = getenvDefault("LOG_LEVEL", c.Log.Level)
}

// Validate reports configuration errors that would otherwise surface on the
// first notification.
func (c *Config) Validate() error {
	if _, err := c.WikiPagePattern(); err != nil {
		return err
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("MAX_CONNECTIONS must be positive, got %d", c.MaxConnections)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

// WikiPagePattern compiles Wiki.Pages anchored at the start of the page name.
func (c *Config) WikiPagePattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + c.Wiki.Pages + `)`)
	if err != nil {
		return nil, fmt.Errorf("invalid wiki page pattern %q: %w", c.Wiki.Pages, err)
	}
	return re, nil
}

func targetFromEnv(prefix string, t Target) Target {
	return Target{
		WebhookURL: getenvDefault(prefix+"_WEBHOOK", t.WebhookURL),
		Channel:    getenvDefault(prefix+"_CHANNEL", t.Channel),
		Username:   getenvDefault(prefix+"_USERNAME", t.Username),
	}
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
