package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read and write timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=DE database configuration"`
	Permissions PermissionsConfig `yaml:"permissions" json:"permissions" jsonschema:"description=Permissions and groups services"`
	Metadata    MetadataConfig    `yaml:"metadata" json:"metadata" jsonschema:"description=Metadata service"`

	AppExposer struct {
		URL  string `yaml:"url" json:"url" jsonschema:"description=Base URL of the app-exposer service"`
		User string `yaml:"user" json:"user" jsonschema:"default=de,description=User the instant launch directory is requested as"`
	} `yaml:"app_exposer" json:"app_exposer" jsonschema:"description=App-exposer service"`

	Apps struct {
		FavoritesGroupIndex int `yaml:"favorites_group_index" json:"favorites_group_index" jsonschema:"default=0,minimum=0,description=child_index of the favorites category under the workspace root"`
	} `yaml:"apps" json:"apps" jsonschema:"description=App listing settings"`

	Website struct {
		URL   string `yaml:"url" json:"url" jsonschema:"description=Base URL of the website"`
		Feeds struct {
			News   string `yaml:"news" json:"news" jsonschema:"description=Path of the news RSS feed on the website"`
			Events string `yaml:"events" json:"events" jsonschema:"description=Path of the events RSS feed on the website"`
		} `yaml:"feeds" json:"feeds"`
	} `yaml:"website" json:"website" jsonschema:"description=Website RSS feeds"`

	Videos struct {
		URL string `yaml:"url" json:"url" jsonschema:"description=URL of the videos RSS feed"`
	} `yaml:"videos" json:"videos" jsonschema:"description=Videos RSS feed"`

	Feeds       FeedsConfig       `yaml:"feeds" json:"feeds" jsonschema:"description=Feed cache settings"`
	Aggregation AggregationConfig `yaml:"aggregation" json:"aggregation" jsonschema:"description=Dashboard aggregation settings"`
}

// DatabaseConfig holds connection settings. DSN wins over the individual fields.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"description=Postgres connection string"`
	User            string        `yaml:"user" json:"user" jsonschema:"description=Database user"`
	Password        string        `yaml:"password" json:"password" jsonschema:"description=Database password (can use environment variable)"`
	Host            string        `yaml:"host" json:"host" jsonschema:"default=localhost,description=Database host"`
	Port            int           `yaml:"port" json:"port" jsonschema:"default=5432,description=Database port"`
	Name            string        `yaml:"name" json:"name" jsonschema:"default=de,description=Database name"`
	SSLMode         string        `yaml:"sslmode" json:"sslmode" jsonschema:"default=disable,description=Postgres sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" json:"conn_max_idle_time" jsonschema:"default=5m,description=Maximum time a connection may stay idle"`
}

// PermissionsConfig holds the permissions and groups service settings
type PermissionsConfig struct {
	URL           string        `yaml:"url" json:"url" jsonschema:"required,description=Base URL of the permissions service"`
	GroupsURL     string        `yaml:"groups_url" json:"groups_url" jsonschema:"required,description=Base URL of the groups service"`
	GroupsUser    string        `yaml:"groups_user" json:"groups_user" jsonschema:"default=de-grouper,description=User the public group is looked up as"`
	PublicGroup   string        `yaml:"public_group" json:"public_group" jsonschema:"required,description=Name of the group public apps are shared with"`
	GroupCacheTTL time.Duration `yaml:"group_cache_ttl" json:"group_cache_ttl" jsonschema:"default=1h,description=How long the public group id is cached"`
}

// MetadataConfig holds the metadata service settings
type MetadataConfig struct {
	URL               string `yaml:"url" json:"url" jsonschema:"required,description=Base URL of the metadata service"`
	FeaturedAppsAttr  string `yaml:"featured_apps_attr" json:"featured_apps_attr" jsonschema:"default=cyverse-featured-app,description=AVU attribute marking featured apps"`
	FeaturedAppsValue string `yaml:"featured_apps_value" json:"featured_apps_value" jsonschema:"default=true,description=AVU value marking featured apps"`
}

// FeedsConfig holds feed cache settings
type FeedsConfig struct {
	MaxItems        int           `yaml:"max_items" json:"max_items" jsonschema:"default=20,minimum=1,description=Maximum items kept per feed"`
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=1h,description=Time between scheduled refreshes of each feed"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Timeout of a single feed fetch"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=dashboard-aggregator/1.0,description=User agent for feed requests"`
	WarmUp          bool          `yaml:"warm_up" json:"warm_up" jsonschema:"default=false,description=Refresh every feed at startup"`
}

// AggregationConfig holds dashboard aggregation settings
type AggregationConfig struct {
	UpstreamTimeout          time.Duration `yaml:"upstream_timeout" json:"upstream_timeout" jsonschema:"default=10s,description=Timeout of each upstream call made for a request"`
	DefaultLimit             int           `yaml:"default_limit" json:"default_limit" jsonschema:"default=10,minimum=0,description=Row limit used when a request has none"`
	DefaultStartDateInterval string        `yaml:"default_start_date_interval" json:"default_start_date_interval" jsonschema:"default=1 year,description=Postgres interval used when a request has none"`
	PartialResults           bool          `yaml:"partial_results" json:"partial_results" jsonschema:"default=false,description=Return what succeeded and report failures in an errors field"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "de"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 5 * time.Minute
	}

	// upstream services
	if cfg.Permissions.GroupsUser == "" {
		cfg.Permissions.GroupsUser = "de-grouper"
	}
	if cfg.Permissions.GroupCacheTTL == 0 {
		cfg.Permissions.GroupCacheTTL = time.Hour
	}
	if cfg.Metadata.FeaturedAppsAttr == "" {
		cfg.Metadata.FeaturedAppsAttr = "cyverse-featured-app"
	}
	if cfg.Metadata.FeaturedAppsValue == "" {
		cfg.Metadata.FeaturedAppsValue = "true"
	}
	if cfg.AppExposer.User == "" {
		cfg.AppExposer.User = "de"
	}

	// feeds
	if cfg.Feeds.MaxItems == 0 {
		cfg.Feeds.MaxItems = 20
	}
	if cfg.Feeds.RefreshInterval == 0 {
		cfg.Feeds.RefreshInterval = time.Hour
	}
	if cfg.Feeds.FetchTimeout == 0 {
		cfg.Feeds.FetchTimeout = 30 * time.Second
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "dashboard-aggregator/1.0"
	}

	// aggregation
	if cfg.Aggregation.UpstreamTimeout == 0 {
		cfg.Aggregation.UpstreamTimeout = 10 * time.Second
	}
	if cfg.Aggregation.DefaultLimit == 0 {
		cfg.Aggregation.DefaultLimit = 10
	}
	if cfg.Aggregation.DefaultStartDateInterval == "" {
		cfg.Aggregation.DefaultStartDateInterval = "1 year"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Database.DSN == "" && cfg.Database.User == "" {
		return fmt.Errorf("database.dsn or database.user is required")
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return fmt.Errorf("database.port must be between 1 and 65535")
	}

	if cfg.Permissions.URL == "" {
		return fmt.Errorf("permissions.url is required")
	}
	if cfg.Permissions.GroupsURL == "" {
		return fmt.Errorf("permissions.groups_url is required")
	}
	if cfg.Permissions.PublicGroup == "" {
		return fmt.Errorf("permissions.public_group is required")
	}
	if cfg.Metadata.URL == "" {
		return fmt.Errorf("metadata.url is required")
	}

	if cfg.Apps.FavoritesGroupIndex < 0 {
		return fmt.Errorf("apps.favorites_group_index must be non-negative")
	}
	if cfg.Feeds.MaxItems < 1 {
		return fmt.Errorf("feeds.max_items must be at least 1")
	}
	if cfg.Feeds.RefreshInterval < time.Second {
		return fmt.Errorf("feeds.refresh_interval must be at least 1 second")
	}
	if cfg.Aggregation.DefaultLimit < 0 {
		return fmt.Errorf("aggregation.default_limit must be non-negative")
	}
	if cfg.Aggregation.UpstreamTimeout < time.Millisecond {
		return fmt.Errorf("aggregation.upstream_timeout must be at least 1ms")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDefaultLimit returns the row limit of requests without one
func (c *Config) GetDefaultLimit() int {
	return c.Aggregation.DefaultLimit
}

// DatabaseDSN returns the configured DSN or builds a postgres URL from the individual fields
func (c *Config) DatabaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + strconv.Itoa(c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// WebsiteFeedURLs returns the news and events feed URLs keyed by feed name, skipping
// feeds without a configured path
func (c *Config) WebsiteFeedURLs() map[string]string {
	res := map[string]string{}
	if c.Website.URL == "" {
		return res
	}
	base := strings.TrimSuffix(c.Website.URL, "/")
	for name, path := range map[string]string{"news": c.Website.Feeds.News, "events": c.Website.Feeds.Events} {
		if path == "" {
			continue
		}
		res[name] = base + "/" + strings.TrimPrefix(path, "/")
	}
	return res
}
