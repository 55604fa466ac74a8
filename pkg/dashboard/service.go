// Package dashboard assembles dashboard payloads. Every operation validates its request first,
// then fans out to the store, the permission and metadata services and the feed caches,
// and merges the results.
package dashboard

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/gateway"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/permissions.go -pkg mocks -skip-ensure -fmt goimports . Permissions
//go:generate moq -out mocks/metadata.go -pkg mocks -skip-ensure -fmt goimports . Metadata
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . Feeds

var tracer = otel.Tracer("github.com/slr71/dashboard-aggregator/pkg/dashboard")

// Store is the relational store
type Store interface {
	ValidateInterval(ctx context.Context, s string) error
	PublicApps(ctx context.Context, q repository.AppQuery) ([]domain.App, error)
	RecentlyAddedApps(ctx context.Context, q repository.AppQuery) ([]domain.App, error)
	RecentlyUsedApps(ctx context.Context, q repository.AppQuery) ([]domain.App, error)
	RecentlyRanApps(ctx context.Context, q repository.AppQuery) ([]domain.App, error)
	PopularFeaturedApps(ctx context.Context, q repository.AppQuery) ([]domain.App, error)
	RecentAnalyses(ctx context.Context, username string, limit int) ([]domain.Analysis, error)
	RunningAnalyses(ctx context.Context, username string, limit int) ([]domain.Analysis, error)
}

// Permissions lists apps visible to everyone
type Permissions interface {
	PublicAppIDs(ctx context.Context) ([]string, error)
}

// Metadata filters targets by their AVUs
type Metadata interface {
	FilterTargetIDs(ctx context.Context, username string, targetTypes []string, avus []gateway.AVU, targetIDs []string) ([]string, error)
}

// Feeds reads feed cache snapshots
type Feeds interface {
	SnapshotOf(ctx context.Context, names ...string) map[string][]domain.FeedItem
}

// Config holds orchestration settings
type Config struct {
	FavoritesIndex    int           // child index of the favorites category under the workspace root
	FeaturedAttr      string        // AVU attribute marking featured apps
	FeaturedValue     string        // AVU value marking featured apps
	UpstreamTimeout   time.Duration // bound for every single upstream call
	DefaultInterval   string        // start date interval when the request has none
	AnonymousInterval string        // start date interval of the anonymous recently ran list
	PartialResults    bool          // report failed branches in the payload instead of failing the request
	FeedNames         []string      // feeds included in the "feeds" section
}

// Service runs dashboard operations
type Service struct {
	store Store
	perms Permissions
	meta  Metadata
	feeds Feeds
	cfg   Config
}

// New makes a Service, filling unset config values with defaults
func New(store Store, perms Permissions, meta Metadata, feeds Feeds, cfg Config) *Service {
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = 10 * time.Second
	}
	if cfg.DefaultInterval == "" {
		cfg.DefaultInterval = "1 year"
	}
	if cfg.AnonymousInterval == "" {
		cfg.AnonymousInterval = "1 week"
	}
	if len(cfg.FeedNames) == 0 {
		cfg.FeedNames = []string{domain.FeedNews, domain.FeedEvents, domain.FeedVideos}
	}
	return &Service{store: store, perms: perms, meta: meta, feeds: feeds, cfg: cfg}
}

// Apps is the apps section of the dashboard
type Apps struct {
	RecentlyAdded   []domain.App `json:"recentlyAdded"`
	Public          []domain.App `json:"public"`
	RecentlyUsed    []domain.App `json:"recentlyUsed"`
	PopularFeatured []domain.App `json:"popularFeatured"`
}

// Analyses is the analyses section of the dashboard
type Analyses struct {
	Recent  []domain.Analysis `json:"recent"`
	Running []domain.Analysis `json:"running"`
}

// Dashboard is the full payload for a user. Errors is set only in partial results mode.
type Dashboard struct {
	Apps            Apps                         `json:"apps"`
	Analyses        Analyses                     `json:"analyses"`
	Feeds           map[string][]domain.FeedItem `json:"feeds"`
	InstantLaunches []domain.FeedItem            `json:"instantLaunches"`
	Errors          []string                     `json:"errors,omitempty"`
}

// LoggedOutApps is the apps section of the anonymous payload
type LoggedOutApps struct {
	PopularFeatured []domain.App `json:"popularFeatured"`
}

// LoggedOut is the anonymous landing payload
type LoggedOut struct {
	Apps   LoggedOutApps                `json:"apps"`
	Feeds  map[string][]domain.FeedItem `json:"feeds"`
	Errors []string                     `json:"errors,omitempty"`
}
