package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/config"
	"github.com/slr71/dashboard-aggregator/pkg/dashboard"
	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/feed"
	"github.com/slr71/dashboard-aggregator/pkg/gateway"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
	"github.com/slr71/dashboard-aggregator/pkg/scheduler"
	"github.com/slr71/dashboard-aggregator/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)

	log.Printf("[INFO] starting dashboard-aggregator version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires every component and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if cfg.Database.Password != "" {
		setupLog(opts.Debug, cfg.Database.Password)
	}

	repo, err := repository.New(ctx, repository.Config{
		DSN:             cfg.DatabaseDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	gw, err := gateway.New(gateway.Config{
		PermissionsURL: cfg.Permissions.URL,
		GroupsURL:      cfg.Permissions.GroupsURL,
		GroupsUser:     cfg.Permissions.GroupsUser,
		PublicGroup:    cfg.Permissions.PublicGroup,
		GroupCacheTTL:  cfg.Permissions.GroupCacheTTL,
		MetadataURL:    cfg.Metadata.URL,
		AppExposerURL:  cfg.AppExposer.URL,
		AppExposerUser: cfg.AppExposer.User,
		Timeout:        cfg.Aggregation.UpstreamTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create upstream client: %w", err)
	}

	feeds := feed.NewSet(feedCaches(cfg, gw)...)
	lgr.Printf("[INFO] feeds configured: %v", feeds.Names())

	sched := scheduler.New(scheduler.Params{
		Feeds:    lo.Map(feeds.Caches(), func(c *feed.Cache, _ int) scheduler.Refresher { return c }),
		Interval: cfg.Feeds.RefreshInterval,
		WarmUp:   cfg.Feeds.WarmUp,
	})
	sched.Start(ctx)
	defer sched.Stop()

	svc := dashboard.New(repo, gw, gw, feeds, dashboard.Config{
		FavoritesIndex:  cfg.Apps.FavoritesGroupIndex,
		FeaturedAttr:    cfg.Metadata.FeaturedAppsAttr,
		FeaturedValue:   cfg.Metadata.FeaturedAppsValue,
		UpstreamTimeout: cfg.Aggregation.UpstreamTimeout,
		DefaultInterval: cfg.Aggregation.DefaultStartDateInterval,
		PartialResults:  cfg.Aggregation.PartialResults,
	})

	srv := server.New(server.Params{
		Config:     cfg,
		Aggregator: svc,
		Health:     repo,
		Feeds:      feeds,
		Scheduler:  sched,
		Version:    revision,
		Debug:      opts.Debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// feedCaches builds a cache for every configured feed source
func feedCaches(cfg *config.Config, il feed.InstantLaunchLister) []*feed.Cache {
	parser := feed.NewParser(cfg.Feeds.FetchTimeout, cfg.Feeds.UserAgent)
	newCache := func(src feed.Source) *feed.Cache {
		return feed.NewCache(src, cfg.Feeds.MaxItems, feed.WithFetchTimeout(cfg.Feeds.FetchTimeout))
	}

	var res []*feed.Cache
	websiteURLs := cfg.WebsiteFeedURLs()
	for _, name := range []string{domain.FeedNews, domain.FeedEvents} {
		if u, ok := websiteURLs[name]; ok {
			res = append(res, newCache(feed.NewWebsiteSource(name, u, parser)))
		}
	}
	if cfg.Videos.URL != "" {
		res = append(res, newCache(feed.NewVideoSource(domain.FeedVideos, cfg.Videos.URL, parser)))
	}
	if cfg.AppExposer.URL != "" {
		res = append(res, newCache(feed.NewInstantLaunchSource(domain.FeedInstantLaunches, il)))
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
