package dashboard

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/gateway"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
)

// Dashboard builds the full payload for req.Username. Public app IDs gate the app lists and
// featured IDs gate the popular list, everything else runs independently.
func (s *Service) Dashboard(ctx context.Context, req Request) (*Dashboard, error) {
	req, err := s.validate(ctx, req, s.cfg.DefaultInterval)
	if err != nil {
		return nil, err
	}

	res := &Dashboard{
		Apps:            Apps{RecentlyAdded: []domain.App{}, Public: []domain.App{}, RecentlyUsed: []domain.App{}, PopularFeatured: []domain.App{}},
		Analyses:        Analyses{Recent: []domain.Analysis{}, Running: []domain.Analysis{}},
		Feeds:           map[string][]domain.FeedItem{},
		InstantLaunches: []domain.FeedItem{},
	}

	fo := s.newFanOut(ctx, "dashboard", s.cfg.PartialResults, requestAttrs(req)...)

	fo.Go("recent analyses", func(ctx context.Context) error {
		analyses, err := s.store.RecentAnalyses(ctx, req.Username, req.Limit)
		if err != nil {
			return err
		}
		res.Analyses.Recent = analyses
		return nil
	})
	fo.Go("running analyses", func(ctx context.Context) error {
		analyses, err := s.store.RunningAnalyses(ctx, req.Username, req.Limit)
		if err != nil {
			return err
		}
		res.Analyses.Running = analyses
		return nil
	})
	fo.Go("feeds", func(ctx context.Context) error {
		res.Feeds = s.feeds.SnapshotOf(ctx, s.cfg.FeedNames...)
		return nil
	})
	fo.Go("instant launches", func(ctx context.Context) error {
		if items, ok := s.feeds.SnapshotOf(ctx, domain.FeedInstantLaunches)[domain.FeedInstantLaunches]; ok {
			res.InstantLaunches = items
		}
		return nil
	})

	fo.Go("public app ids", func(ctx context.Context) error {
		ids, err := s.perms.PublicAppIDs(ctx)
		if err != nil {
			return err
		}
		public := mapset.NewSet(ids...)
		q := s.appQuery(req, ids)

		fo.Go("recently added apps", func(ctx context.Context) error {
			apps, err := s.store.RecentlyAddedApps(ctx, q)
			res.Apps.RecentlyAdded = markPublic(apps, public)
			return err
		})
		fo.Go("public apps", func(ctx context.Context) error {
			apps, err := s.store.PublicApps(ctx, q)
			res.Apps.Public = markPublic(apps, public)
			return err
		})
		fo.Go("recently used apps", func(ctx context.Context) error {
			apps, err := s.store.RecentlyUsedApps(ctx, q)
			res.Apps.RecentlyUsed = markPublic(apps, public)
			return err
		})
		s.goPopularFeatured(fo, req, ids, public, func(apps []domain.App) { res.Apps.PopularFeatured = apps })
		return nil
	})

	if res.Errors, err = fo.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// LoggedOut builds the anonymous landing payload
func (s *Service) LoggedOut(ctx context.Context, req Request) (*LoggedOut, error) {
	req.Username = Anonymous
	req, err := s.validate(ctx, req, s.cfg.DefaultInterval)
	if err != nil {
		return nil, err
	}

	res := &LoggedOut{Apps: LoggedOutApps{PopularFeatured: []domain.App{}}, Feeds: map[string][]domain.FeedItem{}}
	fo := s.newFanOut(ctx, "logged out", s.cfg.PartialResults, requestAttrs(req)...)
	fo.Go("feeds", func(ctx context.Context) error {
		res.Feeds = s.feeds.SnapshotOf(ctx, s.cfg.FeedNames...)
		return nil
	})
	fo.Go("public app ids", func(ctx context.Context) error {
		ids, err := s.perms.PublicAppIDs(ctx)
		if err != nil {
			return err
		}
		s.goPopularFeatured(fo, req, ids, mapset.NewSet(ids...), func(apps []domain.App) { res.Apps.PopularFeatured = apps })
		return nil
	})

	if res.Errors, err = fo.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Feeds returns the snapshots of the public content feeds
func (s *Service) Feeds(ctx context.Context) map[string][]domain.FeedItem {
	return s.feeds.SnapshotOf(ctx, s.cfg.FeedNames...)
}

// goPopularFeatured narrows the public IDs to featured ones and then lists them by usage. Both
// calls are branches of fo with a timeout each. set is called only when the list query ran.
func (s *Service) goPopularFeatured(fo *fanOut, req Request, publicIDs []string, public mapset.Set[string], set func([]domain.App)) {
	fo.Go("featured app ids", func(ctx context.Context) error {
		avus := []gateway.AVU{{Attr: s.cfg.FeaturedAttr, Value: s.cfg.FeaturedValue}}
		featured, err := s.meta.FilterTargetIDs(ctx, req.Username, []string{"app"}, avus, publicIDs)
		if err != nil {
			return err
		}
		fo.Go("popular featured apps", func(ctx context.Context) error {
			apps, err := s.store.PopularFeaturedApps(ctx, s.appQuery(req, featured))
			set(markPublic(apps, public))
			return err
		})
		return nil
	})
}

func (s *Service) appQuery(req Request, ids []string) repository.AppQuery {
	return repository.AppQuery{
		Username:          req.Username,
		FavoritesIndex:    s.cfg.FavoritesIndex,
		AppIDs:            ids,
		StartDateInterval: req.StartDateInterval,
		Limit:             req.Limit,
	}
}

// markPublic sets IsPublic from the public ID set. A nil list becomes empty.
func markPublic(apps []domain.App, public mapset.Set[string]) []domain.App {
	if apps == nil {
		return []domain.App{}
	}
	for i := range apps {
		apps[i].IsPublic = public.Contains(apps[i].ID)
	}
	return apps
}

func requestAttrs(req Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("username", req.Username),
		attribute.Int("limit", req.Limit),
		attribute.String("start_date_interval", req.StartDateInterval),
	}
}
