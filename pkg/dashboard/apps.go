package dashboard

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
)

type appLister func(ctx context.Context, q repository.AppQuery) ([]domain.App, error)

// PublicApps lists public apps. Anonymous requests get no favorites.
func (s *Service) PublicApps(ctx context.Context, req Request) ([]domain.App, error) {
	req, err := s.validate(ctx, req, "")
	if err != nil {
		return nil, err
	}
	return s.publicList(ctx, "public apps", req, s.store.PublicApps)
}

// RecentlyAddedApps lists apps integrated by the user
func (s *Service) RecentlyAddedApps(ctx context.Context, req Request) ([]domain.App, error) {
	req, err := s.validate(ctx, req, "")
	if err != nil {
		return nil, err
	}
	return s.publicList(ctx, "recently added apps", req, s.store.RecentlyAddedApps)
}

// RecentlyUsedApps lists apps the user ran within the start date interval
func (s *Service) RecentlyUsedApps(ctx context.Context, req Request) ([]domain.App, error) {
	req, err := s.validate(ctx, req, s.cfg.DefaultInterval)
	if err != nil {
		return nil, err
	}
	return s.publicList(ctx, "recently used apps", req, s.store.RecentlyUsedApps)
}

// RecentlyRanApps lists public apps anyone ran within the start date interval. The request
// is always anonymous and the interval defaults to the anonymous one.
func (s *Service) RecentlyRanApps(ctx context.Context, req Request) ([]domain.App, error) {
	req.Username = Anonymous
	req, err := s.validate(ctx, req, s.cfg.AnonymousInterval)
	if err != nil {
		return nil, err
	}
	return s.publicList(ctx, "recently ran apps", req, s.store.RecentlyRanApps)
}

// PopularFeaturedApps lists featured public apps by usage within the start date interval
func (s *Service) PopularFeaturedApps(ctx context.Context, req Request) ([]domain.App, error) {
	req, err := s.validate(ctx, req, s.cfg.DefaultInterval)
	if err != nil {
		return nil, err
	}

	res := []domain.App{}
	fo := s.newFanOut(ctx, "popular featured apps", false, requestAttrs(req)...)
	fo.Go("public app ids", func(ctx context.Context) error {
		ids, err := s.perms.PublicAppIDs(ctx)
		if err != nil {
			return err
		}
		s.goPopularFeatured(fo, req, ids, mapset.NewSet(ids...), func(apps []domain.App) { res = apps })
		return nil
	})
	if _, err := fo.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// RecentAnalyses lists the user's analyses, latest first
func (s *Service) RecentAnalyses(ctx context.Context, req Request) ([]domain.Analysis, error) {
	return s.analyses(ctx, "recent analyses", req, s.store.RecentAnalyses)
}

// RunningAnalyses lists the user's running analyses, latest first
func (s *Service) RunningAnalyses(ctx context.Context, req Request) ([]domain.Analysis, error) {
	return s.analyses(ctx, "running analyses", req, s.store.RunningAnalyses)
}

// publicList fetches public app IDs, then one app list filtered or flagged by them
func (s *Service) publicList(ctx context.Context, name string, req Request, list appLister) ([]domain.App, error) {
	res := []domain.App{}
	fo := s.newFanOut(ctx, name, false, requestAttrs(req)...)
	fo.Go("public app ids", func(ctx context.Context) error {
		ids, err := s.perms.PublicAppIDs(ctx)
		if err != nil {
			return err
		}
		fo.Go(name, func(ctx context.Context) error {
			apps, err := list(ctx, s.appQuery(req, ids))
			res = markPublic(apps, mapset.NewSet(ids...))
			return err
		})
		return nil
	})
	if _, err := fo.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) analyses(ctx context.Context, name string, req Request,
	list func(ctx context.Context, username string, limit int) ([]domain.Analysis, error)) ([]domain.Analysis, error) {
	req, err := s.validate(ctx, req, "")
	if err != nil {
		return nil, err
	}

	res := []domain.Analysis{}
	fo := s.newFanOut(ctx, name, false, requestAttrs(req)...)
	fo.Go(name, func(ctx context.Context) error {
		analyses, err := list(ctx, req.Username, req.Limit)
		if err != nil {
			return err
		}
		if analyses != nil {
			res = analyses
		}
		return nil
	})
	if _, err := fo.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
