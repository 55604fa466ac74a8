package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slr71/dashboard-aggregator/pkg/dashboard/mocks"
	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/gateway"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
)

// fixture: alice's favorites are {42}, the public set is {1, 42, 99}
var publicIDs = []string{"1", "42", "99"}

func app(id string) domain.App {
	return domain.App{ID: id, SystemID: "de", Name: "app " + id, IsFavorite: id == "42"}
}

func apps(ids ...string) []domain.App {
	res := make([]domain.App, 0, len(ids))
	for _, id := range ids {
		res = append(res, app(id))
	}
	return res
}

type fixture struct {
	store *mocks.StoreMock
	perms *mocks.PermissionsMock
	meta  *mocks.MetadataMock
	feeds *mocks.FeedsMock
}

func newFixture() *fixture {
	list := func(ctx context.Context, q repository.AppQuery) ([]domain.App, error) { return apps("42", "7", "1"), nil }
	return &fixture{
		store: &mocks.StoreMock{
			ValidateIntervalFunc: func(ctx context.Context, s string) error { return nil },
			PublicAppsFunc: func(ctx context.Context, q repository.AppQuery) ([]domain.App, error) {
				return apps("99", "42", "1"), nil
			},
			RecentlyAddedAppsFunc:   list,
			RecentlyUsedAppsFunc:    list,
			RecentlyRanAppsFunc:     list,
			PopularFeaturedAppsFunc: list,
			RecentAnalysesFunc: func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
				return []domain.Analysis{{ID: "a1", Username: username}, {ID: "a2", Username: username}}, nil
			},
			RunningAnalysesFunc: func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
				return []domain.Analysis{{ID: "a2", Status: domain.AnalysisStatusRunning, Username: username}}, nil
			},
		},
		perms: &mocks.PermissionsMock{
			PublicAppIDsFunc: func(ctx context.Context) ([]string, error) { return publicIDs, nil },
		},
		meta: &mocks.MetadataMock{
			FilterTargetIDsFunc: func(ctx context.Context, username string, targetTypes []string, avus []gateway.AVU, targetIDs []string) ([]string, error) {
				return []string{"42", "1"}, nil
			},
		},
		feeds: &mocks.FeedsMock{
			SnapshotOfFunc: func(ctx context.Context, names ...string) map[string][]domain.FeedItem {
				res := map[string][]domain.FeedItem{}
				for _, n := range names {
					res[n] = []domain.FeedItem{{ID: n + "-1", Name: n}}
				}
				return res
			},
		},
	}
}

func (f *fixture) service(cfg Config) *Service {
	if cfg.FavoritesIndex == 0 {
		cfg.FavoritesIndex = 10
	}
	if cfg.FeaturedAttr == "" {
		cfg.FeaturedAttr, cfg.FeaturedValue = "rdf:type", "featured"
	}
	return New(f.store, f.perms, f.meta, f.feeds, cfg)
}

// upstreamCalls counts calls to everything except interval validation
func (f *fixture) upstreamCalls() int {
	return len(f.store.PublicAppsCalls()) + len(f.store.RecentlyAddedAppsCalls()) + len(f.store.RecentlyUsedAppsCalls()) +
		len(f.store.RecentlyRanAppsCalls()) + len(f.store.PopularFeaturedAppsCalls()) + len(f.store.RecentAnalysesCalls()) +
		len(f.store.RunningAnalysesCalls()) + len(f.perms.PublicAppIDsCalls()) + len(f.meta.FilterTargetIDsCalls()) +
		len(f.feeds.SnapshotOfCalls())
}

func assertFlags(t *testing.T, apps []domain.App) {
	t.Helper()
	for _, a := range apps {
		switch a.ID {
		case "42":
			assert.True(t, a.IsFavorite, "app 42 favorite")
			assert.True(t, a.IsPublic, "app 42 public")
		case "7":
			assert.False(t, a.IsFavorite, "app 7 favorite")
			assert.False(t, a.IsPublic, "app 7 public")
		case "1", "99":
			assert.False(t, a.IsFavorite, "app %s favorite", a.ID)
			assert.True(t, a.IsPublic, "app %s public", a.ID)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(nil, nil, nil, nil, Config{})
	assert.Equal(t, 10*time.Second, svc.cfg.UpstreamTimeout)
	assert.Equal(t, "1 year", svc.cfg.DefaultInterval)
	assert.Equal(t, "1 week", svc.cfg.AnonymousInterval)
	assert.Equal(t, []string{domain.FeedNews, domain.FeedEvents, domain.FeedVideos}, svc.cfg.FeedNames)
	assert.False(t, svc.cfg.PartialResults)
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture()
	svc := f.service(Config{})

	res, err := svc.Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
	require.NoError(t, err)

	t.Run("interval defaulted and validated", func(t *testing.T) {
		require.Len(t, f.store.ValidateIntervalCalls(), 1)
		assert.Equal(t, "1 year", f.store.ValidateIntervalCalls()[0].S)
	})

	t.Run("limit and user pushed into every query", func(t *testing.T) {
		for _, calls := range [][]repository.AppQuery{
			queries(f.store.PublicAppsCalls()), queries(f.store.RecentlyAddedAppsCalls()),
			queries(f.store.RecentlyUsedAppsCalls()), queries(f.store.PopularFeaturedAppsCalls()),
		} {
			require.Len(t, calls, 1)
			assert.Equal(t, 5, calls[0].Limit)
			assert.Equal(t, "alice", calls[0].Username)
			assert.Equal(t, 10, calls[0].FavoritesIndex)
			assert.Equal(t, "1 year", calls[0].StartDateInterval)
		}
		assert.Equal(t, publicIDs, f.store.PublicAppsCalls()[0].Q.AppIDs)
		assert.Equal(t, []string{"42", "1"}, f.store.PopularFeaturedAppsCalls()[0].Q.AppIDs, "popular list is limited to featured ids")
		assert.Equal(t, 5, f.store.RecentAnalysesCalls()[0].Limit)
		assert.Equal(t, "alice", f.store.RunningAnalysesCalls()[0].Username)
		assert.Empty(t, f.store.RecentlyRanAppsCalls())
	})

	t.Run("featured ids filtered from public ids", func(t *testing.T) {
		require.Len(t, f.meta.FilterTargetIDsCalls(), 1)
		call := f.meta.FilterTargetIDsCalls()[0]
		assert.Equal(t, "alice", call.Username)
		assert.Equal(t, []string{"app"}, call.TargetTypes)
		assert.Equal(t, []gateway.AVU{{Attr: "rdf:type", Value: "featured"}}, call.Avus)
		assert.Equal(t, publicIDs, call.TargetIDs)
		assert.Len(t, f.perms.PublicAppIDsCalls(), 1, "public ids fetched once per request")
	})

	t.Run("flags", func(t *testing.T) {
		for _, list := range [][]domain.App{res.Apps.Public, res.Apps.RecentlyAdded, res.Apps.RecentlyUsed, res.Apps.PopularFeatured} {
			assert.LessOrEqual(t, len(list), 5)
			assertFlags(t, list)
		}
		assert.Equal(t, "42", res.Apps.RecentlyAdded[0].ID)
		assert.True(t, res.Apps.RecentlyAdded[0].IsPublic)
		assert.False(t, res.Apps.RecentlyAdded[1].IsPublic)
	})

	t.Run("analyses and feeds", func(t *testing.T) {
		assert.Len(t, res.Analyses.Recent, 2)
		assert.Len(t, res.Analyses.Running, 1)
		assert.Equal(t, []string{domain.FeedNews, domain.FeedEvents, domain.FeedVideos}, mapKeys(res.Feeds))
		require.Len(t, res.InstantLaunches, 1)
		assert.Equal(t, domain.FeedInstantLaunches+"-1", res.InstantLaunches[0].ID)
		assert.Nil(t, res.Errors)
	})
}

func TestService_DashboardLimitZero(t *testing.T) {
	f := newFixture()
	empty := func(ctx context.Context, q repository.AppQuery) ([]domain.App, error) {
		if q.Limit == 0 {
			return []domain.App{}, nil
		}
		return apps("1"), nil
	}
	f.store.PublicAppsFunc, f.store.RecentlyAddedAppsFunc = empty, empty
	f.store.RecentlyUsedAppsFunc, f.store.PopularFeaturedAppsFunc = empty, empty
	f.store.RecentAnalysesFunc = func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
		return []domain.Analysis{}, nil
	}

	res, err := f.service(Config{}).Dashboard(context.Background(), Request{Username: "alice", Limit: 0})
	require.NoError(t, err)
	assert.NotNil(t, res.Apps.Public)
	assert.Empty(t, res.Apps.Public)
	assert.Empty(t, res.Apps.RecentlyAdded)
	assert.Empty(t, res.Apps.RecentlyUsed)
	assert.Empty(t, res.Apps.PopularFeatured)
	assert.Empty(t, res.Analyses.Recent)
	assert.Equal(t, 0, f.store.PublicAppsCalls()[0].Q.Limit)
}

func TestService_DashboardValidation(t *testing.T) {
	t.Run("negative limit", func(t *testing.T) {
		f := newFixture()
		_, err := f.service(Config{}).Dashboard(context.Background(), Request{Username: "alice", Limit: -1})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "limit", verr.Field)
		assert.Empty(t, f.store.ValidateIntervalCalls())
		assert.Zero(t, f.upstreamCalls())
	})

	t.Run("invalid interval", func(t *testing.T) {
		f := newFixture()
		f.store.ValidateIntervalFunc = func(ctx context.Context, s string) error {
			return fmt.Errorf("%w %q: invalid input syntax for type interval", repository.ErrInvalidInterval, s)
		}
		_, err := f.service(Config{}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5, StartDateInterval: "nonsense"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "start-date-interval", verr.Field)
		assert.Contains(t, verr.Error(), `"nonsense"`)
		assert.Zero(t, f.upstreamCalls(), "nothing fetched before validation passes")
	})

	t.Run("store down during validation", func(t *testing.T) {
		f := newFixture()
		f.store.ValidateIntervalFunc = func(ctx context.Context, s string) error { return errors.New("connection refused") }
		_, err := f.service(Config{}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
		require.EqualError(t, err, "validate interval: connection refused")
		var verr *ValidationError
		assert.NotErrorAs(t, err, &verr)
		assert.Zero(t, f.upstreamCalls())
	})
}

func TestService_DashboardAllOrNothing(t *testing.T) {
	f := newFixture()
	upstream := &gateway.UpstreamError{URL: "http://permissions/permissions", StatusCode: http.StatusBadGateway, Message: "down"}
	f.perms.PublicAppIDsFunc = func(ctx context.Context) ([]string, error) { return nil, upstream }

	res, err := f.service(Config{}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
	require.Error(t, err)
	assert.Nil(t, res, "no partial payload")
	var uerr *gateway.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, http.StatusBadGateway, uerr.StatusCode)
	assert.Contains(t, err.Error(), "public app ids: ")
	assert.Empty(t, f.store.PublicAppsCalls(), "dependent queries never start")
}

func TestService_DashboardFailureCancelsSiblings(t *testing.T) {
	f := newFixture()
	var canceled atomic.Bool
	f.store.RunningAnalysesFunc = func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
		<-ctx.Done()
		canceled.Store(true)
		return nil, ctx.Err()
	}
	f.store.RecentAnalysesFunc = func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
		return nil, errors.New("relation jobs does not exist")
	}

	_, err := f.service(Config{UpstreamTimeout: 5 * time.Second}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
	require.EqualError(t, err, "recent analyses: relation jobs does not exist")
	assert.True(t, canceled.Load())
}

func TestService_DashboardTimeout(t *testing.T) {
	f := newFixture()
	f.store.RecentAnalysesFunc = func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	st := time.Now()
	_, err := f.service(Config{UpstreamTimeout: 30 * time.Millisecond}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "recent analyses timed out after 30ms")
	assert.Less(t, time.Since(st), time.Second)
}

func TestService_ChainedCallsGetTheirOwnTimeout(t *testing.T) {
	f := newFixture()
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(60 * time.Millisecond):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.meta.FilterTargetIDsFunc = func(ctx context.Context, username string, targetTypes []string, avus []gateway.AVU, targetIDs []string) ([]string, error) {
		if err := slow(ctx); err != nil {
			return nil, err
		}
		return []string{"42", "1"}, nil
	}
	f.store.PopularFeaturedAppsFunc = func(ctx context.Context, q repository.AppQuery) ([]domain.App, error) {
		if err := slow(ctx); err != nil {
			return nil, err
		}
		return apps("42", "1"), nil
	}
	svc := f.service(Config{UpstreamTimeout: 100 * time.Millisecond})
	req := Request{Username: "alice", Limit: 5}

	t.Run("dashboard", func(t *testing.T) {
		res, err := svc.Dashboard(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"42", "1"}, ids(res.Apps.PopularFeatured))
	})

	t.Run("logged out", func(t *testing.T) {
		res, err := svc.LoggedOut(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"42", "1"}, ids(res.Apps.PopularFeatured))
	})

	t.Run("popular featured", func(t *testing.T) {
		res, err := svc.PopularFeaturedApps(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, []string{"42", "1"}, ids(res))
	})
}

func TestService_DashboardPartialResults(t *testing.T) {
	f := newFixture()
	f.meta.FilterTargetIDsFunc = func(ctx context.Context, username string, targetTypes []string, avus []gateway.AVU, targetIDs []string) ([]string, error) {
		return nil, &gateway.UpstreamError{URL: "http://metadata/avus/filter-targets", StatusCode: 500}
	}
	f.store.RunningAnalysesFunc = func(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
		return nil, errors.New("boom")
	}

	res, err := f.service(Config{PartialResults: true}).Dashboard(context.Background(), Request{Username: "alice", Limit: 5})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotNil(t, res.Apps.PopularFeatured)
	assert.Empty(t, res.Apps.PopularFeatured)
	assert.NotNil(t, res.Analyses.Running)
	assert.Empty(t, res.Analyses.Running)
	assert.Len(t, res.Apps.Public, 3)
	assert.Len(t, res.Analyses.Recent, 2)
	assert.ElementsMatch(t, []string{
		"featured app ids: url http://metadata/avus/filter-targets; status code 500",
		"running analyses: boom",
	}, res.Errors)
}

func TestService_LoggedOut(t *testing.T) {
	f := newFixture()
	res, err := f.service(Config{}).LoggedOut(context.Background(), Request{Username: "alice", Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, Anonymous, f.meta.FilterTargetIDsCalls()[0].Username)
	q := f.store.PopularFeaturedAppsCalls()[0].Q
	assert.Equal(t, Anonymous, q.Username)
	assert.Equal(t, 3, q.Limit)
	assert.Equal(t, "1 year", q.StartDateInterval)
	assertFlags(t, res.Apps.PopularFeatured)
	assert.Len(t, res.Feeds, 3)
	assert.Empty(t, f.store.RecentAnalysesCalls())

	f.perms.PublicAppIDsFunc = func(ctx context.Context) ([]string, error) { return nil, errors.New("no route") }
	_, err = f.service(Config{}).LoggedOut(context.Background(), Request{})
	require.EqualError(t, err, "public app ids: no route")
}

func TestService_SingleLists(t *testing.T) {
	ctx := context.Background()

	t.Run("public apps skip interval validation", func(t *testing.T) {
		f := newFixture()
		res, err := f.service(Config{}).PublicApps(ctx, Request{Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, f.store.ValidateIntervalCalls())
		assert.Equal(t, Anonymous, f.store.PublicAppsCalls()[0].Q.Username)
		assert.Equal(t, []string{"99", "42", "1"}, ids(res))
		assertFlags(t, res)
	})

	t.Run("recently added", func(t *testing.T) {
		f := newFixture()
		res, err := f.service(Config{}).RecentlyAddedApps(ctx, Request{Username: "alice", Limit: 5})
		require.NoError(t, err)
		assertFlags(t, res)
		assert.Equal(t, "alice", f.store.RecentlyAddedAppsCalls()[0].Q.Username)
	})

	t.Run("recently used with custom interval", func(t *testing.T) {
		f := newFixture()
		_, err := f.service(Config{}).RecentlyUsedApps(ctx, Request{Username: "alice", Limit: 5, StartDateInterval: "2 weeks"})
		require.NoError(t, err)
		assert.Equal(t, "2 weeks", f.store.ValidateIntervalCalls()[0].S)
		assert.Equal(t, "2 weeks", f.store.RecentlyUsedAppsCalls()[0].Q.StartDateInterval)
	})

	t.Run("recently ran is anonymous with a week window", func(t *testing.T) {
		f := newFixture()
		res, err := f.service(Config{}).RecentlyRanApps(ctx, Request{Username: "alice", Limit: 5})
		require.NoError(t, err)
		q := f.store.RecentlyRanAppsCalls()[0].Q
		assert.Equal(t, Anonymous, q.Username)
		assert.Equal(t, "1 week", q.StartDateInterval)
		assert.Equal(t, publicIDs, q.AppIDs)
		assertFlags(t, res)
	})

	t.Run("popular featured", func(t *testing.T) {
		f := newFixture()
		res, err := f.service(Config{}).PopularFeaturedApps(ctx, Request{Username: "alice", Limit: 2})
		require.NoError(t, err)
		assertFlags(t, res)
		assert.Equal(t, []string{"42", "1"}, f.store.PopularFeaturedAppsCalls()[0].Q.AppIDs)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture()
		f.store.RecentlyAddedAppsFunc = func(ctx context.Context, q repository.AppQuery) ([]domain.App, error) {
			return nil, errors.New("bad query")
		}
		_, err := f.service(Config{PartialResults: true}).RecentlyAddedApps(ctx, Request{Username: "alice"})
		require.EqualError(t, err, "recently added apps: bad query", "single lists never return partial results")
	})

	t.Run("analyses", func(t *testing.T) {
		f := newFixture()
		recent, err := f.service(Config{}).RecentAnalyses(ctx, Request{Username: "alice", Limit: 5})
		require.NoError(t, err)
		assert.Len(t, recent, 2)
		running, err := f.service(Config{}).RunningAnalyses(ctx, Request{Username: "alice", Limit: 5})
		require.NoError(t, err)
		assert.Len(t, running, 1)
		assert.Empty(t, f.perms.PublicAppIDsCalls())
		assert.Empty(t, f.store.ValidateIntervalCalls())

		_, err = f.service(Config{}).RunningAnalyses(ctx, Request{Username: "alice", Limit: -3})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("feeds", func(t *testing.T) {
		f := newFixture()
		res := f.service(Config{FeedNames: []string{domain.FeedNews}}).Feeds(ctx)
		assert.Len(t, res, 1)
		assert.Equal(t, []string{domain.FeedNews}, f.feeds.SnapshotOfCalls()[0].Names)
	})
}

type appQueryCall = struct {
	Ctx context.Context
	Q   repository.AppQuery
}

func queries(calls []appQueryCall) []repository.AppQuery {
	res := make([]repository.AppQuery, len(calls))
	for i, c := range calls {
		res[i] = c.Q
	}
	return res
}

func ids(apps []domain.App) []string {
	res := make([]string, len(apps))
	for i, a := range apps {
		res[i] = a.ID
	}
	return res
}

func mapKeys(m map[string][]domain.FeedItem) []string {
	res := []string{}
	for _, k := range []string{domain.FeedNews, domain.FeedEvents, domain.FeedVideos, domain.FeedInstantLaunches} {
		if _, ok := m[k]; ok {
			res = append(res, k)
		}
	}
	return res
}
