package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/slr71/dashboard-aggregator/pkg/dashboard"
	"github.com/slr71/dashboard-aggregator/pkg/repository"
	"github.com/slr71/dashboard-aggregator/pkg/scheduler"
)

// request builds a dashboard request from the query parameters
func (s *Server) request(r *http.Request, username string) (dashboard.Request, error) {
	q := r.URL.Query()
	limit, err := dashboard.ParseLimit(q.Get("limit"), s.config.GetDefaultLimit())
	if err != nil {
		return dashboard.Request{}, err
	}
	return dashboard.Request{Username: username, Limit: limit, StartDateInterval: q.Get("start-date-interval")}, nil
}

// loggedOutHandler returns the anonymous landing payload
func (s *Server) loggedOutHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.request(r, "")
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	res, err := s.agg.LoggedOut(r.Context(), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// healthHandler reports the latest applied schema version
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	version, err := s.health.SchemaVersion(r.Context())
	if err != nil {
		if !errors.Is(err, repository.ErrNoVersion) {
			lgr.Printf("[WARN] health check failed: %v", err)
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"version": version})
}

// feedsHandler returns snapshots of the public feeds
func (s *Server) feedsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.agg.Feeds(r.Context()))
}

// userDashboardHandler returns the full dashboard of a user
func (s *Server) userDashboardHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.request(r, r.PathValue("username"))
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	res, err := s.agg.Dashboard(r.Context(), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// userAppsHandler returns one app list of a user
func (s *Server) userAppsHandler(w http.ResponseWriter, r *http.Request) {
	list := map[string]func(*http.Request, dashboard.Request) (any, error){
		"public": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.PublicApps(r.Context(), req)
		},
		"recently-added": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.RecentlyAddedApps(r.Context(), req)
		},
		"recently-used": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.RecentlyUsedApps(r.Context(), req)
		},
		"popular-featured": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.PopularFeaturedApps(r.Context(), req)
		},
	}
	s.renderList(w, r, "apps", list, r.PathValue("username"))
}

// userAnalysesHandler returns one analysis list of a user
func (s *Server) userAnalysesHandler(w http.ResponseWriter, r *http.Request) {
	list := map[string]func(*http.Request, dashboard.Request) (any, error){
		"recent": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.RecentAnalyses(r.Context(), req)
		},
		"running": func(r *http.Request, req dashboard.Request) (any, error) {
			return s.agg.RunningAnalyses(r.Context(), req)
		},
	}
	s.renderList(w, r, "analyses", list, r.PathValue("username"))
}

// publicAppsHandler returns public apps without favorites
func (s *Server) publicAppsHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.request(r, "")
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	apps, err := s.agg.PublicApps(r.Context(), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"apps": apps})
}

// recentlyRanAppsHandler returns public apps anyone ran recently
func (s *Server) recentlyRanAppsHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.request(r, "")
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	apps, err := s.agg.RecentlyRanApps(r.Context(), req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"apps": apps})
}

// statusHandler returns server status with feed cache counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"feeds":   s.feeds.Stats(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// refreshFeedHandler refreshes one feed outside its schedule
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.scheduler.RefreshNow(r.Context(), name); err != nil {
		if errors.Is(err, scheduler.ErrUnknownFeed) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		lgr.Printf("[WARN] on-demand refresh of %s failed: %v", name, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "refreshed", "feed": name})
}

// renderList runs the list named by the kind path value and renders it under key
func (s *Server) renderList(w http.ResponseWriter, r *http.Request, key string,
	lists map[string]func(*http.Request, dashboard.Request) (any, error), username string) {
	kind := r.PathValue("kind")
	list, ok := lists[kind]
	if !ok {
		renderError(w, r, fmt.Errorf("unknown %s list %q", key, kind), http.StatusNotFound)
		return
	}
	req, err := s.request(r, username)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	res, err := list(r, req)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{key: res})
}
