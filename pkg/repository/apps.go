package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// AppQuery holds parameters shared by the app listing queries. Not every query uses every field.
type AppQuery struct {
	Username          string
	FavoritesIndex    int
	AppIDs            []string
	StartDateInterval string
	Limit             int
}

// appColumns selects the domain.App fields. $1 is the username and $2 the favorites
// category index used by the is_favorite check.
const appColumns = `
	a.id,
	'de' AS system_id,
	a.name,
	COALESCE(a.description, '') AS description,
	a.wiki_url,
	a.integration_date,
	a.edited_date,
	COALESCE(a.integrator_username, '') AS username,
	EXISTS (
		SELECT 1 FROM users fu
		JOIN workspace w ON fu.id = w.user_id
		JOIN app_category_group acg ON w.root_category_id = acg.parent_category_id
		JOIN app_category_app aca ON acg.child_category_id = aca.app_category_id
		WHERE fu.username = $1
		AND acg.child_index = $2
		AND aca.app_id = a.id
	) AS is_favorite`

const appGroupBy = `
	GROUP BY a.id, a.name, a.description, a.wiki_url, a.integration_date, a.edited_date, a.integrator_username`

const publicAppsQuery = `SELECT` + appColumns + `
	FROM app_listing a
	WHERE a.id = ANY(CAST($3 AS uuid[]))
	AND NOT a.deleted
	AND NOT a.disabled
	AND a.integration_date IS NOT NULL
	ORDER BY a.integration_date DESC
	LIMIT $4`

const recentlyAddedAppsQuery = `SELECT` + appColumns + `
	FROM app_listing a
	WHERE a.integrator_username = $1
	AND NOT a.deleted
	AND NOT a.disabled
	ORDER BY a.integration_date DESC NULLS LAST
	LIMIT $3`

const recentlyUsedAppsQuery = `SELECT` + appColumns + `
	FROM jobs j
	JOIN users u ON j.user_id = u.id
	JOIN app_listing a ON CAST(a.id AS text) = j.app_id
	WHERE u.username = $1
	AND NOT a.deleted
	AND NOT a.disabled
	AND j.start_date > now() - CAST($3 AS interval)` + appGroupBy + `
	ORDER BY max(j.start_date) DESC
	LIMIT $4`

const recentlyRanAppsQuery = `SELECT` + appColumns + `
	FROM jobs j
	JOIN app_listing a ON CAST(a.id AS text) = j.app_id
	WHERE a.id = ANY(CAST($3 AS uuid[]))
	AND NOT a.deleted
	AND NOT a.disabled
	AND j.start_date > now() - CAST($4 AS interval)` + appGroupBy + `
	ORDER BY max(j.start_date) DESC
	LIMIT $5`

const popularFeaturedAppsQuery = `SELECT` + appColumns + `,
	count(j.id) AS job_count
	FROM app_listing a
	LEFT JOIN jobs j ON j.app_id = CAST(a.id AS text)
		AND j.start_date >= now() - CAST($4 AS interval)
	WHERE a.id = ANY(CAST($3 AS uuid[]))
	AND NOT a.deleted
	AND NOT a.disabled
	AND a.integration_date IS NOT NULL` + appGroupBy + `
	ORDER BY job_count DESC, a.name
	LIMIT $5`

// PublicApps returns apps from q.AppIDs, newest integration first
func (r *Repository) PublicApps(ctx context.Context, q AppQuery) ([]domain.App, error) {
	return r.selectApps(ctx, "public apps", publicAppsQuery,
		q.Username, q.FavoritesIndex, appIDs(q.AppIDs), q.Limit)
}

// RecentlyAddedApps returns apps integrated by q.Username, newest first
func (r *Repository) RecentlyAddedApps(ctx context.Context, q AppQuery) ([]domain.App, error) {
	return r.selectApps(ctx, "recently added apps", recentlyAddedAppsQuery,
		q.Username, q.FavoritesIndex, q.Limit)
}

// RecentlyUsedApps returns apps q.Username ran within q.StartDateInterval, most recent run first
func (r *Repository) RecentlyUsedApps(ctx context.Context, q AppQuery) ([]domain.App, error) {
	return r.selectApps(ctx, "recently used apps", recentlyUsedAppsQuery,
		q.Username, q.FavoritesIndex, q.StartDateInterval, q.Limit)
}

// RecentlyRanApps returns apps from q.AppIDs anyone ran within q.StartDateInterval, most recent run first
func (r *Repository) RecentlyRanApps(ctx context.Context, q AppQuery) ([]domain.App, error) {
	return r.selectApps(ctx, "recently ran apps", recentlyRanAppsQuery,
		q.Username, q.FavoritesIndex, appIDs(q.AppIDs), q.StartDateInterval, q.Limit)
}

// PopularFeaturedApps returns apps from q.AppIDs ordered by the number of jobs started within
// q.StartDateInterval
func (r *Repository) PopularFeaturedApps(ctx context.Context, q AppQuery) ([]domain.App, error) {
	return r.selectApps(ctx, "popular featured apps", popularFeaturedAppsQuery,
		q.Username, q.FavoritesIndex, appIDs(q.AppIDs), q.StartDateInterval, q.Limit)
}

func (r *Repository) selectApps(ctx context.Context, what, query string, args ...any) ([]domain.App, error) {
	apps := []domain.App{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("get %s: %w", what, err)
	}
	return apps, nil
}

// appIDs keeps the IDs the uuid[] cast accepts. Permissions may list resources of other systems
// which can't match an app_listing row anyway.
func appIDs(ids []string) []string {
	return lo.Filter(ids, func(id string, _ int) bool { return uuid.Validate(id) == nil })
}
