package repository

import (
	"context"
	"fmt"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

const analysisColumns = `
	j.id,
	COALESCE(j.job_name, '') AS name,
	COALESCE(j.job_description, '') AS description,
	COALESCE(j.app_id, '') AS app_id,
	COALESCE(j.app_name, '') AS app_name,
	COALESCE(j.app_description, '') AS app_description,
	COALESCE(j.result_folder_path, '') AS result_folder_path,
	j.start_date,
	j.end_date,
	j.planned_end_date,
	j.status,
	j.subdomain,
	j.parent_id,
	u.username`

const recentAnalysesQuery = `SELECT` + analysisColumns + `
	FROM jobs j
	JOIN users u ON j.user_id = u.id
	WHERE j.deleted = false
	AND u.username = $1
	ORDER BY j.start_date DESC
	LIMIT $2`

const analysesByStatusQuery = `SELECT` + analysisColumns + `
	FROM jobs j
	JOIN users u ON j.user_id = u.id
	WHERE j.deleted = false
	AND u.username = $1
	AND j.status = $3
	ORDER BY j.start_date DESC
	LIMIT $2`

// RecentAnalyses returns the user's analyses, latest start first
func (r *Repository) RecentAnalyses(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
	return r.selectAnalyses(ctx, "recent analyses", recentAnalysesQuery, username, limit)
}

// RunningAnalyses returns the user's running analyses, latest start first
func (r *Repository) RunningAnalyses(ctx context.Context, username string, limit int) ([]domain.Analysis, error) {
	return r.selectAnalyses(ctx, "running analyses", analysesByStatusQuery, username, limit, domain.AnalysisStatusRunning)
}

func (r *Repository) selectAnalyses(ctx context.Context, what, query string, args ...any) ([]domain.Analysis, error) {
	res := []domain.Analysis{}
	if err := r.db.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("get %s: %w", what, err)
	}
	return res, nil
}
