package feed

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// InstantLaunchLister returns the instant launches shown on the dashboard
type InstantLaunchLister interface {
	InstantLaunches(ctx context.Context) ([]domain.InstantLaunch, error)
}

// NewInstantLaunchSource makes a source over the instant launch directory
func NewInstantLaunchSource(name string, lister InstantLaunchLister) Source {
	return Strategy[[]domain.InstantLaunch]{
		Label:     name,
		FetchRaw:  lister.InstantLaunches,
		Transform: instantLaunchItems,
	}
}

func instantLaunchItems(ils []domain.InstantLaunch) []domain.FeedItem {
	return lo.Map(ils, func(il domain.InstantLaunch, _ int) domain.FeedItem {
		return domain.FeedItem{
			ID:              il.ID,
			Name:            lo.CoalesceOrEmpty(il.QuickLaunchName, il.AppName),
			Description:     lo.CoalesceOrEmpty(il.QuickLaunchDescription, il.AppDescription),
			QuickLaunchID:   il.QuickLaunchID,
			Author:          il.AddedBy,
			PublicationDate: parseTime(il.AddedOn),
		}
	})
}

// parseTime accepts the timestamp layouts the directory is known to return, zero time otherwise
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999-07", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
