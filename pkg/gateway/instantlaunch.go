package gateway

import (
	"context"
	"fmt"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// InstantLaunches returns the instant launches tagged for the dashboard
func (c *Client) InstantLaunches(ctx context.Context) ([]domain.InstantLaunch, error) {
	ctx, span := tracer.Start(ctx, "InstantLaunches")
	defer span.End()

	u := c.appExposerURL.JoinPath("instantlaunches", "metadata", "full")
	q := u.Query()
	q.Set("user", c.appExposerUser)
	q.Set("attribute", "ui_location")
	q.Set("value", "dashboard")
	u.RawQuery = q.Encode()

	res := []domain.InstantLaunch{}
	if err := c.getJSON(ctx, u, &res); err != nil {
		return nil, fmt.Errorf("get instant launches: %w", err)
	}
	return res, nil
}
