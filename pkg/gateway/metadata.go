package gateway

import (
	"context"
	"fmt"
)

// AVU is an attribute/value pair used to filter metadata targets
type AVU struct {
	Attr  string `json:"attr"`
	Value string `json:"value"`
}

type filterTargetsRequest struct {
	TargetTypes []string `json:"target-types"`
	TargetIDs   []string `json:"target-ids"`
	AVUs        []AVU    `json:"avus"`
}

type filterTargetsResponse struct {
	TargetIDs []string `json:"target-ids"`
}

// FilterTargetIDs returns the subset of targetIDs carrying any of the avus
func (c *Client) FilterTargetIDs(ctx context.Context, username string, targetTypes []string, avus []AVU, targetIDs []string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "FilterTargetIDs")
	defer span.End()

	if len(targetIDs) == 0 {
		return []string{}, nil
	}

	u := c.metadataURL.JoinPath("avus", "filter-targets")
	q := u.Query()
	q.Set("user", fixUsername(username))
	u.RawQuery = q.Encode()

	req := filterTargetsRequest{TargetTypes: targetTypes, TargetIDs: targetIDs, AVUs: avus}
	var resp filterTargetsResponse
	if err := c.postJSON(ctx, u, req, &resp); err != nil {
		return nil, fmt.Errorf("filter metadata targets: %w", err)
	}
	if resp.TargetIDs == nil {
		return []string{}, nil
	}
	return resp.TargetIDs, nil
}
