package gateway

import (
	"context"
	"fmt"

	"github.com/jellydator/ttlcache/v3"
	"github.com/samber/lo"
)

type permission struct {
	ResourceName string `json:"resource_name"`
}

type permissionsResponse struct {
	Permissions []permission `json:"permissions"`
}

type groupResponse struct {
	ID string `json:"id"`
}

// PublicAppIDs returns the IDs of apps granted to the public group. The group ID is cached,
// the permission list is fetched on every call.
func (c *Client) PublicAppIDs(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "PublicAppIDs")
	defer span.End()

	groupID, err := c.publicGroupID(ctx)
	if err != nil {
		return nil, err
	}

	u := c.permissionsURL.JoinPath("permissions", "abbreviated", "subjects", "group", groupID, "app")
	var resp permissionsResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("get public app permissions: %w", err)
	}

	ids := lo.Map(resp.Permissions, func(p permission, _ int) string { return p.ResourceName })
	return lo.Uniq(ids), nil
}

func (c *Client) publicGroupID(ctx context.Context) (string, error) {
	if item := c.groupIDs.Get(c.publicGroup); item != nil {
		return item.Value(), nil
	}

	ctx, span := tracer.Start(ctx, "PublicGroupID")
	defer span.End()

	u := c.groupsURL.JoinPath("groups", c.publicGroup)
	q := u.Query()
	q.Set("user", c.groupsUser)
	u.RawQuery = q.Encode()

	var resp groupResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return "", fmt.Errorf("get public group %q: %w", c.publicGroup, err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("public group %q has no id", c.publicGroup)
	}

	c.groupIDs.Set(c.publicGroup, resp.ID, ttlcache.DefaultTTL)
	return resp.ID, nil
}
