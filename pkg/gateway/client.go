// Package gateway implements clients of the upstream HTTP services: permissions, groups,
// metadata filter and the instant launch directory.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

const tracerName = "github.com/slr71/dashboard-aggregator/pkg/gateway"

var tracer = otel.Tracer(tracerName)

// Config is the set of upstream endpoints
type Config struct {
	PermissionsURL string
	GroupsURL      string
	GroupsUser     string
	PublicGroup    string
	GroupCacheTTL  time.Duration
	MetadataURL    string
	AppExposerURL  string
	AppExposerUser string
	Timeout        time.Duration
}

// Client calls the upstream services. Safe for concurrent use.
type Client struct {
	http           *http.Client
	permissionsURL *url.URL
	groupsURL      *url.URL
	metadataURL    *url.URL
	appExposerURL  *url.URL
	groupsUser     string
	publicGroup    string
	appExposerUser string
	groupIDs       *ttlcache.Cache[string, string]
}

// UpstreamError is a non-2xx response from an upstream service
type UpstreamError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("url %s; status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("url %s; status code %d; msg %s", e.URL, e.StatusCode, e.Message)
}

// New makes a client for the configured endpoints
func New(cfg Config) (*Client, error) {
	res := &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		groupsUser:     cfg.GroupsUser,
		publicGroup:    cfg.PublicGroup,
		appExposerUser: cfg.AppExposerUser,
	}

	var err error
	for _, u := range []struct {
		name string
		raw  string
		dst  **url.URL
	}{
		{"permissions", cfg.PermissionsURL, &res.permissionsURL},
		{"groups", cfg.GroupsURL, &res.groupsURL},
		{"metadata", cfg.MetadataURL, &res.metadataURL},
		{"app-exposer", cfg.AppExposerURL, &res.appExposerURL},
	} {
		if *u.dst, err = url.Parse(u.raw); err != nil {
			return nil, fmt.Errorf("parse %s url: %w", u.name, err)
		}
	}

	ttl := cfg.GroupCacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	res.groupIDs = ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	return res, nil
}

// fixUsername drops the domain suffix, upstream services know users by short name
func fixUsername(username string) string {
	name, _, _ := strings.Cut(username, "@")
	return name
}

func (c *Client) getJSON(ctx context.Context, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, u *url.URL, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL.Redacted(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{URL: req.URL.Redacted(), StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Redacted(), err)
	}
	return nil
}
