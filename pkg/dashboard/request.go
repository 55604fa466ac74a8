package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/slr71/dashboard-aggregator/pkg/repository"
)

// Anonymous is the username of requests without a user
const Anonymous = "anonymous"

// Request is one dashboard request. Empty Username means anonymous, empty StartDateInterval
// means the configured default.
type Request struct {
	Username          string
	Limit             int
	StartDateInterval string
}

// ValidationError is a rejected request parameter
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseLimit parses the limit query parameter, an empty value gives def
func ParseLimit(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "limit", Message: "invalid row limit"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: "limit", Message: "the row limit may not be negative"}
	}
	return n, nil
}

// validate fills request defaults and rejects bad parameters before any data is fetched.
// The interval is checked only when defInterval is set, i.e. when the operation uses one.
func (s *Service) validate(ctx context.Context, req Request, defInterval string) (Request, error) {
	if req.Username == "" {
		req.Username = Anonymous
	}
	if req.Limit < 0 {
		return req, &ValidationError{Field: "limit", Message: "the row limit may not be negative"}
	}
	if defInterval == "" {
		return req, nil
	}
	if req.StartDateInterval == "" {
		req.StartDateInterval = defInterval
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.UpstreamTimeout)
	defer cancel()
	if err := s.store.ValidateInterval(ctx, req.StartDateInterval); err != nil {
		if errors.Is(err, repository.ErrInvalidInterval) {
			return req, &ValidationError{Field: "start-date-interval", Message: err.Error()}
		}
		return req, fmt.Errorf("validate interval: %w", err)
	}
	return req, nil
}
