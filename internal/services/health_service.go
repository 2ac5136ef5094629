package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

const healthTimeout = 2 * time.Second

// Check is one dependency probe, e.g. pgxpool.Pool.Ping.
type Check func(ctx context.Context) error

type HealthService struct {
	checks map[string]Check
}

func NewHealthService(checks map[string]Check) *HealthService {
	return &HealthService{checks: checks}
}

// Check runs every probe and joins the failures.
func (h *HealthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for n := range h.checks {
		names = append(names, n)
	}
	sort.Strings(names)

	var errs []error
	for _, n := range names {
		if err := h.checks[n](ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n, err))
		}
	}
	return errors.Join(errs...)
}
