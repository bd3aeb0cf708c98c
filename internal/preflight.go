package internal

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/mailmerge/pkg/health"
)

// Healthchecker is implemented by senders that can probe their provider
// without delivering anything.
type Healthchecker interface {
	Healthcheck() func(context.Context) error
}

// Checks assembles the campaign's preflight health checks: template
// placeholders resolve, the roster is non-empty, the provider answers,
// and (when MX verification is enabled) every recipient domain accepts
// mail. The same map can back a readiness endpoint.
func (c *Campaign) Checks() health.Checks {
	checks := health.Checks{
		"template": func(context.Context) error {
			return c.Validate()
		},
		"roster": func(context.Context) error {
			if c.roster.Len() == 0 {
				return ErrEmptyRoster
			}
			return nil
		},
	}

	if hc, ok := c.sender.(Healthchecker); ok {
		checks["provider"] = hc.Healthcheck()
	}
	if c.verifier != nil {
		checks["mx"] = func(ctx context.Context) error {
			return c.verifier.VerifyDomains(ctx, c.roster.Domains())
		}
	}

	return checks
}

// Preflight runs all checks and refuses the campaign on any failure.
func (c *Campaign) Preflight(ctx context.Context) error {
	resp := health.Run(ctx, c.Checks(), health.WithLogger(c.logger))
	if resp.Healthy() {
		return nil
	}

	var failed []string
	for name, check := range resp.Checks {
		if check.Status == health.StatusUnhealthy {
			failed = append(failed, fmt.Sprintf("%s: %s", name, check.Error))
		}
	}
	slices.Sort(failed)
	return fmt.Errorf("%w: %s", ErrPreflightFailed, strings.Join(failed, "; "))
}
