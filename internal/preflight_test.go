package internal

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/mx"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

type fakeResolver struct {
	mx    map[string][]*net.MX
	hosts map[string][]string
}

func (f *fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if recs, ok := f.mx[name]; ok {
		return recs, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func (f *fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	if hosts, ok := f.hosts[host]; ok {
		return hosts, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

func TestPreflight_Healthy(t *testing.T) {
	t.Parallel()

	verifier := mx.NewVerifierWithResolver(&fakeResolver{
		mx: map[string][]*net.MX{"example.com": {{Host: "mail.example.com", Pref: 10}}},
	})

	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(testRoster(t, "ann@example.com")),
		WithSender(&probeSender{}),
		WithMXVerification(verifier),
	)
	require.NoError(t, err)
	require.NoError(t, c.Preflight(context.Background()))
}

func TestPreflight_EmptyRoster(t *testing.T) {
	t.Parallel()

	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(roster.New()),
		WithSender(&recordSender{}),
	)
	require.NoError(t, err)

	err = c.Preflight(context.Background())
	require.ErrorIs(t, err, ErrPreflightFailed)
	require.Contains(t, err.Error(), "roster")
}

func TestPreflight_UnresolvedPlaceholder(t *testing.T) {
	t.Parallel()

	c, err := New(
		WithTemplate(template.New("Hi {name}", "Code: {coupon}")),
		WithRoster(testRoster(t, "ann@example.com")),
		WithSender(&recordSender{}),
	)
	require.NoError(t, err)

	err = c.Preflight(context.Background())
	require.ErrorIs(t, err, ErrPreflightFailed)
	require.Contains(t, err.Error(), "template")
	require.Contains(t, err.Error(), "coupon")
}

func TestPreflight_ProviderDown(t *testing.T) {
	t.Parallel()

	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(testRoster(t, "ann@example.com")),
		WithSender(&probeSender{healthErr: errors.New("relay unreachable")}),
	)
	require.NoError(t, err)

	err = c.Preflight(context.Background())
	require.ErrorIs(t, err, ErrPreflightFailed)
	require.Contains(t, err.Error(), "provider")
	require.Contains(t, err.Error(), "relay unreachable")
}

func TestPreflight_DeadDomain(t *testing.T) {
	t.Parallel()

	verifier := mx.NewVerifierWithResolver(&fakeResolver{})

	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(testRoster(t, "ann@nowhere.invalid")),
		WithSender(&recordSender{}),
		WithMXVerification(verifier),
	)
	require.NoError(t, err)

	err = c.Preflight(context.Background())
	require.ErrorIs(t, err, ErrPreflightFailed)
	require.Contains(t, err.Error(), "mx")
	require.Contains(t, err.Error(), "nowhere.invalid")
}

func TestChecks_OptionalEntries(t *testing.T) {
	t.Parallel()

	plain, err := New(
		WithTemplate(testTemplate()),
		WithRoster(testRoster(t, "ann@example.com")),
		WithSender(&recordSender{}),
	)
	require.NoError(t, err)

	checks := plain.Checks()
	require.Contains(t, checks, "template")
	require.Contains(t, checks, "roster")
	require.NotContains(t, checks, "provider")
	require.NotContains(t, checks, "mx")

	full, err := New(
		WithTemplate(testTemplate()),
		WithRoster(testRoster(t, "ann@example.com")),
		WithSender(&probeSender{}),
		WithMXVerification(mx.NewVerifierWithResolver(&fakeResolver{})),
	)
	require.NoError(t, err)

	checks = full.Checks()
	require.Contains(t, checks, "provider")
	require.Contains(t, checks, "mx")
}
