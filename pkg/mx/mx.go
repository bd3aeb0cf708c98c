package mx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrInvalidDomain = errors.New("invalid domain")
	ErrLookupFailed  = errors.New("dns lookup failed")
	ErrNoMailServer  = errors.New("domain has no mail server")
)

// Resolver is the subset of net.Resolver used for verification.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Verifier checks domains for mail servers.
type Verifier struct {
	resolver Resolver
}

// NewVerifier creates a verifier backed by the default system resolver.
func NewVerifier() *Verifier {
	return &Verifier{resolver: &net.Resolver{}}
}

// NewVerifierWithResolver creates a verifier with a custom resolver.
func NewVerifierWithResolver(r Resolver) *Verifier {
	return &Verifier{resolver: r}
}

// VerifyDomain checks that the domain resolves MX records, falling back to
// an address lookup for implicit-MX domains.
func (v *Verifier) VerifyDomain(ctx context.Context, domain string) error {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ErrInvalidDomain
	}

	records, err := v.resolver.LookupMX(ctx, domain)
	if err == nil && len(records) > 0 {
		return nil
	}
	if err != nil {
		var dnsErr *net.DNSError
		if !errors.As(err, &dnsErr) || !dnsErr.IsNotFound {
			return fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}
	}

	// Implicit MX: an address record alone accepts mail.
	if _, err := v.resolver.LookupHost(ctx, domain); err != nil {
		return fmt.Errorf("%w: %s", ErrNoMailServer, domain)
	}
	return nil
}

// VerifyDomains checks every domain and joins the failures, so one report
// covers the whole roster.
func (v *Verifier) VerifyDomains(ctx context.Context, domains []string) error {
	var errs []error
	for _, domain := range domains {
		if err := v.VerifyDomain(ctx, domain); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
