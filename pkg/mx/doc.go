// Package mx checks that recipient domains can actually receive mail by
// resolving their MX records.
//
// This is a cheap preflight for bulk sends: a roster full of typo'd domains
// is caught before the first SMTP connection. Per RFC 5321, a domain
// without MX records but with an address record still accepts mail
// (implicit MX), so the check falls back to a host lookup.
//
//	v := mx.NewVerifier()
//	if err := v.VerifyDomain(ctx, "example.com"); err != nil {
//		// domain cannot receive mail
//	}
//
// Errors distinguish a failed lookup (ErrLookupFailed, usually transient)
// from a domain that positively has no mail server (ErrNoMailServer).
package mx
