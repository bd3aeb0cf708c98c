package roster

import (
	"fmt"
	"maps"
	"net/mail"
	"slices"
	"strings"
)

// Recipient is one roster entry. Custom values are keyed by custom
// parameter identifier (lowercased CSV header).
type Recipient struct {
	Email  string
	Name   string
	Custom map[string]string
	Status Status
}

// Domain returns the part of the email after the last @.
func (r Recipient) Domain() string {
	if at := strings.LastIndexByte(r.Email, '@'); at >= 0 {
		return r.Email[at+1:]
	}
	return ""
}

// Roster is an ordered in-memory recipient list.
type Roster struct {
	recipients []Recipient
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Add appends a recipient after validating the email address. The address
// must be a bare address, not a "Name <addr>" form. Duplicates are allowed.
func (r *Roster) Add(email, name string, custom map[string]string) error {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	r.recipients = append(r.recipients, Recipient{
		Email:  email,
		Name:   strings.TrimSpace(name),
		Custom: custom,
		Status: StatusPending,
	})
	return nil
}

// Len returns the number of recipients.
func (r *Roster) Len() int {
	return len(r.recipients)
}

// At returns the recipient at index i.
func (r *Roster) At(i int) Recipient {
	return r.recipients[i]
}

// SetStatus updates the delivery status of the recipient at index i.
func (r *Roster) SetStatus(i int, s Status) {
	r.recipients[i].Status = s
}

// ResetStatuses returns every recipient to pending, e.g. before a
// scheduled re-run.
func (r *Roster) ResetStatuses() {
	for i := range r.recipients {
		r.recipients[i].Status = StatusPending
	}
}

// All returns a copy of the recipient list.
func (r *Roster) All() []Recipient {
	return slices.Clone(r.recipients)
}

// CountByStatus tallies recipients per status.
func (r *Roster) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, rec := range r.recipients {
		counts[rec.Status]++
	}
	return counts
}

// Customs returns the custom value identifiers present across all
// recipients, sorted. Useful as the column list for ExportCSV.
func (r *Roster) Customs() []string {
	seen := make(map[string]struct{})
	for _, rec := range r.recipients {
		for k := range rec.Custom {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Domains returns the unique recipient domains in first-appearance order.
func (r *Roster) Domains() []string {
	seen := make(map[string]struct{}, len(r.recipients))
	var domains []string
	for _, rec := range r.recipients {
		d := rec.Domain()
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		domains = append(domains, d)
	}
	return domains
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidEmail)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if addr.Address != email {
		// "Name <addr>" forms are display strings, not addresses.
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
