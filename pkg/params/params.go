package params

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// System parameter identifiers, always present and sourced from the
// recipient's built-in fields rather than roster columns.
const (
	IdentEmail = "email"
	IdentName  = "name"
)

// Param describes one placeholder parameter.
type Param struct {
	Label  string // human-facing label, e.g. "Company"
	Ident  string // placeholder identifier, e.g. "company"
	System bool   // built-in, not removable
}

// Registry holds the parameters available to a campaign: the system
// parameters followed by custom ones in insertion order.
type Registry struct {
	params []Param
	lower  map[string]struct{} // lowercased identifiers, for uniqueness
}

// NewRegistry creates a registry seeded with the system parameters.
func NewRegistry() *Registry {
	r := &Registry{
		lower: make(map[string]struct{}, 2),
	}
	r.params = append(r.params,
		Param{Label: "Email", Ident: IdentEmail, System: true},
		Param{Label: "Name", Ident: IdentName, System: true},
	)
	r.lower[IdentEmail] = struct{}{}
	r.lower[IdentName] = struct{}{}
	return r
}

// Add registers a custom parameter. The identifier must be non-empty,
// consist of letters, digits, or underscores, and not collide
// (case-insensitively) with any registered identifier.
func (r *Registry) Add(label, ident string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if ident == "" {
		return ErrEmptyIdentifier
	}
	for _, c := range ident {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident)
		}
	}
	if _, exists := r.lower[strings.ToLower(ident)]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateIdentifier, ident)
	}

	r.params = append(r.params, Param{Label: label, Ident: ident})
	r.lower[strings.ToLower(ident)] = struct{}{}
	return nil
}

// Remove deletes a custom parameter by identifier. System parameters
// refuse removal.
func (r *Registry) Remove(ident string) error {
	for i, p := range r.params {
		if p.Ident != ident {
			continue
		}
		if p.System {
			return fmt.Errorf("%w: %q", ErrSystemParam, ident)
		}
		r.params = slices.Delete(r.params, i, i+1)
		delete(r.lower, strings.ToLower(ident))
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotFound, ident)
}

// Params returns all parameters, system first, customs in insertion order.
func (r *Registry) Params() []Param {
	return slices.Clone(r.params)
}

// Identifiers returns all identifiers in display order.
func (r *Registry) Identifiers() []string {
	idents := make([]string, len(r.params))
	for i, p := range r.params {
		idents[i] = p.Ident
	}
	return idents
}

// Customs returns the custom parameters only, in insertion order.
func (r *Registry) Customs() []Param {
	var customs []Param
	for _, p := range r.params {
		if !p.System {
			customs = append(customs, p)
		}
	}
	return customs
}

// Has reports whether the exact identifier is registered. Placeholder
// matching is case-sensitive; only registration uniqueness is not.
func (r *Registry) Has(ident string) bool {
	return slices.ContainsFunc(r.params, func(p Param) bool { return p.Ident == ident })
}

// Resolve builds the substitution variables for one recipient: the system
// parameters from email and name, and every custom parameter from the
// custom values, defaulting to the empty string when absent.
func (r *Registry) Resolve(email, name string, custom map[string]string) map[string]string {
	vars := make(map[string]string, len(r.params))
	vars[IdentEmail] = email
	vars[IdentName] = name
	for _, p := range r.params {
		if p.System {
			continue
		}
		vars[p.Ident] = custom[p.Ident]
	}
	return vars
}
