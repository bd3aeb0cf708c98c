// Package placeholder implements the {name} variable syntax used in mail-merge
// templates for subjects and bodies.
//
// A placeholder is a non-empty run of characters between a single pair of
// braces, e.g. {email} or {first_name}. There is no escape mechanism: a
// literal brace in template text is indistinguishable from placeholder
// syntax. This is a documented limitation of the format, not a bug.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/mailmerge/pkg/placeholder"
//
//	out := placeholder.Substitute("Hello {name}!", map[string]string{
//		"name": "Alice",
//	})
//	// Output: "Hello Alice!"
//
//	params := placeholder.Params("Dear {name}, your code is {code}.")
//	// Output: ["name", "code"]
//
// # Substitution Semantics
//
// Substitution is a single left-to-right scan. Replacement values are copied
// verbatim and never re-scanned, so substitution cannot cascade:
//
//	placeholder.Substitute("{a}", map[string]string{"a": "{b}", "b": "X"})
//	// Output: "{b}"
//
// Placeholders without a bound value are left in the output untouched.
// Checking for unbound parameters is the caller's job (see the template
// package's Validate); Substitute itself never fails.
//
// All functions are pure and safe for concurrent use.
package placeholder
