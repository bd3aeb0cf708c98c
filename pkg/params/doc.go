// Package params manages the set of placeholder parameters available to a
// campaign: the built-in system parameters (email, name) plus user-defined
// custom parameters backed by roster columns.
//
// A parameter has a display label and a placeholder identifier. Identifiers
// must be non-empty, consist of letters, digits, or underscores, and be
// unique case-insensitively across system and custom parameters alike.
// System parameters cannot be removed.
//
//	reg := params.NewRegistry()
//	if err := reg.Add("Company", "company"); err != nil { ... }
//	reg.Identifiers() // ["email", "name", "company"]
//
// A Registry is plain dependency-injected state with no package-level
// globals; create one per campaign.
package params
