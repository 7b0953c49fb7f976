package validate

import "github.com/zcrt/zcrt/zcerr"

// Issue is one validator finding, tagged with the zcerr.Kind it would
// surface as if promoted to a hard failure — reusing the same closed
// taxonomy the rest of the engine uses for errors instead of inventing a
// parallel one for the validator.
type Issue struct {
	Kind    zcerr.Kind
	Field   string
	Message string
}

// ValidationResult is ValidateSchema's return value: a schema is valid
// iff Errors is empty, regardless of how many Warnings it carries.
type ValidationResult struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the schema has no errors.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// CompatibilityResult is CheckCompatibility's return value.
type CompatibilityResult struct {
	Errors   []Issue
	Warnings []Issue
}

// Compatible reports whether new is a compatible evolution of old.
func (r CompatibilityResult) Compatible() bool {
	return len(r.Errors) == 0
}
