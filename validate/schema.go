package validate

import (
	"fmt"

	"github.com/zcrt/zcrt/internal/collision"
	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

const nestedStructWarning = "nested-struct field cannot be deep-validated without a schema registry; see ValidateSchemaFamily"

// ValidateSchema checks s against its own intra-schema invariants (field
// name uniqueness, version bounds, lifecycle ordering) and returns every
// violation found rather than stopping at the first one.
func ValidateSchema(s *schema.Schema) ValidationResult {
	var result ValidationResult

	if s.Version < 1 {
		result.Errors = append(result.Errors, Issue{
			Kind:    zcerr.KindInvalidSchema,
			Message: fmt.Sprintf("schema version must be >= 1, got %d", s.Version),
		})
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Message: "field name must not be empty",
			})
			continue
		}

		if seen[f.Name] {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   f.Name,
				Message: "duplicate field name",
			})
		}
		seen[f.Name] = true

		if f.AddedInVersion > s.Version {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   f.Name,
				Message: fmt.Sprintf("added_in_version %d exceeds schema version %d", f.AddedInVersion, s.Version),
			})
		}

		if f.RemovedInVersion != 0 && f.RemovedInVersion <= f.AddedInVersion {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   f.Name,
				Message: "removed_in_version must be greater than added_in_version",
			})
		}

		if !f.Required && !f.HasDefault {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   f.Name,
				Message: "optional field has no declared default",
			})
		}

		if f.Type == tag.Struct {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   f.Name,
				Message: nestedStructWarning,
			})
		}
	}

	return result
}

// ValidateSchemaFamily extends ValidateSchema with a circular-reference-safe
// descent through nested-struct fields: registry resolves a nested-struct
// field's name to the Schema describing it. Re-entering a (name, version)
// pair already on the descent path fails with InvalidSchema. A
// nested-struct field with no entry in registry falls back to
// ValidateSchema's warning instead of erroring, since resolution requires
// an external registry that the caller may not have built yet.
func ValidateSchemaFamily(root *schema.Schema, registry map[string]*schema.Schema) ValidationResult {
	var result ValidationResult
	visited := make(map[string]bool)
	fingerprints := collision.NewTracker()

	var descend func(s *schema.Schema)
	descend = func(s *schema.Schema) {
		key := fmt.Sprintf("%s@%d", s.Name, s.Version)
		if visited[key] {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   s.Name,
				Message: "circular nested-schema reference detected",
			})
			return
		}
		visited[key] = true
		defer delete(visited, key) // only the current descent path counts as an ancestor

		if fingerprints.Track(s.Name, s.Fingerprint()) {
			result.Warnings = append(result.Warnings, Issue{
				Kind:    zcerr.KindInvalidSchema,
				Field:   s.Name,
				Message: "schema fingerprint collides with another schema in this family",
			})
		}

		sub := ValidateSchema(s)
		result.Errors = append(result.Errors, sub.Errors...)
		for _, w := range sub.Warnings {
			if w.Kind == zcerr.KindInvalidSchema && w.Message == nestedStructWarning {
				continue // superseded by this function's own registry-aware check below
			}
			result.Warnings = append(result.Warnings, w)
		}

		for _, f := range s.Fields {
			if f.Type != tag.Struct {
				continue
			}

			nested, ok := registry[f.Name]
			if !ok {
				result.Warnings = append(result.Warnings, Issue{
					Kind:    zcerr.KindInvalidSchema,
					Field:   f.Name,
					Message: "nested-struct field not resolvable in the supplied registry",
				})
				continue
			}

			descend(nested)
		}
	}

	descend(root)

	return result
}
