package validate

import (
	"fmt"

	"github.com/zcrt/zcrt/schema"
	"github.com/zcrt/zcrt/tag"
	"github.com/zcrt/zcrt/zcerr"
)

// CheckCompatibility compares old against newer's declared fields under the
// TypeTag widening lattice and reports every violation rather than
// stopping at the first one.
func CheckCompatibility(old, newer *schema.Schema) CompatibilityResult {
	var result CompatibilityResult

	if old.Name != newer.Name {
		result.Errors = append(result.Errors, Issue{
			Kind:    zcerr.KindIncompatibleSchema,
			Message: fmt.Sprintf("schema name mismatch: %q vs %q", old.Name, newer.Name),
		})
	}

	if newer.Version <= old.Version {
		result.Warnings = append(result.Warnings, Issue{
			Kind:    zcerr.KindSchemaVersionMismatch,
			Message: fmt.Sprintf("new schema version %d does not exceed old version %d", newer.Version, old.Version),
		})
	}

	for _, of := range old.Fields {
		nf, ok := newer.Field(of.Name)
		if !ok {
			if of.Required {
				result.Errors = append(result.Errors, Issue{
					Kind:    zcerr.KindRequiredFieldMissing,
					Field:   of.Name,
					Message: "required field removed in new schema",
				})
			}
			continue
		}

		if nf.Type != of.Type && !tag.Widens(of.Type, nf.Type) {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindIncompatibleSchema,
				Field:   of.Name,
				Message: fmt.Sprintf("field type changed from %s to %s, not a lossless widening", of.Type, nf.Type),
			})
		}

		if of.Required && !nf.Required {
			// Required field relaxed to optional: always safe, writers of
			// either version can still be read.
			continue
		}

		if !of.Required && nf.Required {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindBackwardCompatibilityError,
				Field:   of.Name,
				Message: "optional field became required",
			})
		}
	}

	for _, nf := range newer.Fields {
		if _, ok := old.Field(nf.Name); ok {
			continue
		}

		if nf.Required && !nf.HasDefault {
			result.Errors = append(result.Errors, Issue{
				Kind:    zcerr.KindBackwardCompatibilityError,
				Field:   nf.Name,
				Message: "new required field has no default, old writers cannot satisfy it",
			})
		}
	}

	return result
}
