// Package validate implements two schema-consistency checks: ValidateSchema
// (intra-schema invariants) and CheckCompatibility (pairwise old-vs-new
// evolution analysis against the TypeTag widening lattice).
package validate
