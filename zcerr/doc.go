// Package zcerr defines the unified error taxonomy used across zcrt.
//
// Every failure returned by a public zcrt entry point is a *zcerr.Error
// wrapping one of the closed set of Kind values below. Optional context
// (field name, byte position, expected/actual type) is attached when known;
// callers that only care about the failure category should use errors.Is
// against the package-level sentinel values.
package zcerr
