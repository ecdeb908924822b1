// Package errors provides standardized error handling patterns for the
// platform core.
//
// # Overview
//
// The package implements a three-class error classification system: Transient
// (temporary), Invalid (bad input, non-retryable), and Fatal (unrecoverable,
// stop processing). Classification lets callers decide between surfacing a
// failure, skipping a declaration, or aborting the load phase without
// hardcoded error string matching.
//
// The registry core itself signals very few errors: lookup misses are not
// errors at all (they resolve to sentinel records), so the taxonomy here
// covers declaration-time validation and loading-phase orchestration only.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function adds context without asserting a class.
//
// # Standard Error Variables
//
// Pre-defined error variables cover the common conditions of this core:
//
//   - Declaration: ErrInvalidName, ErrDuplicateDeclaration, ErrMissingFactory
//   - Loading: ErrAlreadyLoaded, ErrNotLoaded, ErrLoadFailed
//   - Configuration: ErrInvalidConfig, ErrMissingConfig
//
// Use these variables instead of creating custom error messages so callers
// can match with errors.Is.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection. Classification
// is preserved through wrapping chains:
//
//	wrapped := errors.WrapInvalid(errors.ErrInvalidName, "Extension", "SetExtensionInformation", "name validation")
//	errors.IsInvalid(wrapped) // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
