package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and file/storage layers
// return these (optionally wrapped) so services can translate them into
// domain errors with proper codes.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity or file does not exist in the store
// - ErrConflict: uniqueness or foreign-key constraint violated
// - ErrInvalidState: entity in wrong state for the requested operation
// - ErrUnavailable: backing service temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
