package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The service's patient lookup and
// 1-based selection helpers return these internally and translate them into
// domain errors before they leave the service. The registry itself reports
// misses with a false return, never an error.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the registry
// - ErrOutOfRange: a 1-based selection number does not address an entry
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound   = errors.New("not found")
	ErrOutOfRange = errors.New("out of range")
)
