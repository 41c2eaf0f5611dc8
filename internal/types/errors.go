package types

import "errors"

// Domain specific errors.
var (
	ErrNotFound   = errors.New("requested item not found")
	ErrBadRequest = errors.New("bad request")
)

// Directory search error taxonomy. The fallback-vs-propagate decision in
// the places service is made on these discriminants, never by inspecting
// the error's shape.
var (
	// ErrCredentialMissing means no directory API key is configured.
	// A first-class supported mode, not a failure.
	ErrCredentialMissing = errors.New("directory credential not configured")

	// ErrDirectoryDenied is an explicit REQUEST_DENIED from the
	// directory service.
	ErrDirectoryDenied = errors.New("directory request denied")

	// ErrDirectoryUnavailable covers transport failures: timeout, DNS,
	// non-2xx, undecodable body.
	ErrDirectoryUnavailable = errors.New("directory service unavailable")
)
