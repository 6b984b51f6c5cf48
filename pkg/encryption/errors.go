package encryption

import "errors"

var (
	// ErrMissingEntry is returned when a named entry required by the container is absent.
	ErrMissingEntry = errors.New("missing named entry")
	// ErrUnknownCryptoType is returned when no implementation is registered for a crypto type.
	ErrUnknownCryptoType = errors.New("unknown crypto type")
	// ErrDuplicateCryptoType is returned when registering a crypto type twice.
	ErrDuplicateCryptoType = errors.New("crypto type already registered")
)
