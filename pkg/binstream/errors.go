package binstream

import "errors"

var (
	// ErrShortRead is returned when a fixed width value could not be read completely.
	ErrShortRead = errors.New("stream read: value was not read completely")
	// ErrNotSeekable is returned when a seek or size query is made against a medium that can't seek.
	ErrNotSeekable = errors.New("stream is not seekable")
)
