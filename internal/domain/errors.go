package domain

import "errors"

var (
	// ErrInvalidArgument signals a request parameter that fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrUnknownMethod signals an unrecognized search method.
	ErrUnknownMethod = errors.New("unknown search method")
	// ErrNotImplemented signals a contract an engine does not support.
	ErrNotImplemented = errors.New("not implemented")
	// ErrMemoryPathEscape signals a memory path outside the /memories root.
	ErrMemoryPathEscape = errors.New("path escapes memory root")
)
