package domain

import "errors"

var (
	// ErrNotConnected is returned when a write is attempted without a connected wallet account
	ErrNotConnected = errors.New("wallet not connected")

	// ErrUnsupported is returned for operations the contract has no capability for
	ErrUnsupported = errors.New("operation not supported")

	// ErrInvalidContent is returned when suit or comment content fails validation
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidObjectID is returned when an object id or address is not valid hex
	ErrInvalidObjectID = errors.New("invalid object id")
)
