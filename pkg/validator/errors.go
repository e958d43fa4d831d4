package validator

import "errors"

var (
	// ErrUnknownGuard is returned by Parse for names missing from the registry.
	ErrUnknownGuard = errors.New("unknown guard")

	// ErrInvalidArguments is returned by Parse when a guard expression has the
	// wrong number of arguments or an argument cannot be decoded.
	ErrInvalidArguments = errors.New("invalid guard arguments")
)
