package check

import "errors"

var (
	// ErrNotNumber is returned when a value taking part in a comparison is not
	// numeric or is NaN.
	ErrNotNumber = errors.New("value is not a number")
)
