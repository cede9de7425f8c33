package types

import "errors"

// Standard errors returned by the thermalctl API. Use errors.Is() to check
// for these.
var (
	// ErrInvalidParams is returned by Params.Validate when a configuration
	// value falls outside its documented domain.
	ErrInvalidParams = errors.New("thermalctl: invalid parameters")

	// ErrInvalidResetMode is returned when Store.Reset is called with an
	// unrecognised mode.
	ErrInvalidResetMode = errors.New("thermalctl: invalid reset mode")
)
