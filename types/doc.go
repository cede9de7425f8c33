// Package types holds the wire-level data structures and sentinel errors
// shared between the host and the thermalctl control core: the per-cycle
// Input and Output, the immutable Params configuration, and the error
// values a caller can match with errors.Is.
//
// types carries no behaviour of its own beyond validation — the control
// algorithms live in the parent thermalctl package, which imports types
// the way github.com/tj-smith47/shelly-go's component packages import its
// types package.
package types
