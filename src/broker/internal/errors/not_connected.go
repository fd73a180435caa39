package errors

import stderr "errors"

// NotConnectedError reports a call that requires a fully connected session
// (all of setup, design, project, desktop and app resolved). Hitting it is
// a programming error in the caller, not a condition to retry.
type NotConnectedError struct{}

// Error is an implementation of the error interface.
func (n *NotConnectedError) Error() string {
	return "not connected to the simulation tool; call Connect first"
}

// IsNotConnected reports whether NotConnectedError is part of the error chain.
func IsNotConnected(e error) bool {
	var nc *NotConnectedError
	return stderr.As(e, &nc)
}
