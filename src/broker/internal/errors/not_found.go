package errors

import (
	stderr "errors"
	"fmt"
)

// DesignNotFoundError reports that an explicitly requested design could not
// be resolved in the connected project. It wraps the tool's original
// failure where one exists.
type DesignNotFoundError struct {
	Name  string
	Cause error
}

// Error is an implementation of the error interface.
func (d *DesignNotFoundError) Error() string {
	if d.Cause != nil {
		return fmt.Sprintf("design %q not found; did you provide the correct design name? (%v)", d.Name, d.Cause)
	}
	return fmt.Sprintf("design %q not found; did you provide the correct design name?", d.Name)
}

// Unwrap exposes the tool's original failure.
func (d *DesignNotFoundError) Unwrap() error { return d.Cause }

// NotFoundDesign returns the requested design name and true if a
// DesignNotFoundError is part of the error chain.
func NotFoundDesign(e error) (_ string, ok bool) {
	var nf *DesignNotFoundError
	if !stderr.As(e, &nf) {
		return "", false
	}
	return nf.Name, true
}

// SetupNotFoundError reports that a setup could not be resolved or created
// for the connected design.
type SetupNotFoundError struct {
	Name  string
	Cause error
}

// Error is an implementation of the error interface.
func (s *SetupNotFoundError) Error() string {
	if s.Cause != nil {
		return fmt.Sprintf("setup %q could not be resolved; did you provide the correct setup name? (%v)", s.Name, s.Cause)
	}
	return fmt.Sprintf("setup %q could not be resolved; did you provide the correct setup name?", s.Name)
}

// Unwrap exposes the tool's original failure.
func (s *SetupNotFoundError) Unwrap() error { return s.Cause }
