package errors

import (
	stderr "errors"
	"fmt"
	"strings"
)

// ValidationError reports a junction or port spec field referencing a
// variable or object that does not exist in the live model.
type ValidationError struct {
	// Junction is the registered name of the offending spec.
	Junction string
	// Field is the spec field that failed, e.g. "Lj_variable" or "rect".
	Field string
	// Name is the missing variable or object name.
	Name string
	// Suggestion optionally names the closest existing candidate.
	Suggestion string
}

// Error is an implementation of the error interface.
func (v *ValidationError) Error() string {
	msg := fmt.Sprintf("junction %q: %s %q does not exist in the model", v.Junction, v.Field, v.Name)
	if v.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", v.Suggestion)
	}
	return msg
}

// ConfigKeyError reports an unknown dissipative slot key.
type ConfigKeyError struct {
	Key   string
	Known []string
}

// Error is an implementation of the error interface.
func (c *ConfigKeyError) Error() string {
	return fmt.Sprintf("no such dissipative slot %q; the known slots are: %s", c.Key, strings.Join(c.Known, ", "))
}

// ConfigValueError reports a dissipative slot value of the wrong shape or
// naming a nonexistent object.
type ConfigValueError struct {
	Key    string
	Reason string
}

// Error is an implementation of the error interface.
func (c *ConfigValueError) Error() string {
	return fmt.Sprintf("dissipative[%q]: %s", c.Key, c.Reason)
}

// FailedValidation returns the ValidationError and true if one is part of
// the error chain.
func FailedValidation(e error) (*ValidationError, bool) {
	var v *ValidationError
	if !stderr.As(e, &v) {
		return nil, false
	}
	return v, true
}
