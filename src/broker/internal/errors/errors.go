// Package errors defines the broker's error taxonomy: soft conditions stay
// as log lines in the callers, user-configuration problems carry the
// offending name, and precondition violations get their own type so they
// are not mistaken for ordinary failures.
package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

// IsUserConfig reports whether the error indicates a fixable user
// configuration problem, such as a named design or setup that does not
// exist, or metadata referencing a missing model object.
func IsUserConfig(e error) bool {
	var (
		dnf *DesignNotFoundError
		snf *SetupNotFoundError
		val *ValidationError
	)
	return stderr.As(e, &dnf) || stderr.As(e, &snf) || stderr.As(e, &val)
}

// IsInvalidInput reports whether the error indicates malformed input to the
// dissipative config, either an unknown slot key or a non-string-collection
// value.
func IsInvalidInput(e error) bool {
	var (
		key *ConfigKeyError
		val *ConfigValueError
	)
	return stderr.As(e, &key) || stderr.As(e, &val)
}
