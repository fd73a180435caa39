package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotConnected(t *testing.T) {
	err := fmt.Errorf("checking session: %w", &NotConnectedError{})
	assert.True(t, IsNotConnected(err))
	assert.False(t, IsNotConnected(New("some other error")))
}

func TestNotFoundDesign(t *testing.T) {
	cause := New("COM dispatch failed")
	err := fmt.Errorf("connecting design: %w", &DesignNotFoundError{Name: "transmon_b", Cause: cause})

	name, ok := NotFoundDesign(err)
	require.True(t, ok)
	assert.Equal(t, "transmon_b", name)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "did you provide the correct design name?")

	_, ok = NotFoundDesign(New("unrelated"))
	assert.False(t, ok)
}

func TestSetupNotFoundUnwraps(t *testing.T) {
	cause := New("listing setups failed")
	err := &SetupNotFoundError{Name: "Setup9", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Setup9")
}

func TestIsUserConfig(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"design not found", &DesignNotFoundError{Name: "d"}, true},
		{"setup not found", &SetupNotFoundError{Name: "s"}, true},
		{"validation", &ValidationError{Junction: "j1", Field: "rect", Name: "r"}, true},
		{"wrapped validation", fmt.Errorf("validating: %w", &ValidationError{}), true},
		{"not connected", &NotConnectedError{}, false},
		{"plain", New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUserConfig(tt.err))
		})
	}
}

func TestFailedValidation(t *testing.T) {
	orig := &ValidationError{Junction: "j1", Field: "rect", Name: "jj_rectt_1", Suggestion: "jj_rect_1"}
	err := fmt.Errorf("validating junctions: %w", orig)

	v, ok := FailedValidation(err)
	require.True(t, ok)
	assert.Same(t, orig, v)
	assert.Contains(t, v.Error(), `did you mean "jj_rect_1"?`)

	bare := &ValidationError{Junction: "j1", Field: "rect", Name: "jj_rectt_1"}
	assert.NotContains(t, bare.Error(), "did you mean")
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(&ConfigKeyError{Key: "surfaces", Known: []string{"seams"}}))
	assert.True(t, IsInvalidInput(fmt.Errorf("applying: %w", &ConfigValueError{Key: "seams", Reason: "not a list"})))
	assert.False(t, IsInvalidInput(New("boom")))
}
