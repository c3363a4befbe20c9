package telemetry

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/utils/test/assert"
)

func TestNewMode(t *testing.T) {
	for _, tc := range []struct {
		description string
		modeString  string
		expected    Mode
	}{
		{description: "should accept the off mode", modeString: "off", expected: ModeOff},
		{description: "should accept the stdout mode", modeString: "stdout", expected: ModeStdout},
		{description: "should default an unknown mode to off", modeString: "nope", expected: ModeOff},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewMode(tc.modeString))
		})
	}
}

func TestModeSet(t *testing.T) {
	var mode Mode
	assert.Nil(t, mode.Set("stdout"))
	assert.Equal(t, ModeStdout, mode)

	assert.NotNil(t, mode.Set("nope"))
}

func TestNewService(t *testing.T) {
	t.Run("should use a noop tracker when telemetry is off", func(t *testing.T) {
		service := NewService(ModeOff, "user@example.com", "login", "0.0.0")
		assert.Equal(t, &noopTracker{}, service.tracker)
	})

	t.Run("should use a stdout tracker in stdout mode", func(t *testing.T) {
		service := NewService(ModeStdout, "user@example.com", "login", "0.0.0")
		assert.Equal(t, &stdoutTracker{}, service.tracker)
	})

	t.Run("should assign each service a distinct execution id", func(t *testing.T) {
		one := NewService(ModeOff, "user@example.com", "login", "0.0.0")
		two := NewService(ModeOff, "user@example.com", "login", "0.0.0")
		assert.NotEqual(t, one.executionID, two.executionID)
	})
}
