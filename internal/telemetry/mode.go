package telemetry

import (
	"fmt"
	"strings"
)

// set of supported telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = "enable or disable telemetry, available options: [off, stdout]"
)

// Mode is the telemetry mode
type Mode string

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOff    Mode = "off"
	ModeStdout Mode = "stdout"
)

// NewMode creates a new Mode from the provided string, defaulting to ModeOff
func NewMode(modeString string) Mode {
	mode := Mode(modeString)
	if !isValidMode(mode) {
		return ModeOff
	}
	return mode
}

// String returns the string representation
func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the telemetry mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOff.String(), ModeStdout.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

func isValidMode(mode Mode) bool {
	switch mode {
	case ModeEmpty, ModeOff, ModeStdout:
		return true
	}
	return false
}
