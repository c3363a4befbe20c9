package terminal

import (
	"fmt"
	"strings"
)

// set of supported terminal flags
const (
	FlagAutoConfirm        = "yes"
	FlagAutoConfirmShort   = "y"
	FlagAutoConfirmUsage   = "automatically proceed through interactive prompts"
	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "disable output styling"
	FlagOutputFormat       = "output-format"
	FlagOutputFormatShort  = "f"
	FlagOutputFormatUsage  = "set the output format, available options: [json]"
	FlagOutputTarget       = "output-target"
	FlagOutputTargetShort  = "o"
	FlagOutputTargetUsage  = "write output to the specified filepath"
	FlagVerbose            = "verbose"
	FlagVerboseShort       = "v"
	FlagVerboseUsage       = "display debug output"
)

// OutputFormat is the terminal output format
type OutputFormat string

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
)

func (of OutputFormat) String() string {
	val := string(of)
	if val == "" {
		return "<blank>"
	}
	return val
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "OutputFormat" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(val)

	if !isValidOutputFormat(outputFormat) {
		allOutputFormats := []string{OutputFormatText.String(), OutputFormatJSON.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allOutputFormats, ", "))
	}

	*of = outputFormat
	return nil
}

func isValidOutputFormat(outputFormat OutputFormat) bool {
	switch outputFormat {
	case OutputFormatText, OutputFormatJSON:
		return true
	}
	return false
}
