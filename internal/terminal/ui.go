package terminal

import (
	"fmt"
	"io"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	Ask(answer interface{}, questions ...*survey.Question) error
	AskOne(answer interface{}, prompt survey.Prompt) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
	Spinner(message string) Spinner
}

// UIConfig holds the global config for the terminal UI
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
	Verbose       bool
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config:    config,
		in:        in,
		out:       out,
		err:       err,
		errLogger: log.New(err, "", 0),
	}
}

type ui struct {
	config    UIConfig
	in        io.Reader
	out       io.Writer
	err       io.Writer
	errLogger *log.Logger
}

func (ui *ui) Ask(answer interface{}, questions ...*survey.Question) error {
	stdio := ui.stdio()
	return survey.Ask(questions, answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	stdio := ui.stdio()
	return survey.AskOne(prompt, answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, l := range logs {
		if l.Level == LogLevelDebug && !ui.config.Verbose {
			continue
		}

		output, outputErr := l.Print(ui.config.OutputFormat)
		if outputErr != nil {
			ui.errLogger.Print(outputErr)
			continue
		}

		writer := ui.out
		if l.Level == LogLevelError {
			writer = ui.err
		}
		fmt.Fprintln(writer, output)
	}
}

func (ui *ui) Spinner(message string) Spinner {
	if ui.config.OutputFormat == OutputFormatJSON || ui.config.OutputTarget != "" {
		return noopSpinner{}
	}
	return newUISpinner(message)
}

func (ui *ui) stdio() terminal.Stdio {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return terminal.Stdio{In: in, Out: out, Err: ui.err}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr { return 0 }

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr { return 0 }
