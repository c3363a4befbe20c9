package terminal

import (
	"time"

	"github.com/briandowns/spinner"
)

// spinnerFrames is the animation cycled while a fetch is in flight
var spinnerFrames = []string{".  ", ".. ", "...", "   "}

const spinnerInterval = 250 * time.Millisecond

// Spinner is a terminal progress indicator
type Spinner interface {
	Start()
	Stop()
}

type uiSpinner struct {
	s *spinner.Spinner
}

func newUISpinner(message string) *uiSpinner {
	s := spinner.New(spinnerFrames, spinnerInterval)
	s.Suffix = " " + message
	return &uiSpinner{s}
}

func (s *uiSpinner) Start() { s.s.Start() }
func (s *uiSpinner) Stop()  { s.s.Stop() }

type noopSpinner struct{}

func (s noopSpinner) Start() {}
func (s noopSpinner) Stop()  {}
