package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/openride-labs/ridesync/internal/usecase"
)

// SpinnerSink shows a terminal spinner while an operation runs.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins (or retargets) the spinner with a message.
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Stop halts the spinner.
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints a line without disturbing an active spinner for long.
func (s *SpinnerSink) Info(message string) {
	active := s.spinner.Active()
	if active {
		s.spinner.Stop()
	}
	fmt.Println(message)
	if active {
		s.spinner.Start()
	}
}

// NewNopSink returns a sink that discards all progress updates.
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// Ensure the sink implements the port
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
