package main

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// refreshRate is the spinner animation interval.
const refreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so tests can record updates.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], refreshRate, spinner.WithWriter(out))}
}

// spinnerObserver shows sieve progress in the spinner suffix. It
// implements prime.ProgressObserver.
type spinnerObserver struct {
	s     Spinner
	label string
}

func (o spinnerObserver) Update(sieve string, progress float64) {
	o.s.UpdateSuffix(fmt.Sprintf(" %s: sieving %s (%5.1f%%)", o.label, sieve, progress*100))
}
