//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/numcalc/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text that is displayed after the spinner. The
// spinner redraws from its own goroutine, so the write holds its lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressSuffix renders the spinner text for done of total variants.
func progressSuffix(done, total int) string {
	return fmt.Sprintf(" Comparing variants: %d/%d done", done, total)
}

// DisplayProgress shows a spinner on out while the compared variants run and
// counts completions until the channel is closed.
//
// Parameters:
//   - wg: Marked done when the channel has been drained.
//   - completions: Receives one result per finished calculator.
//   - numCalculators: The number of results to expect.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, completions <-chan orchestration.CalculationResult, numCalculators int, out io.Writer) {
	defer wg.Done()
	if numCalculators <= 0 {
		for range completions {
		}
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(0, numCalculators))
	s.Start()
	defer s.Stop()

	done := 0
	for range completions {
		done++
		s.UpdateSuffix(progressSuffix(done, numCalculators))
	}
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to the package-level DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, completions <-chan orchestration.CalculationResult, numCalculators int, out io.Writer) {
	DisplayProgress(wg, completions, numCalculators, out)
}
