package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
)

// CalculationResult encapsulates the outcome of a single calculation.
// It serves as the shared domain type between orchestration and presentation layers.
type CalculationResult struct {
	// Name is the identifier of the calculator used (e.g., "fibonacci-recursive").
	Name string
	// N is the input of the calculation.
	N uint64
	// Value is the computed result. It is meaningless if Err is set.
	Value uint64
	// Exact is false when the true result exceeds uint64 and Value wrapped.
	Exact bool
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// Options configures how calculations are run and observed.
type Options struct {
	// Timeout bounds each calculation. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
	// Workers bounds the number of concurrent primality workers.
	Workers int
	// Recorder receives metrics. May be nil.
	Recorder *metrics.Recorder
	// Logger receives debug traces. May be nil.
	Logger logging.Logger
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}

// ProgressReporter defines the interface for displaying calculation progress.
// This interface decouples the orchestration layer from the presentation layer.
//
// Implementations handle the visual representation of progress (spinners,
// counters, etc.) while the orchestration layer focuses on coordinating
// the calculations.
type ProgressReporter interface {
	// DisplayProgress consumes completion events until the channel is
	// closed, then calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - completions: Receives one result per finished calculator.
	//   - numCalculators: The number of concurrent calculators being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, completions <-chan CalculationResult, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, completions <-chan CalculationResult, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, completions <-chan CalculationResult, numCalculators int, out io.Writer) {
	f(wg, completions, numCalculators, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, completions <-chan CalculationResult, _ int, _ io.Writer) {
	defer wg.Done()
	for range completions {
	}
}

// ResultPresenter defines the interface for presenting calculation results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the final calculation result.
	PresentResult(result CalculationResult, out io.Writer)
	// HandleError reports err and returns the matching exit code.
	HandleError(err error, out io.Writer) int
}
