package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/numeric"
)

// ExecuteCalculations runs every calculator on n concurrently and returns
// one result per calculator, in the order of calculators.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and streams each completion to the progress reporter. Failures are carried
// in CalculationResult.Err and never cancel sibling calculations.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: The calculators to execute.
//   - n: The input shared by every calculator.
//   - opts: Timeout, metrics and logging options applied to each run.
//   - progressReporter: Displays completions (use NullProgressReporter for none).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: A slice containing the results of each calculation.
func ExecuteCalculations(ctx context.Context, calculators []numeric.Calculator, n uint64, opts Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	completions := make(chan CalculationResult, len(calculators))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, completions, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			results[i] = Run(ctx, calc, n, opts)
			completions <- results[i]
			return nil
		})
	}

	_ = g.Wait()
	close(completions)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results of several variants of the
// same operation and reports on their consistency.
//
// It sorts the results by execution time (successes first), presents the
// comparison table and a global status line, and checks that every
// successful variant produced the same value.
//
// Parameters:
//   - results: The slice of calculation results to analyze. It is sorted in place.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - *CalculationResult: The fastest successful result, or nil if none succeeded.
//   - error: nil on success, the first calculation error if every variant
//     failed, or an apperrors.MismatchError if the variants disagree.
func AnalyzeComparisonResults(results []CalculationResult, presenter ResultPresenter, out io.Writer) (*CalculationResult, error) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No variant could complete the calculation.\n")
		presenter.HandleError(firstError, out)
		return nil, firstError
	}

	values := make(map[string]uint64, len(results))
	mismatch := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		values[res.Name] = res.Value
		if res.Value != firstValid.Value {
			mismatch = true
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The variants returned different results.\n")
		return nil, apperrors.MismatchError{N: firstValid.N, Results: values}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	return firstValid, nil
}

// RunComparison executes calculators concurrently, analyzes the results and
// returns the agreed result.
func RunComparison(ctx context.Context, calculators []numeric.Calculator, n uint64, opts Options, reporter ProgressReporter, presenter ResultPresenter, out io.Writer) (*CalculationResult, error) {
	if len(calculators) == 0 {
		return nil, apperrors.NewUsageError("nothing to compare")
	}
	results := ExecuteCalculations(ctx, calculators, n, opts, reporter, out)
	return AnalyzeComparisonResults(results, presenter, out)
}
