package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for the
// command line. Results go to the writer given by the caller, which is
// stdout for values and stderr for everything else.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary with one row per
// variant: name, duration, whether the value is exact, and status.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Header("--- Comparison Summary ---"))

	// Styles are applied after alignment: ANSI sequences would otherwise
	// count towards the column widths.
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Variant\tDuration\tExact\tStatus\n")
	for _, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		exact := "yes"
		if !res.Exact {
			exact = "wrapped"
		}
		status := "Success"
		if res.Err != nil {
			status = fmt.Sprintf("Failure (%v)", res.Err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", res.Name, duration, exact, status)
	}
	tw.Flush()
}

// PresentResult writes the bare value followed by a newline.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, out io.Writer) {
	DisplayResult(out, result.Value)
}

// HandleError reports err on out and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	code := apperrors.ExitCode(err)
	switch code {
	case apperrors.ExitSuccess:
		return code
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%s %v\n", ui.Warning("Timeout:"), err)
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%s\n", ui.Warning("Canceled."))
	default:
		fmt.Fprintf(out, "%s %v\n", ui.Failure("Error:"), err)
	}
	return code
}
