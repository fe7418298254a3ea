package app

import (
	"context"
	"errors"
	"io"

	"github.com/agbru/numcalc/internal/cli"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/orchestration"
)

// runCalculate runs fac or fib, either the selected variant alone or both
// variants side by side with --compare.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	calculators := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	if len(calculators) == 0 {
		return presenter.HandleError(apperrors.NewUsageError("Unknown command '%s'", a.Config.Command), a.ErrWriter)
	}

	if !a.Config.Compare {
		res := orchestration.Run(ctx, calculators[0], a.Config.N, a.options())
		if res.Err != nil {
			return presenter.HandleError(res.Err, a.ErrWriter)
		}
		presenter.PresentResult(res, out)
		return apperrors.ExitSuccess
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if isTerminal(a.ErrWriter) {
		reporter = cli.CLIProgressReporter{}
	}

	best, err := orchestration.RunComparison(ctx, calculators, a.Config.N, a.options(), reporter, presenter, a.ErrWriter)
	if err != nil {
		// A failure of every variant has already been reported.
		var mismatch apperrors.MismatchError
		if errors.As(err, &mismatch) {
			presenter.HandleError(err, a.ErrWriter)
		}
		return apperrors.ExitCode(err)
	}
	presenter.PresentResult(*best, out)
	return apperrors.ExitSuccess
}

func (a *Application) runPrime(ctx context.Context, out io.Writer) int {
	prime, err := orchestration.IsPrime(ctx, a.Config.N, a.options())
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
	}
	cli.DisplayPrime(out, prime)
	return apperrors.ExitSuccess
}

func (a *Application) runPrimes(ctx context.Context, out io.Writer) int {
	primes, err := orchestration.CheckPrimes(ctx, a.Config.From, a.Config.To, a.options())
	if err == nil {
		err = cli.DisplayPrimes(out, primes)
	}
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}
