package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/numcalc/internal/cli"
	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
)

// RunSingle implements the single-operation binaries such as
// factorial-iterative: it reads exactly one number from args (which
// includes the program name), computes it with the named calculator and
// returns the exit code.
func RunSingle(args []string, stdout, stderr io.Writer, calculatorName, example string) int {
	n, err := config.ParseSingleArg(args, example, stderr)
	if err != nil {
		return apperrors.ExitCode(err)
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	calc := numeric.GlobalFactory().MustGet(calculatorName)
	res := orchestration.Run(context.Background(), calc, n, orchestration.Options{
		Logger: logging.NewConsoleLogger(stderr, calculatorName),
	})
	if res.Err != nil {
		return cli.CLIResultPresenter{}.HandleError(res.Err, stderr)
	}
	cli.DisplayResult(stdout, res.Value)
	return apperrors.ExitSuccess
}

// RunIsPrime implements the is-prime binary.
func RunIsPrime(args []string, stdout, stderr io.Writer) int {
	n, err := config.ParseSingleArg(args, "17", stderr)
	if err != nil {
		return apperrors.ExitCode(err)
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	prime, err := orchestration.IsPrime(context.Background(), n, orchestration.Options{
		Workers: 1,
		Logger:  logging.NewConsoleLogger(stderr, "is-prime"),
	})
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, stderr)
	}
	cli.DisplayPrime(stdout, prime)
	return apperrors.ExitSuccess
}
