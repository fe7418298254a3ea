package orchestration

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/numeric"
)

const tracerName = "github.com/agbru/numcalc/internal/orchestration"

// Run computes calc for n, honoring ctx and opts.Timeout.
//
// The numeric core cannot be interrupted, so when ctx ends first Run returns
// immediately with an error and abandons the computing goroutine; its result
// is discarded when it eventually completes. An expired opts.Timeout is
// reported as an apperrors.TimeoutError wrapped in a CalculationError.
func Run(ctx context.Context, calc numeric.Calculator, n uint64, opts Options) CalculationResult {
	name := calc.Name()
	log := opts.logger()

	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	defer span.End()
	span.SetAttributes(attribute.String("numcalc.n", strconv.FormatUint(n, 10)))

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	log.Debug("calculation started", logging.String("calculator", name), logging.Uint64("n", n))

	res := CalculationResult{Name: name, N: n, Exact: calc.Fits(n)}
	start := time.Now()
	value, err := compute(ctx, calc, n)
	res.Duration = time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && opts.Timeout > 0 {
			err = apperrors.TimeoutError{Operation: name, Limit: opts.Timeout}
		}
		res.Err = apperrors.CalculationError{Calculator: name, Cause: err}
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		opts.Recorder.ObserveCalculation(name, res.Duration, res.Err)
		log.Debug("calculation aborted", logging.String("calculator", name), logging.Err(err))
		return res
	}

	res.Value = value
	span.SetAttributes(attribute.Bool("numcalc.exact", res.Exact))
	opts.Recorder.ObserveCalculation(name, res.Duration, nil)
	if !res.Exact {
		opts.Recorder.ObserveWrapped(name)
		log.Debug("result exceeds the uint64 range and wrapped modulo 2^64",
			logging.String("calculator", name), logging.Uint64("n", n))
	}
	log.Debug("calculation finished",
		logging.String("calculator", name),
		logging.Uint64("n", n),
		logging.Duration("duration", res.Duration))
	return res
}

// compute runs calc inline when ctx can never end, and on a separate
// goroutine raced against ctx otherwise.
func compute(ctx context.Context, calc numeric.Calculator, n uint64) (uint64, error) {
	if ctx.Done() == nil {
		return calc.Compute(n), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	done := make(chan uint64, 1)
	go func() { done <- calc.Compute(n) }()

	select {
	case v := <-done:
		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// IsPrime runs the primality test for n with the same instrumentation as Run.
func IsPrime(ctx context.Context, n uint64, opts Options) (bool, error) {
	prime, err := CheckPrimes(ctx, n, n, opts)
	if err != nil {
		return false, err
	}
	return len(prime) == 1, nil
}
