package orchestration

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/numeric"
)

// chunksPerWorker oversubscribes the workers so that uneven chunks (large
// primes cost more than small composites) still balance out.
const chunksPerWorker = 4

// cancelCheckInterval is how many candidates a worker tests between two
// looks at its context.
const cancelCheckInterval = 1024

// OperationPrimes names batch primality runs in metrics, logs and spans.
const OperationPrimes = "primes"

type chunk struct{ lo, hi uint64 }

// splitRange cuts the inclusive range [from, to] into at most parts
// contiguous chunks. It never overflows, even for [0, MaxUint64].
func splitRange(from, to uint64, parts int) []chunk {
	if parts < 1 {
		parts = 1
	}
	size := (to-from)/uint64(parts) + 1
	chunks := make([]chunk, 0, parts)
	for lo := from; ; {
		hi := lo + size - 1
		if hi < lo || hi > to {
			hi = to
		}
		chunks = append(chunks, chunk{lo, hi})
		if hi == to {
			return chunks
		}
		lo = hi + 1
	}
}

// CheckPrimes returns the primes in the inclusive range [from, to] in
// ascending order, testing chunks of the range concurrently on at most
// opts.Workers goroutines.
//
// Workers stop between candidates once ctx ends. If a single candidate is
// still being tested at that point, CheckPrimes returns without waiting for
// it, as Run does.
func CheckPrimes(ctx context.Context, from, to uint64, opts Options) ([]uint64, error) {
	if from > to {
		return nil, apperrors.NewUsageError("Empty range: %d > %d", from, to)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	log := opts.logger()

	ctx, sp := otel.Tracer(tracerName).Start(ctx, OperationPrimes)
	defer sp.End()
	sp.SetAttributes(
		attribute.String("numcalc.from", strconv.FormatUint(from, 10)),
		attribute.String("numcalc.to", strconv.FormatUint(to, 10)),
		attribute.Int("numcalc.workers", workers),
	)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	chunks := splitRange(from, to, workers*chunksPerWorker)
	found := make([][]uint64, len(chunks))
	tested := make([]int, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	start := time.Now()
	done := make(chan error, 1)
	go func() {
		for i, c := range chunks {
			g.Go(func() error {
				for v := c.lo; ; v++ {
					if tested[i]%cancelCheckInterval == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}
					tested[i]++
					if numeric.IsPrime(v) {
						found[i] = append(found[i], v)
					}
					if v == c.hi {
						return nil
					}
				}
			})
		}
		done <- g.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && opts.Timeout > 0 {
			err = apperrors.TimeoutError{Operation: OperationPrimes, Limit: opts.Timeout}
		}
		err = apperrors.CalculationError{Calculator: OperationPrimes, Cause: err}
		sp.RecordError(err)
		sp.SetStatus(codes.Error, err.Error())
		opts.Recorder.ObserveCalculation(OperationPrimes, elapsed, err)
		log.Debug("primality batch aborted", logging.Err(err))
		return nil, err
	}

	primes := slices.Concat(found...)
	total := 0
	for _, t := range tested {
		total += t
	}

	opts.Recorder.ObserveCalculation(OperationPrimes, elapsed, nil)
	opts.Recorder.ObservePrimeTests(total, len(primes))
	sp.SetAttributes(attribute.Int("numcalc.primes", len(primes)))
	log.Debug("primality batch finished",
		logging.Uint64("from", from),
		logging.Uint64("to", to),
		logging.Int("chunks", len(chunks)),
		logging.Int("primes", len(primes)),
		logging.Duration("duration", elapsed))
	return primes, nil
}
