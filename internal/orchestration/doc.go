// Package orchestration runs numeric calculations on behalf of the entry
// points: single runs bounded by a deadline, concurrent comparison of the
// iterative and recursive variants, and batch primality testing over a range.
// It decouples business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces, and instruments every run with OpenTelemetry
// spans and Prometheus metrics.
package orchestration
