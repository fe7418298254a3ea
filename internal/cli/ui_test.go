package cli

import (
	"bytes"
	"sync"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/numcalc/internal/cli/mocks"
	"github.com/agbru/numcalc/internal/orchestration"
)

// withSpinner swaps newSpinner for the duration of a test. Tests using it
// must not run in parallel.
func withSpinner(t *testing.T, s Spinner) {
	t.Helper()
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return s }
	t.Cleanup(func() { newSpinner = orig })
}

func TestRealSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(spinner.WithWriter(&buf))
	s.UpdateSuffix(" working")
	rs, ok := s.(*realSpinner)
	if !ok {
		t.Fatalf("newSpinner returned %T, want *realSpinner", s)
	}
	if rs.s.Suffix != " working" {
		t.Errorf("Suffix = %q, want %q", rs.s.Suffix, " working")
	}
	s.Start()
	s.Stop()
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	withSpinner(t, mock)

	gomock.InOrder(
		mock.EXPECT().UpdateSuffix(progressSuffix(0, 2)),
		mock.EXPECT().Start(),
		mock.EXPECT().UpdateSuffix(progressSuffix(1, 2)),
		mock.EXPECT().UpdateSuffix(progressSuffix(2, 2)),
		mock.EXPECT().Stop(),
	)

	completions := make(chan orchestration.CalculationResult, 2)
	completions <- orchestration.CalculationResult{Name: "a"}
	completions <- orchestration.CalculationResult{Name: "b"}
	close(completions)

	var wg sync.WaitGroup
	wg.Add(1)
	CLIProgressReporter{}.DisplayProgress(&wg, completions, 2, &bytes.Buffer{})
	wg.Wait()
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No call is expected on the spinner.
	withSpinner(t, mocks.NewMockSpinner(ctrl))

	completions := make(chan orchestration.CalculationResult)
	close(completions)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, completions, 0, &bytes.Buffer{})
	wg.Wait()
}
