package numeric

import (
	"fmt"
	"sort"
	"sync"
)

// Calculator names registered by NewDefaultFactory. They double as the names
// of the single-purpose command-line binaries.
const (
	NameFactorialIterative = "factorial-iterative"
	NameFactorialRecursive = "factorial-recursive"
	NameFibonacciIterative = "fibonacci-iterative"
	NameFibonacciRecursive = "fibonacci-recursive"
)

// Keywords accepted by the unified entry point.
const (
	KeywordFactorial = "fac"
	KeywordFibonacci = "fib"
)

// Calculator is a named uint64 → uint64 numeric operation.
// Implementations must be pure and safe for concurrent use.
type Calculator interface {
	// Name returns the registered identifier of the operation.
	Name() string
	// Compute evaluates the operation for n.
	Compute(n uint64) uint64
	// Fits reports whether the result for n is exact (no uint64 wrap).
	Fits(n uint64) bool
}

// Func adapts a plain function into a Calculator.
type Func struct {
	name   string
	fn     func(uint64) uint64
	fitsFn func(uint64) bool
}

// NewFunc returns a Calculator named name that delegates to fn. fits may be
// nil, in which case every input is reported as exact.
func NewFunc(name string, fn func(uint64) uint64, fits func(uint64) bool) *Func {
	return &Func{name: name, fn: fn, fitsFn: fits}
}

// Name returns the calculator name.
func (f *Func) Name() string { return f.name }

// Compute evaluates the wrapped function.
func (f *Func) Compute(n uint64) uint64 { return f.fn(n) }

// Fits reports whether the result for n is exact.
func (f *Func) Fits(n uint64) bool {
	if f.fitsFn == nil {
		return true
	}
	return f.fitsFn(n)
}

// Factory provides access to registered calculators by name.
type Factory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// MustGet is like Get but panics if name is unknown. Intended for
	// static wiring in main packages and tests.
	MustGet(name string) Calculator
	// List returns the registered names in ascending order.
	List() []string
}

// DefaultFactory is a concurrency-safe registry of calculators.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the four factorial and Fibonacci
// variants registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register(NewFunc(NameFactorialIterative, FactorialIterative, FactorialFits))
	f.Register(NewFunc(NameFactorialRecursive, FactorialRecursive, FactorialFits))
	f.Register(NewFunc(NameFibonacciIterative, FibonacciIterative, FibonacciFits))
	f.Register(NewFunc(NameFibonacciRecursive, FibonacciRecursive, FibonacciFits))
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns a process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}

// Register adds or replaces a calculator under its own name.
func (f *DefaultFactory) Register(c Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[c.Name()] = c
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator %q", name)
	}
	return c, nil
}

// MustGet returns the calculator registered under name or panics.
func (f *DefaultFactory) MustGet(name string) Calculator {
	c, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the registered calculator names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a unified-entry keyword ("fac" or "fib") and variant to a
// calculator name. The boolean is false for an unknown keyword.
func Lookup(keyword string, recursive bool) (string, bool) {
	switch keyword {
	case KeywordFactorial:
		if recursive {
			return NameFactorialRecursive, true
		}
		return NameFactorialIterative, true
	case KeywordFibonacci:
		if recursive {
			return NameFibonacciRecursive, true
		}
		return NameFibonacciIterative, true
	}
	return "", false
}

// Variants returns the iterative and recursive calculator names for keyword,
// in that order, or nil for an unknown keyword.
func Variants(keyword string) []string {
	iter, ok := Lookup(keyword, false)
	if !ok {
		return nil
	}
	rec, _ := Lookup(keyword, true)
	return []string{iter, rec}
}
