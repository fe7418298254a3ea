package numeric

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIsPrime_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("IsPrime agrees with naive trial division", prop.ForAll(
		func(n uint64) bool {
			return IsPrime(n) == naiveIsPrime(n)
		},
		gen.UInt64Range(0, 10000),
	))

	properties.Property("a product of two factors > 1 is never prime", prop.ForAll(
		func(a, b uint64) bool {
			return !IsPrime(a * b)
		},
		gen.UInt64Range(2, 50000),
		gen.UInt64Range(2, 50000),
	))

	properties.TestingRun(t)
}

func TestFactorial_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("iterative and recursive variants are identical", prop.ForAll(
		func(n uint64) bool {
			return FactorialIterative(n) == FactorialRecursive(n)
		},
		gen.UInt64Range(0, 1000),
	))

	properties.Property("n! = n × (n-1)! on the exact range", prop.ForAll(
		func(n uint64) bool {
			return FactorialIterative(n) == n*FactorialIterative(n-1)
		},
		gen.UInt64Range(1, MaxFactorialInput),
	))

	properties.TestingRun(t)
}

func TestFibonacci_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			return FibonacciIterative(n) == FibonacciIterative(n-1)+FibonacciIterative(n-2)
		},
		gen.UInt64Range(2, MaxFibonacciInput),
	))

	properties.Property("iterative and recursive variants are identical", prop.ForAll(
		func(n uint64) bool {
			return FibonacciIterative(n) == FibonacciRecursive(n)
		},
		gen.UInt64Range(0, 22),
	))

	properties.TestingRun(t)
}
