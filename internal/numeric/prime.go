package numeric

import "math"

// IsPrime reports whether n is a natural number greater than 1 whose only
// divisors are 1 and itself.
//
// After ruling out multiples of 2 and 3, trial division only tests
// candidates of the form 6k-1 and 6k+1 (i and i+2 for i = 5, 11, 17, ...).
// The loop stops once i*i > n; the bound is kept in integer arithmetic so
// perfect squares are never misjudged by floating-point rounding.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// i*i must not wrap: any i above MaxUint32 already exceeds sqrt(MaxUint64).
	for i := uint64(5); i <= math.MaxUint32 && i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
