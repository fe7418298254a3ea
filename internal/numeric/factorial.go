package numeric

// FactorialIterative returns n! computed with a single accumulator.
// The accumulator starts at 1 and multiplies in every integer from 2 through
// n in ascending order, giving O(n) time and O(1) space.
//
// The result is exact for n <= MaxFactorialInput and wraps modulo 2^64 above.
func FactorialIterative(n uint64) uint64 {
	if n == 0 || n == 1 {
		return 1
	}

	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		result *= i
	}
	return result
}

// FactorialRecursive returns n! computed as n × (n-1)!.
// Call depth grows linearly with n.
//
// The result is exact for n <= MaxFactorialInput and wraps modulo 2^64 above.
func FactorialRecursive(n uint64) uint64 {
	if n == 0 || n == 1 {
		return 1
	}
	return n * FactorialRecursive(n-1)
}
