package numeric

// FibonacciIterative returns the nth Fibonacci number (0-indexed) with
// F(0)=0 and F(1)=1, using a rolling accumulator of the last two terms.
//
// The result is exact for n <= MaxFibonacciInput and wraps modulo 2^64 above.
func FibonacciIterative(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	prev, curr := uint64(0), uint64(1)
	for i := uint64(2); i <= n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// FibonacciRecursive returns the nth Fibonacci number by direct translation
// of the recurrence F(n) = F(n-1) + F(n-2).
//
// There is no memoization: the cost is O(2^n) time and O(n) stack depth.
// It exists as the exponential baseline against FibonacciIterative and must
// stay naive. Bound n (or use a deadline at the call site) before calling it.
func FibonacciRecursive(n uint64) uint64 {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return FibonacciRecursive(n-1) + FibonacciRecursive(n-2)
	}
}
