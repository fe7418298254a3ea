package numeric

// ─────────────────────────────────────────────────────────────────────────────
// Safe Input Bounds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxFactorialInput is the largest n for which n! fits in a uint64.
	// 20! = 2,432,902,008,176,640,000 while 21! exceeds 2^64-1.
	MaxFactorialInput = 20

	// MaxFibonacciInput is the largest n for which F(n) fits in a uint64.
	// F(93) = 12,200,160,415,121,876,738 while F(94) exceeds 2^64-1.
	MaxFibonacciInput = 93
)

// FactorialFits reports whether n! is representable exactly as a uint64.
func FactorialFits(n uint64) bool { return n <= MaxFactorialInput }

// FibonacciFits reports whether F(n) is representable exactly as a uint64.
func FibonacciFits(n uint64) bool { return n <= MaxFibonacciInput }
