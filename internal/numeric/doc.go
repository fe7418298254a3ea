// Package numeric provides the numeric core of numcalc: iterative and
// recursive factorial, iterative and recursive Fibonacci, and a 6k±1
// trial-division primality test.
//
// Every function is a pure mapping over uint64. None of them validate their
// input range or detect overflow: Go unsigned arithmetic wraps modulo 2^64,
// so results for inputs beyond MaxFactorialInput or MaxFibonacciInput are
// wrapped values. Use FactorialFits and FibonacciFits to check whether a
// result is exact before trusting it.
package numeric
