// Command fibonacci-recursive prints the n-th Fibonacci number using the
// naive double recursion, which takes exponential time.
package main

import (
	"os"

	"github.com/agbru/numcalc/internal/app"
	"github.com/agbru/numcalc/internal/numeric"
)

func main() {
	os.Exit(app.RunSingle(os.Args, os.Stdout, os.Stderr, numeric.NameFibonacciRecursive, "6"))
}
