// Command factorial-iterative prints n! for its single argument.
package main

import (
	"os"

	"github.com/agbru/numcalc/internal/app"
	"github.com/agbru/numcalc/internal/numeric"
)

func main() {
	os.Exit(app.RunSingle(os.Args, os.Stdout, os.Stderr, numeric.NameFactorialIterative, "5"))
}
