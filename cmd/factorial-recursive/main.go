// Command factorial-recursive prints n! computed recursively.
package main

import (
	"os"

	"github.com/agbru/numcalc/internal/app"
	"github.com/agbru/numcalc/internal/numeric"
)

func main() {
	os.Exit(app.RunSingle(os.Args, os.Stdout, os.Stderr, numeric.NameFactorialRecursive, "5"))
}
