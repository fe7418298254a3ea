// Command is-prime prints true when its argument is a prime number.
package main

import (
	"os"

	"github.com/agbru/numcalc/internal/app"
)

func main() {
	os.Exit(app.RunIsPrime(os.Args, os.Stdout, os.Stderr))
}
