// Package config parses and validates the command line of the numcalc entry
// points. Parsing never exits the process: every failure is returned as a
// typed error from the apperrors package and the caller decides the exit
// status.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/numeric"
)

// Commands accepted by the unified entry point in addition to the
// factorial and Fibonacci keywords defined by the numeric package.
const (
	CommandPrime  = "prime"
	CommandPrimes = "primes"
)

// RecursiveFlag selects the recursive variant of fac and fib.
const RecursiveFlag = "--rec"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Command is the keyword of the operation to run (fac, fib, prime, primes).
	Command string
	// Recursive selects the recursive variant of fac and fib.
	Recursive bool
	// N is the numeric argument of fac, fib and prime.
	N uint64
	// From and To delimit the inclusive range of the primes command.
	From, To uint64

	// Verbose enables debug-level logging on the error stream.
	Verbose bool
	// Compare runs both variants concurrently and checks they agree.
	Compare bool
	// Metrics dumps the computation metrics to the error stream on exit.
	Metrics bool
	// Version prints the version and exits.
	Version bool
	// Timeout bounds a single computation. Zero disables the bound.
	Timeout time.Duration
	// Workers bounds the concurrency of the primes command.
	Workers int
}

// newFlagSet declares the global flags and binds them to cfg.
func newFlagSet(programName string, cfg *AppConfig) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging on the error stream.")
	fs.BoolVar(&cfg.Compare, "compare", false, "Run the iterative and recursive variants concurrently and compare them.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Write computation metrics in Prometheus text format to the error stream.")
	fs.BoolVar(&cfg.Version, "version", false, "Print the version and exit.")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Maximum duration of a computation (e.g. 10s). 0 disables the limit.")
	fs.IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "Number of concurrent workers for the primes command.")
	return fs
}

// ParseConfig parses the unified entry point's command line.
//
// Global flags come first, followed by the command and its arguments:
//
//	numcalc [flags] fac|fib [--rec] <n>
//	numcalc [flags] prime <n>
//	numcalc [flags] primes <from> <to>
//
// Error and usage text is written to errWriter. The returned error is
// flag.ErrHelp for --help, an apperrors.UsageError for a malformed command
// line, or an apperrors.ParseError for an invalid number.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	fs := newFlagSet(programName, &cfg)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(errWriter, programName, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		// The flag package has already reported the problem and the usage.
		return cfg, apperrors.UsageError{Message: err.Error()}
	}
	if cfg.Version {
		return cfg, nil
	}

	if err := cfg.parseCommand(fs.Args()); err != nil {
		reportError(errWriter, programName, err)
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		reportError(errWriter, programName, err)
		return cfg, err
	}
	return cfg, nil
}

// parseCommand fills the command fields from the positional arguments.
func (c *AppConfig) parseCommand(args []string) error {
	if len(args) == 0 {
		return apperrors.UsageError{}
	}
	c.Command, args = args[0], args[1:]

	switch c.Command {
	case numeric.KeywordFactorial, numeric.KeywordFibonacci:
		if len(args) > 0 && args[0] == RecursiveFlag {
			c.Recursive = true
			args = args[1:]
		}
		return c.parseSingleNumber(args)
	case CommandPrime:
		if len(args) > 0 && args[0] == RecursiveFlag {
			return apperrors.NewUsageError("%s is not supported by %s", RecursiveFlag, c.Command)
		}
		return c.parseSingleNumber(args)
	case CommandPrimes:
		if len(args) > 0 && args[0] == RecursiveFlag {
			return apperrors.NewUsageError("%s is not supported by %s", RecursiveFlag, c.Command)
		}
		if len(args) < 2 {
			return apperrors.NewUsageError("Missing range arguments")
		}
		if len(args) > 2 {
			return apperrors.NewUsageError("Unexpected argument '%s'", args[2])
		}
		from, err := ParseNumber(args[0])
		if err != nil {
			return err
		}
		to, err := ParseNumber(args[1])
		if err != nil {
			return err
		}
		c.From, c.To = from, to
		return nil
	default:
		return apperrors.NewUsageError("Unknown command '%s'", c.Command)
	}
}

func (c *AppConfig) parseSingleNumber(args []string) error {
	if len(args) == 0 {
		return apperrors.NewUsageError("Missing number argument")
	}
	if len(args) > 1 {
		return apperrors.NewUsageError("Unexpected argument '%s'", args[1])
	}
	n, err := ParseNumber(args[0])
	if err != nil {
		return err
	}
	c.N = n
	return nil
}

// Validate checks the consistency of flags and command.
func (c AppConfig) Validate() error {
	if c.Timeout < 0 {
		return apperrors.NewUsageError("--timeout must not be negative")
	}
	if c.Workers < 1 {
		return apperrors.NewUsageError("--workers must be at least 1")
	}
	if c.Compare {
		if c.Command != numeric.KeywordFactorial && c.Command != numeric.KeywordFibonacci {
			return apperrors.NewUsageError("--compare applies to %s and %s only", numeric.KeywordFactorial, numeric.KeywordFibonacci)
		}
		if c.Recursive {
			return apperrors.NewUsageError("--compare already runs both variants; drop %s", RecursiveFlag)
		}
	}
	if c.Command == CommandPrimes && c.From > c.To {
		return apperrors.NewUsageError("Empty range: %d > %d", c.From, c.To)
	}
	return nil
}

// ParseNumber parses a decimal unsigned 64-bit integer.
func ParseNumber(token string) (uint64, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, apperrors.ParseError{Token: token, Cause: err}
	}
	return n, nil
}

// ParseSingleArg validates the command line of the single-operation
// binaries, which accept exactly one numeric argument. args includes the
// program name. example is shown in the usage message.
func ParseSingleArg(args []string, example string, errWriter io.Writer) (uint64, error) {
	programName := "numcalc"
	if len(args) > 0 {
		programName = args[0]
	}
	if len(args) != 2 {
		fmt.Fprintf(errWriter, "Usage: %s <n>\n", programName)
		fmt.Fprintf(errWriter, "Example: %s %s\n", programName, example)
		return 0, apperrors.UsageError{}
	}
	n, err := ParseNumber(args[1])
	if err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return 0, err
	}
	return n, nil
}

// reportError writes err to w, followed by the usage text for usage errors.
func reportError(w io.Writer, programName string, err error) {
	var usageErr apperrors.UsageError
	if errors.As(err, &usageErr) {
		if usageErr.Message != "" {
			fmt.Fprintf(w, "Error: %s\n\n", usageErr.Message)
		}
		PrintUsage(w, programName)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// PrintUsage writes the unified entry point's usage text to w.
func PrintUsage(w io.Writer, programName string) {
	var discard AppConfig
	printUsage(w, programName, newFlagSet(programName, &discard))
}

func printUsage(w io.Writer, p string, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [flags] fac [--rec] <n>      Calculate factorial\n", p)
	fmt.Fprintf(w, "  %s [flags] fib [--rec] <n>      Calculate fibonacci\n", p)
	fmt.Fprintf(w, "  %s [flags] prime <n>            Test primality\n", p)
	fmt.Fprintf(w, "  %s [flags] primes <from> <to>   List primes in [from, to]\n", p)
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "  --rec                 Use recursive implementation (default: iterative)\n")
	fmt.Fprintf(w, "\nFlags:\n")
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s fac 5              Calculate 5! iteratively\n", p)
	fmt.Fprintf(w, "  %s fac --rec 5        Calculate 5! recursively\n", p)
	fmt.Fprintf(w, "  %s fib 10             Calculate fib(10) iteratively\n", p)
	fmt.Fprintf(w, "  %s fib --rec 10       Calculate fib(10) recursively\n", p)
	fmt.Fprintf(w, "  %s --compare fib 25   Run both variants and compare timings\n", p)
}
