// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayPrime], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"bufio"
	"io"
	"strconv"
)

// FormatResult renders a computed value as a bare decimal integer.
func FormatResult(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// DisplayResult writes v as a bare decimal integer followed by a newline.
// This is the only thing the entry points write to stdout on success, so
// the output can be consumed by scripts.
func DisplayResult(out io.Writer, v uint64) {
	io.WriteString(out, FormatResult(v)+"\n")
}

// DisplayPrime writes "true" or "false" followed by a newline.
func DisplayPrime(out io.Writer, prime bool) {
	io.WriteString(out, strconv.FormatBool(prime)+"\n")
}

// DisplayPrimes writes the primes one per line.
func DisplayPrimes(out io.Writer, primes []uint64) error {
	w := bufio.NewWriter(out)
	buf := make([]byte, 0, 24)
	for _, p := range primes {
		buf = strconv.AppendUint(buf[:0], p, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return w.Flush()
}
