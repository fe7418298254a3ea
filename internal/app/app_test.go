package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
)

// run executes the unified entry point with args and returns the exit code
// and both output streams.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	application, err := New(append([]string{"numcalc"}, args...), &stderr, WithLogger(logging.NewNopLogger()))
	if err != nil {
		return apperrors.ExitCode(err), stdout.String(), stderr.String()
	}
	code := application.Run(context.Background(), &stdout)
	return code, stdout.String(), stderr.String()
}

func TestApplication_Results(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"factorial iterative", []string{"fac", "5"}, "120\n"},
		{"factorial recursive", []string{"fac", "--rec", "5"}, "120\n"},
		{"factorial zero", []string{"fac", "0"}, "1\n"},
		{"factorial bound", []string{"fac", "20"}, "2432902008176640000\n"},
		{"factorial wraps", []string{"fac", "25"}, "7034535277573963776\n"},
		{"fibonacci iterative", []string{"fib", "10"}, "55\n"},
		{"fibonacci recursive", []string{"fib", "--rec", "10"}, "55\n"},
		{"fibonacci bound", []string{"fib", "93"}, "12200160415121876738\n"},
		{"compare", []string{"--compare", "fac", "10"}, "3628800\n"},
		{"prime", []string{"prime", "104729"}, "true\n"},
		{"not prime", []string{"prime", "1"}, "false\n"},
		{"primes", []string{"primes", "1", "30"}, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n"},
		{"primes with workers", []string{"--workers", "3", "primes", "90", "100"}, "97\n"},
		{"with timeout", []string{"--timeout", "5s", "fib", "--rec", "20"}, "6765\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := run(t, tt.args...)
			if code != apperrors.ExitSuccess {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestApplication_UsageErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		args       []string
		wantStderr []string
	}{
		{"no arguments", nil, []string{"Usage:"}},
		{"unknown command", []string{"foo", "5"}, []string{"Error: Unknown command 'foo'", "Usage:"}},
		{"missing number", []string{"fac"}, []string{"Error: Missing number argument", "Usage:"}},
		{"missing number after rec", []string{"fib", "--rec"}, []string{"Error: Missing number argument"}},
		{"invalid number", []string{"fac", "abc"}, []string{"Error: 'abc' is not a valid number"}},
		{"negative number", []string{"fib", "-1"}, []string{"'-1' is not a valid number"}},
		{"out of range", []string{"fac", "18446744073709551616"}, []string{"is not a valid number"}},
		{"extra argument", []string{"fac", "5", "6"}, []string{"Unexpected argument '6'"}},
		{"rec on prime", []string{"prime", "--rec", "5"}, []string{"--rec is not supported"}},
		{"empty range", []string{"primes", "10", "1"}, []string{"Empty range"}},
		{"compare prime", []string{"--compare", "prime", "5"}, []string{"--compare applies to"}},
		{"unknown flag", []string{"--nope", "fac", "5"}, []string{"flag provided but not defined"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, stdout, stderr := run(t, tt.args...)
			if code != apperrors.ExitErrorUsage {
				t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorUsage)
			}
			if stdout != "" {
				t.Errorf("stdout should be empty, got %q", stdout)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr should contain %q, got:\n%s", want, stderr)
				}
			}
		})
	}
}

func TestApplication_Help(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, "--help")
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "" || !strings.Contains(stderr, "Usage:") {
		t.Errorf("help should go to stderr only, stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestApplication_Version(t *testing.T) {
	t.Parallel()
	code, stdout, _ := run(t, "--version")
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want 0", code)
	}
	if stdout != "numcalc "+Version+"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestApplication_CompareTableOnStderr(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, "--compare", "fib", "15")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr)
	}
	if stdout != "610\n" {
		t.Errorf("stdout = %q, want %q", stdout, "610\n")
	}
	for _, want := range []string{"fibonacci-iterative", "fibonacci-recursive", "Global Status: Success"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestApplication_Metrics(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, "--metrics", "fac", "25")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "7034535277573963776\n" {
		t.Errorf("metrics must not pollute stdout, got %q", stdout)
	}
	for _, want := range []string{
		`numcalc_calculations_total{operation="factorial-iterative",status="ok"} 1`,
		`numcalc_wrapped_results_total{operation="factorial-iterative"} 1`,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr should contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestApplication_Timeout(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := run(t, "--timeout", "10ms", "fib", "--rec", "50")
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}
	if !strings.Contains(stderr, "Timeout:") {
		t.Errorf("stderr should report the timeout, got %q", stderr)
	}
}

func TestRunSingle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		args       []string
		calculator string
		wantCode   int
		wantOut    string
		wantErr    string
	}{
		{"factorial iterative", []string{"factorial-iterative", "5"}, "factorial-iterative", 0, "120\n", ""},
		{"factorial recursive", []string{"factorial-recursive", "0"}, "factorial-recursive", 0, "1\n", ""},
		{"fibonacci iterative", []string{"fibonacci-iterative", "6"}, "fibonacci-iterative", 0, "8\n", ""},
		{"fibonacci recursive", []string{"fibonacci-recursive", "1"}, "fibonacci-recursive", 0, "1\n", ""},
		{"no argument", []string{"factorial-iterative"}, "factorial-iterative", 1, "", "Usage: factorial-iterative <n>\nExample: factorial-iterative 5\n"},
		{"two arguments", []string{"factorial-iterative", "1", "2"}, "factorial-iterative", 1, "", "Usage: factorial-iterative <n>"},
		{"invalid", []string{"fibonacci-iterative", "x"}, "fibonacci-iterative", 1, "", "Error: 'x' is not a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := RunSingle(tt.args, &stdout, &stderr, tt.calculator, "5")
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, should contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunIsPrime(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		arg  string
		want string
	}{
		{"17", "true\n"},
		{"18", "false\n"},
		{"0", "false\n"},
		{"4294967291", "true\n"},
	} {
		var stdout, stderr bytes.Buffer
		if code := RunIsPrime([]string{"is-prime", tt.arg}, &stdout, &stderr); code != 0 {
			t.Fatalf("is-prime %s: exit code %d (%s)", tt.arg, code, stderr.String())
		}
		if stdout.String() != tt.want {
			t.Errorf("is-prime %s = %q, want %q", tt.arg, stdout.String(), tt.want)
		}
	}
}
