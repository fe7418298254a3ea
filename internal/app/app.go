package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// Version is overridden at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// Application represents the numcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   numeric.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
	Recorder  *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom calculator factory for the application.
func WithFactory(f numeric.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name. Usage and error text is written to
// errWriter; the returned error is suitable for apperrors.ExitCode.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = numeric.GlobalFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "numcalc")
	}

	programName := "numcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.Recorder = metrics.NewRecorder()
	return app, nil
}

// Run executes the configured command and returns the process exit code.
// Results are written to out; everything else goes to the error writer.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	configureLogLevel(a.Config.Verbose)
	ui.InitTheme(isTerminal(a.ErrWriter))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.Logger.Debug("command parsed",
		logging.String("command", a.Config.Command),
		logging.Bool("recursive", a.Config.Recursive),
		logging.Bool("compare", a.Config.Compare),
		logging.Duration("timeout", a.Config.Timeout))

	var code int
	switch a.Config.Command {
	case config.CommandPrime:
		code = a.runPrime(ctx, out)
	case config.CommandPrimes:
		code = a.runPrimes(ctx, out)
	default:
		code = a.runCalculate(ctx, out)
	}

	if a.Config.Metrics {
		if err := a.Recorder.WriteText(a.ErrWriter); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return code
}

func (a *Application) options() orchestration.Options {
	return orchestration.Options{
		Timeout:  a.Config.Timeout,
		Workers:  a.Config.Workers,
		Recorder: a.Recorder,
		Logger:   a.Logger,
	}
}

// PrintVersion writes the program version to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numcalc %s\n", Version)
}

// configureLogLevel shows debug traces only when verbose is set.
func configureLogLevel(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// isTerminal reports whether w is a terminal. Styling and the spinner are
// only enabled in that case so that redirected output stays plain.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return apperrors.IsHelpError(err)
}
