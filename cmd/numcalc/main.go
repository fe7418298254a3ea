package main

import (
	"context"
	"os"

	"github.com/agbru/numcalc/internal/app"
	apperrors "github.com/agbru/numcalc/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(apperrors.ExitCode(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
