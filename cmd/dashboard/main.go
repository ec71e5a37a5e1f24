package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yigit/allizzwell/internal/bootstrap"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
	"github.com/yigit/allizzwell/internal/pkg/logger"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		cliLogger := logger.Component("cli")
		event := cliLogger.Error().Err(err)
		var appErr *apperrors.CustomError
		if errors.As(err, &appErr) && appErr.Code != "" {
			event = event.Str("code", appErr.Code)
		}
		event.Msg("Command failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case apperrors.Is(err, apperrors.ErrResourceNotFound):
		return 3
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrInvalidFilter):
		return 2
	default:
		return 1
	}
}

// newApp builds the command line. Results go to out as JSON, logs go to logOut.
func newApp(out, logOut io.Writer) *cli.App {
	var deps *bootstrap.Dependencies

	return &cli.App{
		Name:      "dashboard",
		Usage:     "ALL IZZ WELL student wellness dashboard",
		Writer:    out,
		ErrWriter: logOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				Value:   filepath.Join("configs", "config.yaml"),
				EnvVars: []string{"DASHBOARD_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"), logOut)
			if err != nil {
				return err
			}
			deps, err = bootstrap.BuildDependencies(cfg, lgr)
			return err
		},
		Commands: commands(func() *bootstrap.Dependencies { return deps }),
	}
}
