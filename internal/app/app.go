// Package app wires configuration, logging and the database for the
// command-line tools, and maps run errors to exit codes.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/config"
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/flagx"
	"github.com/dmitrijs2005/recruitkit/internal/logging"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var openDB = dbx.Open

type App struct {
	Tool   string
	Config *config.Config
	Logger logging.Logger
	// Args holds the positional arguments.
	Args []string

	stderr io.Writer
	usage  string
}

// New loads the configuration from args and builds a logger writing to
// stderr. Every log line carries the tool name and a per-run id.
func New(tool, usage string, args []string, stderr io.Writer) (*App, error) {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUsage, err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUsage, err)
	}

	logger := logging.NewConsoleLogger(stderr, level).With("tool", tool, "run_id", uuid.NewString())

	return &App{
		Tool:   tool,
		Config: cfg,
		Logger: logger,
		Args:   flagx.Positional(args, config.ValueFlags),
		stderr: stderr,
		usage:  usage,
	}, nil
}

// Context returns a context cancelled on SIGINT or SIGTERM.
func (a *App) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Arg returns the i-th positional argument, or fallback when absent.
func (a *App) Arg(i int, fallback string) string {
	if i < len(a.Args) && a.Args[i] != "" {
		return a.Args[i]
	}
	return fallback
}

// OpenDB connects to Config.DatabaseDSN. A missing DSN is a usage error.
func (a *App) OpenDB(ctx context.Context) (*sql.DB, error) {
	if a.Config.DatabaseDSN == "" {
		return nil, fmt.Errorf("%w: database url is required", common.ErrUsage)
	}
	return openDB(ctx, a.Config.DatabaseDSN)
}

// Exit reports err and returns the process exit code for it.
func (a *App) Exit(ctx context.Context, err error) int {
	return exitCode(ctx, a.Logger, a.stderr, a.usage, err)
}

// Fail is Exit for errors raised before an App exists.
func Fail(stderr io.Writer, usage string, err error) int {
	return exitCode(context.Background(), nil, stderr, usage, err)
}

func exitCode(ctx context.Context, logger logging.Logger, stderr io.Writer, usage string, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, common.ErrUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return ExitUsage
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "interrupted")
		return ExitError
	}

	if logger != nil {
		logger.Error(ctx, "run failed", "error", err)
	} else {
		fmt.Fprintln(stderr, err)
	}
	return ExitError
}
