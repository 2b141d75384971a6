// Command tokengen assigns a one-time migration token to every user that
// does not have one yet.
package main

import (
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/app"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/recruitkit/internal/tokens"
)

const usage = `usage: tokengen [flags] <database_url>

The database url may also be given with -d or DATABASE_URL.
  -n int      token length (default 16)
  -v string   log level (default info)
  -c string   JSON config file`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	a, err := app.New("tokengen", usage, args, stderr)
	if err != nil {
		return app.Fail(stderr, usage, err)
	}

	ctx, cancel := a.Context()
	defer cancel()

	return a.Exit(ctx, generate(ctx, a))
}

func generate(ctx context.Context, a *app.App) error {
	a.Config.DatabaseDSN = a.Arg(0, a.Config.DatabaseDSN)
	if err := tokens.ValidateSettings(a.Config); err != nil {
		return err
	}

	db, err := a.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	g := tokens.NewGenerator(db, repomanager.NewPostgresRepositoryManager(), a.Logger, a.Config)
	report, err := g.Run(ctx)
	if report != nil {
		a.Logger.Info(ctx, "token generation finished", "inserted", report.Inserted, "collisions", report.Collisions)
	}
	return err
}
