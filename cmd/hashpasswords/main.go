// Command hashpasswords replaces stored plaintext passwords with bcrypt
// hashes. Passwords that are already hashed are left alone.
package main

import (
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/app"
	"github.com/dmitrijs2005/recruitkit/internal/passwords"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
)

const usage = `usage: hashpasswords [flags] [database_url]

The database url defaults to DATABASE_URL.
  -k int      bcrypt cost (default 10)
  -v string   log level (default info)`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	a, err := app.New("hashpasswords", usage, args, stderr)
	if err != nil {
		return app.Fail(stderr, usage, err)
	}

	ctx, cancel := a.Context()
	defer cancel()

	return a.Exit(ctx, hash(ctx, a))
}

func hash(ctx context.Context, a *app.App) error {
	a.Config.DatabaseDSN = a.Arg(0, a.Config.DatabaseDSN)

	db, err := a.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := passwords.NewHasher(db, repomanager.NewPostgresRepositoryManager(), a.Logger, a.Config).Run(ctx)
	if report != nil {
		a.Logger.Info(ctx, "finished hashing passwords", "hashed", report.Hashed, "skipped", report.Skipped)
	}
	return err
}
