// Command backfill adds every competence name missing from the locale
// files, machine-translated into each file's language.
package main

import (
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/app"
	"github.com/dmitrijs2005/recruitkit/internal/locales"
	"github.com/dmitrijs2005/recruitkit/internal/localesync"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/recruitkit/internal/translate"
)

const usage = `usage: backfill [flags]

Reads DATABASE_URL (or -d) and the locale files under LOCALES_DIR.
  -l string   locales directory (default src/lib/locales)
  -b string   locale backend: dir | s3 (default dir)
  -v string   log level (default info)`

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	a, err := app.New("backfill", usage, args, stderr)
	if err != nil {
		return app.Fail(stderr, usage, err)
	}

	ctx, cancel := a.Context()
	defer cancel()

	return a.Exit(ctx, backfill(ctx, a))
}

func backfill(ctx context.Context, a *app.App) error {
	db, err := a.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	names, err := repomanager.NewPostgresRepositoryManager().Competences(db).ListNames(ctx)
	if err != nil {
		return err
	}
	a.Logger.Info(ctx, "competence names loaded", "count", len(names))

	store, err := locales.NewStore(ctx, a.Config)
	if err != nil {
		return err
	}

	tr := translate.NewGoogleTranslator(a.Config.TranslateEndpoint, nil)
	report, err := localesync.NewService(store, tr, a.Logger, a.Config).Backfill(ctx, names)
	if report != nil {
		a.Logger.Info(ctx, "backfill finished", "updated", len(report.Updated), "up_to_date", len(report.UpToDate))
	}
	return err
}
