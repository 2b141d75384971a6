// Command addlang creates the locale file for a new language by machine
// translating the source locale, and registers it in the locale manifest.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/app"
	"github.com/dmitrijs2005/recruitkit/internal/cli"
	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/languages"
	"github.com/dmitrijs2005/recruitkit/internal/locales"
	"github.com/dmitrijs2005/recruitkit/internal/localesync"
	"github.com/dmitrijs2005/recruitkit/internal/translate"
)

const usage = `usage: addlang [flags] [language_code]

Prompts for the language code when none is given.
  -l string   locales directory (default src/lib/locales)
  -s string   source language (default en)
  -b string   locale backend: dir | s3 (default dir)
  -v string   log level (default info)`

const prompt = "Enter the target language code (e.g., 'fr' for French)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a, err := app.New("addlang", usage, args, stderr)
	if err != nil {
		return app.Fail(stderr, usage, err)
	}

	ctx, cancel := a.Context()
	defer cancel()

	return a.Exit(ctx, addLanguage(ctx, a, stdin, stdout))
}

func addLanguage(ctx context.Context, a *app.App, stdin io.Reader, stdout io.Writer) error {
	code := a.Arg(0, "")
	if code == "" {
		var err error
		code, err = cli.GetSimpleText(bufio.NewReader(stdin), prompt, stdout)
		if err != nil {
			return fmt.Errorf("read language code: %w", err)
		}
	}

	target, err := languages.Parse(code)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUsage, err)
	}

	store, err := locales.NewStore(ctx, a.Config)
	if err != nil {
		return err
	}

	tr := translate.NewGoogleTranslator(a.Config.TranslateEndpoint, nil)
	report, err := localesync.NewService(store, tr, a.Logger, a.Config).Bootstrap(ctx, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Translation completed, new file created: %s (%s, %d keys)\n", report.File, target.Name(), report.Keys)
	if report.ManifestUpdated {
		fmt.Fprintf(stdout, "Locale configuration updated: %s\n", a.Config.ManifestName)
	}
	return nil
}
