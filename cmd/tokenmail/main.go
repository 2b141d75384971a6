// Command tokenmail emails each user pending migration a link carrying
// their token. It only prints the messages unless -send is given.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recruitkit/internal/app"
	"github.com/dmitrijs2005/recruitkit/internal/cli"
	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/mailer"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/recruitkit/internal/tokens"
)

const usage = `usage: tokenmail [flags] <database_url> <domain>

  -send       send the emails through SMTP_ADDR (default: print them)
  -r int      role id of users pending migration (default 2)
  -v string   log level (default info)
  -c string   JSON config file`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a, err := app.New("tokenmail", usage, args, stderr)
	if err != nil {
		return app.Fail(stderr, usage, err)
	}

	ctx, cancel := a.Context()
	defer cancel()

	return a.Exit(ctx, notify(ctx, a, stdout, stderr))
}

func notify(ctx context.Context, a *app.App, stdout, stderr io.Writer) error {
	cfg := a.Config
	cfg.DatabaseDSN = a.Arg(0, cfg.DatabaseDSN)
	cfg.Domain = a.Arg(1, cfg.Domain)
	if cfg.Domain == "" {
		return fmt.Errorf("%w: domain is required", common.ErrUsage)
	}

	var live mailer.Sender
	if !cfg.DryRun {
		if cfg.SMTPUser != "" && cfg.SMTPPassword == "" && cli.Interactive() {
			pw, err := cli.GetPassword("SMTP password for "+cfg.SMTPUser, stderr)
			if err != nil {
				return fmt.Errorf("read smtp password: %w", err)
			}
			cfg.SMTPPassword = string(pw)
			common.WipeBytes(pw)
		}
		live = mailer.NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPassword)
	}

	db, err := a.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	n := tokens.NewNotifier(db, repomanager.NewPostgresRepositoryManager(), a.Logger, cfg, mailer.NewConsoleSender(stdout), live)
	report, err := n.Run(ctx)
	if report != nil {
		a.Logger.Info(ctx, "notification finished", "sent", report.Sent, "dry_run", report.DryRun)
	}
	return err
}
