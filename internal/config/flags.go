package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/recruitkit/internal/flagx"
)

// ValueFlags lists the flags that take a value. Commands pass it to
// flagx.Positional to find their positional arguments.
var ValueFlags = []string{"-c", "-config", "-d", "-m", "-r", "-n", "-l", "-s", "-b", "-t", "-v", "-k"}

// parseFlags populates cfg from command-line flags.
//
//	-d string   database DSN
//	-m string   migration link domain
//	-r int      role id of users that need migration
//	-n int      token length
//	-send       actually send emails (default is a dry run)
//	-l string   locales directory (or key prefix root for the dir backend)
//	-s string   source language code
//	-b string   locale backend: dir | s3
//	-t string   translation endpoint
//	-v string   log level
//	-k int      bcrypt cost
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, ValueFlags)
	filtered = append(filtered, flagx.FilterBoolArgs(args, []string{"-send"})...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.Domain, "m", cfg.Domain, "migration link domain")
	fs.IntVar(&cfg.MigrationRoleID, "r", cfg.MigrationRoleID, "role id of users pending migration")
	fs.IntVar(&cfg.TokenLength, "n", cfg.TokenLength, "token length")
	send := fs.Bool("send", !cfg.DryRun, "send emails instead of printing them")
	fs.StringVar(&cfg.LocalesDir, "l", cfg.LocalesDir, "locales directory")
	fs.StringVar(&cfg.SourceLanguage, "s", cfg.SourceLanguage, "source language code")
	fs.StringVar(&cfg.LocaleBackend, "b", cfg.LocaleBackend, "locale backend (dir|s3)")
	fs.StringVar(&cfg.TranslateEndpoint, "t", cfg.TranslateEndpoint, "translation endpoint")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.BcryptCost, "k", cfg.BcryptCost, "bcrypt cost")

	// -c/-config are handled by parseJson; declare them so Parse accepts them.
	fs.String("c", "", "config file")
	fs.String("config", "", "config file")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	cfg.DryRun = !*send
	return nil
}
