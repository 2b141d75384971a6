package tokens

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/recruitkit/internal/config"
	"github.com/dmitrijs2005/recruitkit/internal/logging"
	"github.com/dmitrijs2005/recruitkit/internal/mailer"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
)

// NotifyReport summarises a Notifier run.
type NotifyReport struct {
	Sent   int
	DryRun bool
}

// Notifier emails migration links to users of one role.
//
// With dryRun set (the default in config) every message goes to the
// preview sender and the live sender is never touched.
type Notifier struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	domain      string
	roleID      int
	dryRun      bool
	preview     mailer.Sender
	live        mailer.Sender
}

func NewNotifier(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config, preview, live mailer.Sender) *Notifier {
	return &Notifier{
		db:          db,
		repomanager: m,
		logger:      logger,
		domain:      cfg.Domain,
		roleID:      cfg.MigrationRoleID,
		dryRun:      cfg.DryRun,
		preview:     preview,
		live:        live,
	}
}

func (n *Notifier) Run(ctx context.Context) (*NotifyReport, error) {
	pending, err := n.repomanager.Users(n.db).ListPendingMigrations(ctx, n.roleID)
	if err != nil {
		return nil, fmt.Errorf("list pending migrations: %w", err)
	}

	sender := n.live
	if n.dryRun {
		sender = n.preview
	}
	if sender == nil {
		return nil, fmt.Errorf("no sender configured (dry run: %t)", n.dryRun)
	}

	report := &NotifyReport{DryRun: n.dryRun}
	for _, p := range pending {
		msg := ComposeMigrationMessage(n.domain, p.Email, p.Token)
		if err := sender.Send(ctx, msg); err != nil {
			return report, fmt.Errorf("notify user %d: %w", p.UserID, err)
		}
		report.Sent++
		n.logger.Info(ctx, "migration link sent", "user_id", p.UserID, "dry_run", n.dryRun)
	}

	return report, nil
}

// MigrationURL returns {domain}/migration?token={token}.
func MigrationURL(domain, token string) string {
	return strings.TrimRight(domain, "/") + "/migration?token=" + url.QueryEscape(token)
}

// DomainLabel returns the first dot-separated label of the domain's host,
// e.g. "example" for "https://example.com".
func DomainLabel(domain string) string {
	host := domain
	if u, err := url.Parse(domain); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	host = strings.TrimPrefix(host, "www.")
	label, _, _ := strings.Cut(host, ".")
	return label
}

// ComposeMigrationMessage builds the email inviting a user to finish
// setting up their account.
func ComposeMigrationMessage(domain, email, token string) mailer.Message {
	return mailer.Message{
		To:      email,
		Subject: "Finish setting up your account for " + DomainLabel(domain),
		Body:    "Please follow this link to finish setting up your account: " + MigrationURL(domain, token),
	}
}
