package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/config"
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/logging"
	"github.com/dmitrijs2005/recruitkit/internal/models"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
)

// GenerateReport summarises a Generator run.
type GenerateReport struct {
	Inserted   int
	Collisions int
}

// Generator assigns a migration token to every user that lacks one.
type Generator struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	length      int
	maxAttempts int

	newToken func(length int) (string, error)
}

func NewGenerator(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *Generator {
	return &Generator{
		db:          db,
		repomanager: m,
		logger:      logger,
		length:      cfg.TokenLength,
		maxAttempts: cfg.TokenMaxAttempts,
		newToken:    common.MakeRandAlphanumString,
	}
}

// Run issues tokens user by user. The first failure aborts the run; tokens
// committed for earlier users are kept.
func (g *Generator) Run(ctx context.Context) (*GenerateReport, error) {
	if err := checkSettings(g.length, g.maxAttempts); err != nil {
		return nil, err
	}

	ids, err := g.repomanager.Users(g.db).ListIDsWithoutToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	g.logger.Info(ctx, "users without token", "count", len(ids))

	report := &GenerateReport{}
	for _, id := range ids {
		collisions, err := g.issue(ctx, id)
		report.Collisions += collisions
		if err != nil {
			return report, fmt.Errorf("generate token for user %d: %w", id, err)
		}
		report.Inserted++
		g.logger.Info(ctx, "token inserted", "user_id", id)
	}

	return report, nil
}

// ValidateSettings checks the token settings in cfg. Errors wrap
// common.ErrUsage.
func ValidateSettings(cfg *config.Config) error {
	return checkSettings(cfg.TokenLength, cfg.TokenMaxAttempts)
}

func checkSettings(length, maxAttempts int) error {
	if length < 1 {
		return fmt.Errorf("%w: token length must be at least 1, got %d", common.ErrUsage, length)
	}
	if maxAttempts < 0 {
		return fmt.Errorf("%w: token max attempts must not be negative, got %d", common.ErrUsage, maxAttempts)
	}
	return nil
}

// issue stores one token for userID inside a transaction, regenerating the
// token while the store reports it as taken.
func (g *Generator) issue(ctx context.Context, userID int64) (int, error) {
	collisions := 0

	err := dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := g.repomanager.MigrationTokens(tx)

		for attempt := 1; g.maxAttempts <= 0 || attempt <= g.maxAttempts; attempt++ {
			token, err := g.newToken(g.length)
			if err != nil {
				return fmt.Errorf("random token: %w", err)
			}

			err = repo.Insert(ctx, models.MigrationToken{UserID: userID, Token: token})
			if err == nil {
				return nil
			}
			if !errors.Is(err, common.ErrTokenTaken) {
				return err
			}

			collisions++
			g.logger.Debug(ctx, "token collision, regenerating", "user_id", userID, "attempt", attempt)
		}

		return common.ErrTooManyCollisions
	})

	return collisions, err
}
