// Package passwords replaces plaintext user passwords with bcrypt hashes.
package passwords

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/recruitkit/internal/config"
	"github.com/dmitrijs2005/recruitkit/internal/logging"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/repomanager"
)

type HashReport struct {
	Hashed  int
	Skipped int
}

type Hasher struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	cost        int

	hash func(password []byte, cost int) ([]byte, error)
}

func NewHasher(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *Hasher {
	return &Hasher{
		db:          db,
		repomanager: m,
		logger:      logger,
		cost:        cfg.BcryptCost,
		hash:        bcrypt.GenerateFromPassword,
	}
}

// Run hashes every stored password that is not a bcrypt hash already.
// Each user is updated on its own; the first error stops the run.
func (h *Hasher) Run(ctx context.Context) (*HashReport, error) {
	repo := h.repomanager.Users(h.db)

	creds, err := repo.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	report := &HashReport{}
	for _, c := range creds {
		if IsHashed(c.Password) {
			report.Skipped++
			continue
		}

		hashed, err := h.hash([]byte(c.Password), h.cost)
		if err != nil {
			return report, fmt.Errorf("hash password of user %d: %w", c.UserID, err)
		}
		if err := repo.UpdatePassword(ctx, c.UserID, string(hashed)); err != nil {
			return report, fmt.Errorf("update password of user %d: %w", c.UserID, err)
		}
		report.Hashed++
		h.logger.Info(ctx, "password hashed", "user_id", c.UserID)
	}

	return report, nil
}

// IsHashed reports whether s has the shape of a bcrypt hash.
func IsHashed(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
