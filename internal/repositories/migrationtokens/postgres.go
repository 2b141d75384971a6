package migrationtokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on the unique index on token: a colliding token is
// skipped by ON CONFLICT and reported as common.ErrTokenTaken.
func (r *PostgresRepository) Insert(ctx context.Context, t models.MigrationToken) error {
	query :=
		`INSERT INTO migration_token (person_id, token)
		 VALUES ($1, $2)
		 ON CONFLICT (token) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, t.UserID, t.Token)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, pgErr.ConstraintName)
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrTokenTaken
	}

	return nil
}
