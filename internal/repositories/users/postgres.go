package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListIDsWithoutToken(ctx context.Context) ([]int64, error) {
	query :=
		`SELECT p.person_id FROM person AS p
		 LEFT JOIN migration_token AS m ON m.person_id = p.person_id
		 WHERE m.person_id IS NULL
		 ORDER BY p.person_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}

func (r *PostgresRepository) ListPendingMigrations(ctx context.Context, roleID int) ([]models.PendingMigration, error) {
	query :=
		`SELECT p.person_id, p.email, m.token FROM person AS p
		 JOIN migration_token AS m ON p.person_id = m.person_id
		 WHERE p.role_id = $1
		 ORDER BY p.person_id
		 `

	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.PendingMigration
	for rows.Next() {
		var pm models.PendingMigration
		if err := rows.Scan(&pm.UserID, &pm.Email, &pm.Token); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	query :=
		`SELECT person_id, password FROM person
		 WHERE password IS NOT NULL
		 ORDER BY person_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Credential
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.UserID, &c.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID int64, password string) error {
	query :=
		`UPDATE person SET password = $1
		 WHERE person_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, password, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
