// Package migrationtokens declares the repository contract for the
// migration_token table.
package migrationtokens

import (
	"context"

	"github.com/dmitrijs2005/recruitkit/internal/models"
)

// Repository stores migration tokens.
type Repository interface {
	// Insert atomically stores t. It returns common.ErrTokenTaken when the
	// token string is already used by another row, and
	// common.ErrorAlreadyExists when any other unique constraint rejects the
	// row (for example a second token for the same user).
	Insert(ctx context.Context, t models.MigrationToken) error
}
