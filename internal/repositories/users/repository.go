// Package users declares the repository contract for reading person
// records and their credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/recruitkit/internal/models"
)

type Repository interface {
	// ListIDsWithoutToken returns ids of users that have no migration token yet.
	ListIDsWithoutToken(ctx context.Context) ([]int64, error)

	// ListPendingMigrations returns email/token pairs for users with roleID.
	ListPendingMigrations(ctx context.Context, roleID int) ([]models.PendingMigration, error)

	// ListCredentials returns users that have a non-null password.
	ListCredentials(ctx context.Context) ([]models.Credential, error)

	// UpdatePassword replaces the stored password of userID.
	UpdatePassword(ctx context.Context, userID int64, password string) error
}
