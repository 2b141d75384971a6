// Package repomanager provides a concrete RepositoryManager for PostgreSQL.
package repomanager

import (
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/competences"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/migrationtokens"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// MigrationTokens returns a migrationtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) MigrationTokens(db dbx.DBTX) migrationtokens.Repository {
	return migrationtokens.NewPostgresRepository(db)
}

// Competences returns a competences.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Competences(db dbx.DBTX) competences.Repository {
	return competences.NewPostgresRepository(db)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
