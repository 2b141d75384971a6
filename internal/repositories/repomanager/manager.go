package repomanager

import (
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/competences"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/migrationtokens"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs against a *sql.DB or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	MigrationTokens(db dbx.DBTX) migrationtokens.Repository
	Competences(db dbx.DBTX) competences.Repository
}
