package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophdrive/internal/dbx"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/files"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or an
// open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Files(db dbx.DBTX) files.Repository
}
