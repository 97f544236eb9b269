// Package repomanager binds repositories to a database handle. Services hold
// a manager and a *sql.DB and ask for repositories per call, passing either
// the DB itself or a transaction started with dbx.WithTx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/repositories/blocks"
	"github.com/remindhq/remind/internal/server/repositories/notes"
	"github.com/remindhq/remind/internal/server/repositories/users"
	"github.com/remindhq/remind/internal/server/repositories/workspaces"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Workspaces(db dbx.DBTX) workspaces.Repository
	Notes(db dbx.DBTX) notes.Repository
	Blocks(db dbx.DBTX) blocks.Repository
}
