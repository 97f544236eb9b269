package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/remindhq/remind/internal/dbx"
	"github.com/remindhq/remind/internal/server/migrations"
	"github.com/remindhq/remind/internal/server/repositories/blocks"
	"github.com/remindhq/remind/internal/server/repositories/notes"
	"github.com/remindhq/remind/internal/server/repositories/users"
	"github.com/remindhq/remind/internal/server/repositories/workspaces"
)

var gooseUpContext = goose.UpContext

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Workspaces(db dbx.DBTX) workspaces.Repository {
	return workspaces.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Blocks(db dbx.DBTX) blocks.Repository {
	return blocks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
