// Package repomanager hands out per-entity repositories bound to a DB
// handle (pool or transaction) and runs schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dvelasco/recetario/internal/dbx"
	"github.com/dvelasco/recetario/internal/server/repositories/comments"
	"github.com/dvelasco/recetario/internal/server/repositories/recipes"
	"github.com/dvelasco/recetario/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Recipes(db dbx.DBTX) recipes.Repository
	Comments(db dbx.DBTX) comments.Repository
}
