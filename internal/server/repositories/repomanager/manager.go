// Package repomanager hands out repositories bound to a database handle and
// owns schema migrations. Services request repositories per call so the same
// code path works on *sql.DB and inside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/postline/postline/internal/dbx"
	"github.com/postline/postline/internal/server/repositories/likes"
	"github.com/postline/postline/internal/server/repositories/posts"
	"github.com/postline/postline/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Likes(db dbx.DBTX) likes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
