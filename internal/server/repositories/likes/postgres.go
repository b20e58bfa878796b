package likes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/dbx"
	"github.com/postline/postline/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, postID, userID string) (*models.Like, error) {
	query :=
		`SELECT post_id, user_id FROM likes
		 WHERE post_id = $1 AND user_id = $2
		 `

	like := &models.Like{}
	err := r.db.QueryRowContext(ctx, query, postID, userID).Scan(&like.PostID, &like.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return like, nil
}

func (r *PostgresRepository) Create(ctx context.Context, like *models.Like) error {
	query :=
		`INSERT INTO likes (post_id, user_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, like.PostID, like.UserID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, postID, userID string) error {
	query := `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
