package posts

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

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (user_id, title, content, published)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.UserID, post.Title, post.Content, post.Published).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.PostWithLikes, error) {
	query :=
		`SELECT p.id, p.user_id, p.title, p.content, p.published, p.created_at, COUNT(l.post_id) AS likes
		 FROM posts p
		 LEFT JOIN likes l ON l.post_id = p.id
		 WHERE p.id = $1
		 GROUP BY p.id
		 `

	post := &models.PostWithLikes{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.Likes)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int, search string) ([]*models.PostWithLikes, error) {
	query :=
		`SELECT p.id, p.user_id, p.title, p.content, p.published, p.created_at, COUNT(l.post_id) AS likes
		 FROM posts p
		 LEFT JOIN likes l ON l.post_id = p.id
		 WHERE p.title ILIKE '%' || $3 || '%'
		 GROUP BY p.id
		 ORDER BY p.created_at DESC
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset, search)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.PostWithLikes
	for rows.Next() {
		post := &models.PostWithLikes{}
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Content,
			&post.Published, &post.CreatedAt, &post.Likes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`UPDATE posts SET title = $2, content = $3, published = $4
		 WHERE id = $1
		 RETURNING user_id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.Published).Scan(&post.UserID, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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
