// Package posts persists user-authored posts.
package posts

import (
	"context"

	"github.com/postline/postline/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.PostWithLikes, error)
	List(ctx context.Context, limit, offset int, search string) ([]*models.PostWithLikes, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}
