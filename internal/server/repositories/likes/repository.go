// Package likes persists per-user post likes.
package likes

import (
	"context"

	"github.com/postline/postline/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, postID, userID string) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, postID, userID string) error
}
