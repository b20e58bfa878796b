package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/models"
)

// UserResolver looks up an identity by its stable id. Absence is reported as
// common.ErrorNotFound, not as a generic error.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Guard verifies presented tokens and enforces resource ownership. It holds
// no per-request state; the secret is immutable after construction.
type Guard struct {
	users  UserResolver
	secret []byte
}

func NewGuard(users UserResolver, secretKey string) *Guard {
	return &Guard{users: users, secret: []byte(secretKey)}
}

// Authenticate decodes the presented token and resolves its subject to a
// stored user. A bad token and a valid token for a since-deleted user are
// both reported as common.ErrUnauthenticated, so callers cannot probe for
// account existence. A failing user store is the one distinct outcome,
// reported as common.ErrDependencyUnavailable.
func (g *Guard) Authenticate(ctx context.Context, presentedToken string) (*models.User, error) {
	userID, err := GetUserIDFromToken(presentedToken, g.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %w", common.ErrDependencyUnavailable, err)
	}

	return user, nil
}

// AuthorizeOwner reports common.ErrForbidden unless caller owns the resource.
// Every mutating handler goes through this one comparison.
func (g *Guard) AuthorizeOwner(resourceOwnerID string, caller *models.User) error {
	if caller == nil || caller.ID != resourceOwnerID {
		return common.ErrForbidden
	}
	return nil
}
