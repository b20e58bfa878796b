package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/dbx"
	"github.com/postline/postline/internal/server/models"
	"github.com/postline/postline/internal/server/repositories/repomanager"
)

// LikeService toggles likes on posts. Both operations run inside a
// transaction so the existence check and the write see the same state.
type LikeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLikeService(db *sql.DB, m repomanager.RepositoryManager) *LikeService {
	return &LikeService{db: db, repomanager: m}
}

// Like records that caller liked postID. The post must exist
// (common.ErrorNotFound) and must not already be liked by the caller
// (common.ErrAlreadyLiked).
func (s *LikeService) Like(ctx context.Context, caller *models.User, postID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		postRepo := s.repomanager.Posts(tx)
		if _, err := postRepo.GetByID(ctx, postID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error fetching post: %w", err)
		}

		likeRepo := s.repomanager.Likes(tx)
		_, err := likeRepo.Get(ctx, postID, caller.ID)
		if err == nil {
			return common.ErrAlreadyLiked
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking like: %w", err)
		}

		if err := likeRepo.Create(ctx, &models.Like{PostID: postID, UserID: caller.ID}); err != nil {
			return fmt.Errorf("error creating like: %w", err)
		}
		return nil
	})
}

// Unlike removes the caller's like from postID. An absent like yields
// common.ErrNotLiked.
func (s *LikeService) Unlike(ctx context.Context, caller *models.User, postID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		likeRepo := s.repomanager.Likes(tx)
		if err := likeRepo.Delete(ctx, postID, caller.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrNotLiked
			}
			return fmt.Errorf("error deleting like: %w", err)
		}
		return nil
	})
}
