package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/auth"
	"github.com/postline/postline/internal/server/models"
	"github.com/postline/postline/internal/server/repositories/repomanager"
)

const defaultListLimit = 10

// ownerAuthorizer is the slice of the access guard used by mutating
// operations.
type ownerAuthorizer interface {
	AuthorizeOwner(resourceOwnerID string, caller *models.User) error
}

// PostService implements post CRUD. Update and Delete are gated on ownership:
// the caller must be the identity that created the post.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       ownerAuthorizer
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager, guard *auth.Guard) *PostService {
	return &PostService{db: db, repomanager: m, guard: guard}
}

func (s *PostService) Create(ctx context.Context, caller *models.User, title, content string, published bool) (*models.Post, error) {
	post := &models.Post{
		UserID:    caller.ID,
		Title:     title,
		Content:   content,
		Published: published,
	}

	repo := s.repomanager.Posts(s.db)
	p, err := repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.PostWithLikes, error) {
	repo := s.repomanager.Posts(s.db)
	post, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching post: %w", err)
	}
	return post, nil
}

// List returns posts ordered by creation time, newest first. A non-positive
// limit falls back to the default page size; search filters on title.
func (s *PostService) List(ctx context.Context, limit, offset int, search string) ([]*models.PostWithLikes, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	repo := s.repomanager.Posts(s.db)
	posts, err := repo.List(ctx, limit, offset, search)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

// Update replaces the post's title, content, and published flag. The post is
// fetched first so ownership is checked before any write.
func (s *PostService) Update(ctx context.Context, caller *models.User, id, title, content string, published bool) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching post: %w", err)
	}

	if err := s.guard.AuthorizeOwner(existing.UserID, caller); err != nil {
		return nil, err
	}

	post := &models.Post{ID: id, Title: title, Content: content, Published: published}
	updated, err := repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, caller *models.User, id string) error {
	repo := s.repomanager.Posts(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error fetching post: %w", err)
	}

	if err := s.guard.AuthorizeOwner(existing.UserID, caller); err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
