package services

import (
	"context"
	"database/sql"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/dbx"
	"github.com/postline/postline/internal/server/models"
	"github.com/postline/postline/internal/server/repositories/likes"
	"github.com/postline/postline/internal/server/repositories/posts"
	"github.com/postline/postline/internal/server/repositories/users"
)

// ---- fakes shared by the service tests ----

type fakeUserRepo struct {
	createResp *models.User
	createErr  error

	byEmail    map[string]*models.User
	byEmailErr error

	byID    map[string]*models.User
	byIDErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResp != nil {
		return f.createResp, nil
	}
	user.ID = "u-new"
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakePostRepo struct {
	createErr error

	byID    map[string]*models.PostWithLikes
	byIDErr error

	listResp []*models.PostWithLikes
	listErr  error

	gotLimit  int
	gotOffset int
	gotSearch string

	updateErr  error
	deleteErr  error
	deletedIDs []string
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	post.ID = "p-new"
	return post, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.PostWithLikes, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePostRepo) List(ctx context.Context, limit, offset int, search string) ([]*models.PostWithLikes, error) {
	f.gotLimit, f.gotOffset, f.gotSearch = limit, offset, search
	return f.listResp, f.listErr
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return post, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeLikeRepo struct {
	existing map[string]bool // key: postID + "/" + userID
	getErr   error

	createErr error
	created   []*models.Like

	deleteErr error
	deleted   []string
}

func (f *fakeLikeRepo) Get(ctx context.Context, postID, userID string) (*models.Like, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.existing[postID+"/"+userID] {
		return &models.Like{PostID: postID, UserID: userID}, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *models.Like) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, like)
	return nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, postID, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if !f.existing[postID+"/"+userID] {
		return common.ErrorNotFound
	}
	f.deleted = append(f.deleted, postID+"/"+userID)
	return nil
}

type fakeRepoManager struct {
	users *fakeUserRepo
	posts *fakePostRepo
	likes *fakeLikeRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Posts(db dbx.DBTX) posts.Repository { return m.posts }
func (m *fakeRepoManager) Likes(db dbx.DBTX) likes.Repository { return m.likes }
func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
