package models

// Like marks a post as liked by a user. One row per (post, user) pair.
type Like struct {
	PostID string
	UserID string
}
