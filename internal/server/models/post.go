package models

import "time"

// Post is a user-authored entry. UserID is the owning identity; only the
// owner may update or delete the post.
type Post struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Published bool
	CreatedAt time.Time
}

// PostWithLikes is a read-model row: the post plus its like count.
type PostWithLikes struct {
	Post
	Likes int64
}
