package domain

// Post represents a post fetched from the upstream provider.
// Comments is populated only when the caller asked for them to be embedded.
type Post struct {
	UserID   int64     `json:"userId"`
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Comments []Comment `json:"comments,omitempty"`
}

// Comment represents a comment on a post.
type Comment struct {
	PostID int64  `json:"postId"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}
