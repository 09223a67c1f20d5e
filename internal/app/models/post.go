package models

import "time"

// PostType classifies feed posts
type PostType string

const (
	PostGeneral      PostType = "general"
	PostAnnouncement PostType = "announcement"
	PostPreaching    PostType = "preaching"
)

// Post defines a feed post. Author fields are denormalized onto the post at
// creation time, matching how the feed renders them. Likes and LikedBy are
// mutated together in the same repository operation so the counter never
// drifts from the set.
type Post struct {
	ID         string    `json:"id" example:"p1"`
	UserID     string    `json:"userId" example:"pastor1"`
	UserName   string    `json:"userName" example:"Pastor Michael"`
	UserAvatar string    `json:"userAvatar"`
	UserRole   RoleType  `json:"userRole" example:"PASTOR"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Likes      int       `json:"likes" example:"45"`
	LikedBy    []string  `json:"likedBy"`
	Comments   int       `json:"comments" example:"12"`
	Type       PostType  `json:"type" example:"announcement"`
	Image      *string   `json:"image,omitempty"`
}

// LikedByUser reports whether userID is in the post's like set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment defines a comment attached to a post by id reference.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId" example:"p1"`
	UserID     string    `json:"userId" example:"u2"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
