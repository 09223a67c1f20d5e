package dto

import "github.com/lightoncampus/backend/internal/app/models"

// CreatePostRequest represents a request to publish a new feed post.
// Content is deliberately not tagged required: blank submissions are a
// no-op at the engine boundary, not a binding failure.
type CreatePostRequest struct {
	Content string  `json:"content"`
	Image   *string `json:"image,omitempty"`
}

// AddCommentRequest represents a request to comment on a post
type AddCommentRequest struct {
	Content string `json:"content"`
}

// DraftPostRequest asks the AI assist to draft a post on a topic
type DraftPostRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// DraftPostResponse carries the AI-drafted text. The draft never touches
// feed state until the user submits it as a post.
type DraftPostResponse struct {
	Draft string `json:"draft"`
}

// PostListResponse wraps a tab-filtered sequence of posts
type PostListResponse struct {
	Posts []models.Post `json:"posts"`
	Tab   string        `json:"tab" example:"all"`
}

// CommentListResponse wraps a post's comments, timestamp ascending
type CommentListResponse struct {
	Comments []models.Comment `json:"comments"`
}

// ShareLinksResponse carries the fixed social-share intents for a post
type ShareLinksResponse struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	WhatsApp string `json:"whatsapp"`
	CopyLink string `json:"copyLink"`
}
