package dto

import "github.com/lightoncampus/backend/internal/app/models"

// SessionListResponse wraps the (optionally searched) session list
type SessionListResponse struct {
	Sessions []models.ChatSession `json:"sessions"`
}

// SessionDetailResponse is returned when a session is opened: the unread
// count has been cleared and the full message history follows.
type SessionDetailResponse struct {
	Session  models.ChatSession   `json:"session"`
	Messages []models.ChatMessage `json:"messages"`
}

// SendMessageRequest represents a message submission
type SendMessageRequest struct {
	Content string `json:"content"`
}

// SendMessageResponse carries the appended message plus, for ai_counselor
// sessions, the counselor reply once the assist call settles.
type SendMessageResponse struct {
	Message models.ChatMessage  `json:"message"`
	Reply   *models.ChatMessage `json:"reply,omitempty"`
	Typing  bool                `json:"typing"`
}

// TypingResponse exposes the transient typing indicator for a session
type TypingResponse struct {
	Typing bool `json:"typing"`
}
