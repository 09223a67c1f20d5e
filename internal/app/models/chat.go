package models

import "time"

// SessionType classifies chat sessions
type SessionType string

const (
	SessionPersonal    SessionType = "personal"
	SessionGroup       SessionType = "group"
	SessionAICounselor SessionType = "ai_counselor"
)

// ChatSession defines a conversation. LastMessage is a denormalized preview
// of the newest message and is updated in the same repository operation that
// appends the message.
type ChatSession struct {
	ID           string      `json:"id" example:"chat1"`
	Participants []User      `json:"participants"`
	LastMessage  string      `json:"lastMessage"`
	UnreadCount  int         `json:"unreadCount" example:"1"`
	Type         SessionType `json:"type" example:"ai_counselor"`
}

// ChatMessage defines one message within a session. Messages are never
// edited or deleted; timestamps are strictly increasing per session.
type ChatMessage struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId" example:"chat1"`
	SenderID   string    `json:"senderId" example:"u1"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsAI       bool      `json:"isAi,omitempty"`
}
