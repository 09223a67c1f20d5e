package repositories

import (
	"sync"
	"time"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

// ChatRepository owns chat sessions and their per-session message lists.
// The session's lastMessage preview moves with the message list in the
// same locked operation.
type ChatRepository struct {
	mu           sync.RWMutex
	sessions     []*models.ChatSession // insertion order
	sessionsByID map[string]*models.ChatSession
	messages     map[string][]*models.ChatMessage // sessionID -> insertion order
}

// NewChatRepository creates an empty chat repository
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		sessionsByID: make(map[string]*models.ChatSession),
		messages:     make(map[string][]*models.ChatMessage),
	}
}

// InsertSession adds a session to the list.
func (r *ChatRepository) InsertSession(session models.ChatSession) models.ChatSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := session
	stored.Participants = append([]models.User(nil), session.Participants...)
	r.sessions = append(r.sessions, &stored)
	r.sessionsByID[stored.ID] = &stored
	return cloneSession(&stored)
}

// GetSession returns the session with the given id
func (r *ChatRepository) GetSession(id string) (models.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessionsByID[id]
	if !ok {
		return models.ChatSession{}, apperrors.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// ListSessions returns all sessions in their original order.
func (r *ChatRepository) ListSessions() []models.ChatSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ChatSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		out = append(out, cloneSession(session))
	}
	return out
}

// ClearUnread resets the session's unread counter to zero.
func (r *ChatRepository) ClearUnread(id string) (models.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessionsByID[id]
	if !ok {
		return models.ChatSession{}, apperrors.ErrSessionNotFound
	}
	session.UnreadCount = 0
	return cloneSession(session), nil
}

// AppendMessage stores a message and updates the session's lastMessage
// preview in the same operation. Timestamps are forced strictly
// increasing within the session: a message arriving with a timestamp at
// or before the previous one is nudged one millisecond past it.
func (r *ChatRepository) AppendMessage(message models.ChatMessage, preview string) (models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessionsByID[message.SessionID]
	if !ok {
		return models.ChatMessage{}, apperrors.ErrSessionNotFound
	}

	existing := r.messages[message.SessionID]
	if n := len(existing); n > 0 {
		last := existing[n-1].Timestamp
		if !message.Timestamp.After(last) {
			message.Timestamp = last.Add(time.Millisecond)
		}
	}

	stored := message
	r.messages[message.SessionID] = append(existing, &stored)
	session.LastMessage = preview
	return stored, nil
}

// Messages returns a session's messages in insertion order.
func (r *ChatRepository) Messages(sessionID string) []models.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[sessionID]
	out := make([]models.ChatMessage, 0, len(stored))
	for _, message := range stored {
		out = append(out, *message)
	}
	return out
}

func cloneSession(s *models.ChatSession) models.ChatSession {
	out := *s
	out.Participants = append([]models.User(nil), s.Participants...)
	return out
}
