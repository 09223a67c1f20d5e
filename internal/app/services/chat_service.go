package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
	"github.com/lightoncampus/backend/internal/pkg/assist"
)

// Counselor identity for AI replies
const (
	counselorID   = "ai"
	counselorName = "AI Counselor"

	// replyPreviewRunes bounds the session preview of a counselor reply.
	replyPreviewRunes = 50
)

// ChatService defines the interface for chat operations
type ChatService interface {
	ListSessions(query string) []models.ChatSession
	OpenSession(sessionID string) (dto.SessionDetailResponse, error)
	SendMessage(ctx context.Context, sessionID, senderID, content string) (dto.SendMessageResponse, error)
	Typing(sessionID string) bool
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	chatRepo *repositories.ChatRepository
	userRepo *repositories.UserRepository
	assist   *assist.Client
	logger   zerolog.Logger

	// Transient counselor-reply state. Each send against an ai_counselor
	// session takes a fresh token; only the holder of the latest token may
	// append its reply and clear the typing indicator, so a slow reply
	// superseded by a newer send cannot write stale state.
	mu     sync.Mutex
	typing map[string]bool
	tokens map[string]uint64
}

// NewChatService creates a new ChatService
func NewChatService(
	chatRepo *repositories.ChatRepository,
	userRepo *repositories.UserRepository,
	assistClient *assist.Client,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		chatRepo: chatRepo,
		userRepo: userRepo,
		assist:   assistClient,
		logger:   logger,
		typing:   make(map[string]bool),
		tokens:   make(map[string]uint64),
	}
}

// ListSessions returns sessions matching the query: a case-insensitive
// substring of the first participant's name or the lastMessage preview.
// A blank query returns every session; order is always preserved.
func (s *chatServiceImpl) ListSessions(query string) []models.ChatSession {
	sessions := s.chatRepo.ListSessions()

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return sessions
	}

	filtered := make([]models.ChatSession, 0, len(sessions))
	for _, session := range sessions {
		var participantName string
		if len(session.Participants) > 0 {
			participantName = strings.ToLower(session.Participants[0].Name)
		}
		if strings.Contains(participantName, query) ||
			strings.Contains(strings.ToLower(session.LastMessage), query) {
			filtered = append(filtered, session)
		}
	}
	return filtered
}

// OpenSession marks a session read and returns it with its full history.
func (s *chatServiceImpl) OpenSession(sessionID string) (dto.SessionDetailResponse, error) {
	session, err := s.chatRepo.ClearUnread(sessionID)
	if err != nil {
		return dto.SessionDetailResponse{}, err
	}
	return dto.SessionDetailResponse{
		Session:  session,
		Messages: s.chatRepo.Messages(sessionID),
	}, nil
}

// SendMessage appends the sender's message and, for ai_counselor sessions,
// requests a counselor reply. The assist client substitutes fallback text
// for every failure, so a reply message is always appended unless a newer
// send supersedes this one; the typing indicator is cleared whenever the
// latest outstanding call settles.
func (s *chatServiceImpl) SendMessage(ctx context.Context, sessionID, senderID, content string) (dto.SendMessageResponse, error) {
	if strings.TrimSpace(content) == "" {
		return dto.SendMessageResponse{}, apperrors.ErrEmptyContent
	}

	sender, err := s.userRepo.GetByID(senderID)
	if err != nil {
		return dto.SendMessageResponse{}, err
	}

	session, err := s.chatRepo.GetSession(sessionID)
	if err != nil {
		return dto.SendMessageResponse{}, err
	}

	message, err := s.chatRepo.AppendMessage(models.ChatMessage{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Content:    content,
		Timestamp:  time.Now(),
	}, content)
	if err != nil {
		return dto.SendMessageResponse{}, err
	}

	response := dto.SendMessageResponse{Message: message}
	if session.Type != models.SessionAICounselor {
		return response, nil
	}

	token := s.beginReply(sessionID)
	replyText := s.assist.Generate(ctx, assist.PromptCounsel, assist.Params{Message: content})

	if !s.settleReply(sessionID, token) {
		// A newer send took over this session while we waited; its settle
		// owns the indicator and the reply slot.
		s.logger.Debug().Str("sessionID", sessionID).Msg("Counselor reply superseded, dropping")
		response.Typing = s.Typing(sessionID)
		return response, nil
	}

	reply, err := s.chatRepo.AppendMessage(models.ChatMessage{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		SenderID:   counselorID,
		SenderName: counselorName,
		Content:    replyText,
		Timestamp:  time.Now(),
		IsAI:       true,
	}, truncateRunes(replyText, replyPreviewRunes)+"...")
	if err != nil {
		return dto.SendMessageResponse{}, err
	}

	response.Reply = &reply
	return response, nil
}

// Typing reports the transient counselor typing indicator for a session.
func (s *chatServiceImpl) Typing(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing[sessionID]
}

func (s *chatServiceImpl) beginReply(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionID]++
	s.typing[sessionID] = true
	return s.tokens[sessionID]
}

// settleReply reports whether the token is still current. The current
// holder clears the typing indicator; a stale holder leaves it to the
// newer call.
func (s *chatServiceImpl) settleReply(sessionID string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens[sessionID] != token {
		return false
	}
	s.typing[sessionID] = false
	return true
}
