package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

func newChatFixture(gen *stubGenerator, key string) (ChatService, *repositories.Repositories) {
	repos := newSeededRepos()
	svc := NewChatService(
		repos.ChatRepository,
		repos.UserRepository,
		newStubAssist(key, gen),
		zerolog.Nop(),
	)
	return svc, repos
}

func TestListSessionsSearch(t *testing.T) {
	svc, _ := newChatFixture(&stubGenerator{}, "")

	all := svc.ListSessions("")
	require.Len(t, all, 3)
	assert.Equal(t, "chat1", all[0].ID)

	byName := svc.ListSessions("YOUTH")
	require.Len(t, byName, 1)
	assert.Equal(t, "chat2", byName[0].ID)

	byPreview := svc.ListSessions("pray for you")
	require.Len(t, byPreview, 1)
	assert.Equal(t, "chat1", byPreview[0].ID)

	assert.Empty(t, svc.ListSessions("nothing matches this"))
}

func TestOpenSessionClearsUnread(t *testing.T) {
	svc, _ := newChatFixture(&stubGenerator{}, "")

	detail, err := svc.OpenSession("chat2")
	require.NoError(t, err)
	assert.Zero(t, detail.Session.UnreadCount)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, "m2", detail.Messages[0].ID)

	_, err = svc.OpenSession("missing")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSendMessageRejectsBlank(t *testing.T) {
	svc, _ := newChatFixture(&stubGenerator{}, "")

	_, err := svc.SendMessage(context.Background(), "chat1", "u1", "  ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}

func TestSendMessageNonCounselorSessionHasNoReply(t *testing.T) {
	gen := &stubGenerator{text: "never used"}
	svc, _ := newChatFixture(gen, "test-key")

	resp, err := svc.SendMessage(context.Background(), "chat3", "u1", "Thank you pastor!")
	require.NoError(t, err)
	assert.Nil(t, resp.Reply)
	assert.False(t, resp.Typing)
	assert.Zero(t, gen.calls)

	detail, err := svc.OpenSession("chat3")
	require.NoError(t, err)
	assert.Equal(t, "Thank you pastor!", detail.Session.LastMessage)
}

func TestSendMessageCounselorReply(t *testing.T) {
	reply := strings.Repeat("Peace and grace to you. ", 5)
	gen := &stubGenerator{text: reply}
	svc, _ := newChatFixture(gen, "test-key")

	resp, err := svc.SendMessage(context.Background(), "chat1", "u1", "I feel anxious about exams")
	require.NoError(t, err)

	require.NotNil(t, resp.Reply)
	assert.True(t, resp.Reply.IsAI)
	assert.Equal(t, "ai", resp.Reply.SenderID)
	assert.Equal(t, reply, resp.Reply.Content)
	assert.Equal(t, 1, gen.calls)
	assert.False(t, svc.Typing("chat1"))

	detail, err := svc.OpenSession("chat1")
	require.NoError(t, err)
	// Session preview truncates the reply to its first 50 runes
	assert.Equal(t, string([]rune(reply)[:50])+"...", detail.Session.LastMessage)
	require.Len(t, detail.Messages, 3)
	assert.True(t, detail.Messages[2].Timestamp.After(detail.Messages[1].Timestamp))
}

func TestSendMessageCounselorFailureStillReplies(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	svc, _ := newChatFixture(gen, "test-key")

	resp, err := svc.SendMessage(context.Background(), "chat1", "u1", "Hello?")
	require.NoError(t, err)

	require.NotNil(t, resp.Reply)
	assert.True(t, resp.Reply.IsAI)
	assert.Equal(t, "Peace be with you. I am having trouble connecting right now.", resp.Reply.Content)
	// Exactly one attempt, no retry
	assert.Equal(t, 1, gen.calls)
	assert.False(t, svc.Typing("chat1"))
}

func TestSendMessageWithoutCredentialRepliesWithFallback(t *testing.T) {
	gen := &stubGenerator{text: "never used"}
	svc, _ := newChatFixture(gen, "")

	resp, err := svc.SendMessage(context.Background(), "chat1", "u1", "Anyone there?")
	require.NoError(t, err)

	require.NotNil(t, resp.Reply)
	assert.Equal(t,
		"I am unable to connect to the server right now. Please pray and try again later.",
		resp.Reply.Content)
	assert.Zero(t, gen.calls)
	assert.False(t, svc.Typing("chat1"))
}

func TestSendMessageUnknownSession(t *testing.T) {
	svc, _ := newChatFixture(&stubGenerator{}, "")

	_, err := svc.SendMessage(context.Background(), "missing", "u1", "hello")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
