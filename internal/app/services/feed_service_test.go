package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

func newFeedFixture(gen *stubGenerator) (FeedService, *repositories.Repositories) {
	repos := newSeededRepos()
	svc := NewFeedService(
		repos.FeedRepository,
		repos.UserRepository,
		newStubAssist("", gen),
		"https://lightoncampus.app",
		zerolog.Nop(),
	)
	return svc, repos
}

func TestListPostsTabs(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	all, err := svc.ListPosts(TabAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent first
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p3", all[2].ID)

	announcements, err := svc.ListPosts(TabAnnouncements)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, "p1", announcements[0].ID)

	preachings, err := svc.ListPosts(TabPreachings)
	require.NoError(t, err)
	require.Len(t, preachings, 1)
	assert.Equal(t, "p3", preachings[0].ID)

	_, err = svc.ListPosts("trending")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreatePostRejectsBlankContent(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	_, err := svc.CreatePost("u1", "   ", nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)

	posts, err := svc.ListPosts(TabAll)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestCreatePostTypeFollowsAuthorRole(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	memberPost, err := svc.CreatePost("u1", "Grateful for today", nil)
	require.NoError(t, err)
	assert.Equal(t, models.PostGeneral, memberPost.Type)
	assert.Zero(t, memberPost.Likes)
	assert.Empty(t, memberPost.LikedBy)

	pastorPost, err := svc.CreatePost("pastor1", "A word for the week", nil)
	require.NoError(t, err)
	assert.Equal(t, models.PostPreaching, pastorPost.Type)

	posts, err := svc.ListPosts(TabAll)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, pastorPost.ID, posts[0].ID)
	assert.Equal(t, memberPost.ID, posts[1].ID)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	liked, err := svc.ToggleLike("p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 46, liked.Likes)
	assert.True(t, liked.LikedByUser("u1"))

	unliked, err := svc.ToggleLike("p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 45, unliked.Likes)
	assert.False(t, unliked.LikedByUser("u1"))
}

func TestToggleLikeExistingLikerDecrements(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	// u2 is already in the seeded liker set for p1
	post, err := svc.ToggleLike("p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 44, post.Likes)
	assert.False(t, post.LikedByUser("u2"))
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	_, err := svc.ToggleLike("nope", "u1")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestAddCommentBumpsCount(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	comment, err := svc.AddComment("p2", "u1", "So true!")
	require.NoError(t, err)
	assert.Equal(t, "u1", comment.UserID)

	posts, err := svc.ListPosts(TabAll)
	require.NoError(t, err)
	assert.Equal(t, 6, posts[1].Comments)

	comments, err := svc.CommentsForPost("p2")
	require.NoError(t, err)
	require.NotEmpty(t, comments)
	assert.Equal(t, comment.ID, comments[len(comments)-1].ID)
}

func TestAddCommentRejectsBlank(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	_, err := svc.AddComment("p2", "u1", "\t ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	comment, err := svc.AddComment("p2", "u1", "Deleting this later")
	require.NoError(t, err)

	err = svc.DeleteComment(comment.ID, "u2")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteComment(comment.ID, "u1"))

	posts, err := svc.ListPosts(TabAll)
	require.NoError(t, err)
	assert.Equal(t, 5, posts[1].Comments)
}

func TestDraftPostWithoutCredential(t *testing.T) {
	gen := &stubGenerator{text: "never used"}
	svc, _ := newFeedFixture(gen)

	draft, err := svc.DraftPost(context.Background(), "u1", "Gratitude")
	require.NoError(t, err)
	assert.Equal(t, "Please set API Key.", draft)
	assert.Zero(t, gen.calls)
}

func TestShareLinks(t *testing.T) {
	svc, _ := newFeedFixture(&stubGenerator{})

	links, err := svc.ShareLinks("p1")
	require.NoError(t, err)

	assert.Equal(t, "https://lightoncampus.app/posts/p1", links.CopyLink)
	assert.True(t, strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?text="))
	assert.True(t, strings.HasPrefix(links.Facebook, "https://www.facebook.com/sharer/sharer.php?u="))
	assert.True(t, strings.HasPrefix(links.WhatsApp, "https://wa.me/?text="))
	assert.Contains(t, links.Twitter, "url=https%3A%2F%2Flightoncampus.app%2Fposts%2Fp1")

	_, err = svc.ShareLinks("missing")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}
