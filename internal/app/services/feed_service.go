package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
	"github.com/lightoncampus/backend/internal/pkg/assist"
)

// Feed tabs
const (
	TabAll           = "all"
	TabAnnouncements = "announcements"
	TabPreachings    = "preachings"
)

// FeedService defines the interface for community feed operations
type FeedService interface {
	ListPosts(tab string) ([]models.Post, error)
	CreatePost(authorID, content string, image *string) (models.Post, error)
	ToggleLike(postID, userID string) (models.Post, error)
	AddComment(postID, authorID, content string) (models.Comment, error)
	DeleteComment(commentID, requesterID string) error
	CommentsForPost(postID string) ([]models.Comment, error)
	DraftPost(ctx context.Context, authorID, topic string) (string, error)
	ShareLinks(postID string) (dto.ShareLinksResponse, error)
}

// feedServiceImpl implements FeedService
type feedServiceImpl struct {
	feedRepo  *repositories.FeedRepository
	userRepo  *repositories.UserRepository
	assist    *assist.Client
	publicURL string
	logger    zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	feedRepo *repositories.FeedRepository,
	userRepo *repositories.UserRepository,
	assistClient *assist.Client,
	publicURL string,
	logger zerolog.Logger,
) FeedService {
	return &feedServiceImpl{
		feedRepo:  feedRepo,
		userRepo:  userRepo,
		assist:    assistClient,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		logger:    logger,
	}
}

// ListPosts returns the feed filtered by tab.
func (s *feedServiceImpl) ListPosts(tab string) ([]models.Post, error) {
	switch tab {
	case "", TabAll:
		return s.feedRepo.ListPosts(nil), nil
	case TabAnnouncements:
		t := models.PostAnnouncement
		return s.feedRepo.ListPosts(&t), nil
	case TabPreachings:
		t := models.PostPreaching
		return s.feedRepo.ListPosts(&t), nil
	default:
		return nil, apperrors.NewBadRequestError("unknown feed tab: " + tab)
	}
}

// CreatePost publishes a new post at the top of the feed. Blank content is
// rejected; a pastor's post is published as a preaching, everyone else's
// as general.
func (s *feedServiceImpl) CreatePost(authorID, content string, image *string) (models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return models.Post{}, apperrors.ErrEmptyContent
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return models.Post{}, err
	}

	postType := models.PostGeneral
	if author.Role == models.RolePastor {
		postType = models.PostPreaching
	}

	post := models.Post{
		ID:         uuid.New().String(),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		UserRole:   author.Role,
		Content:    content,
		Timestamp:  time.Now(),
		Likes:      0,
		LikedBy:    []string{},
		Comments:   0,
		Type:       postType,
		Image:      image,
	}

	created := s.feedRepo.InsertPost(post)
	s.logger.Debug().Str("postID", created.ID).Str("type", string(created.Type)).Msg("Post created")
	return created, nil
}

// ToggleLike flips the caller's like on a post.
func (s *feedServiceImpl) ToggleLike(postID, userID string) (models.Post, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return models.Post{}, err
	}
	return s.feedRepo.ToggleLike(postID, userID)
}

// AddComment appends a comment to a post. Blank content is rejected.
func (s *feedServiceImpl) AddComment(postID, authorID, content string) (models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return models.Comment{}, apperrors.ErrEmptyContent
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:         uuid.New().String(),
		PostID:     postID,
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Content:    content,
		Timestamp:  time.Now(),
	}
	return s.feedRepo.InsertComment(comment)
}

// DeleteComment removes a comment; only its author may do so.
func (s *feedServiceImpl) DeleteComment(commentID, requesterID string) error {
	comment, err := s.feedRepo.GetComment(commentID)
	if err != nil {
		return err
	}
	if comment.UserID != requesterID {
		return apperrors.NewForbiddenError("Only the comment author can delete it")
	}
	return s.feedRepo.DeleteComment(commentID)
}

// CommentsForPost returns a post's comments, oldest first.
func (s *feedServiceImpl) CommentsForPost(postID string) ([]models.Comment, error) {
	if _, err := s.feedRepo.GetPost(postID); err != nil {
		return nil, err
	}
	return s.feedRepo.CommentsForPost(postID), nil
}

// DraftPost asks the AI assist to draft a post on a topic. The draft is
// advisory: feed state is untouched until the user submits it.
func (s *feedServiceImpl) DraftPost(ctx context.Context, authorID, topic string) (string, error) {
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return "", err
	}
	draft := s.assist.Generate(ctx, assist.PromptPostDraft, assist.Params{
		Topic: topic,
		Role:  string(author.Role),
	})
	return draft, nil
}

// ShareLinks builds the fixed social-share intents for a post.
func (s *feedServiceImpl) ShareLinks(postID string) (dto.ShareLinksResponse, error) {
	post, err := s.feedRepo.GetPost(postID)
	if err != nil {
		return dto.ShareLinksResponse{}, err
	}

	postURL := s.publicURL + "/posts/" + post.ID
	text := post.Content

	return dto.ShareLinksResponse{
		Twitter:  "https://twitter.com/intent/tweet?text=" + url.QueryEscape(text) + "&url=" + url.QueryEscape(postURL),
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(postURL),
		WhatsApp: "https://wa.me/?text=" + url.QueryEscape(text+" "+postURL),
		CopyLink: postURL,
	}, nil
}
