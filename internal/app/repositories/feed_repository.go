package repositories

import (
	"sync"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

// FeedRepository owns posts and their comments. The derived fields
// (post.Likes, post.Comments) are recomputed inside the same locked
// mutation that changes their source collection, so they cannot drift.
type FeedRepository struct {
	mu           sync.RWMutex
	posts        []*models.Post // most-recent-first
	postsByID    map[string]*models.Post
	comments     []*models.Comment // timestamp ascending
	commentsByID map[string]*models.Comment
}

// NewFeedRepository creates an empty feed repository
func NewFeedRepository() *FeedRepository {
	return &FeedRepository{
		postsByID:    make(map[string]*models.Post),
		commentsByID: make(map[string]*models.Comment),
	}
}

// InsertPost prepends a post to the feed (most-recent-first order).
func (r *FeedRepository) InsertPost(post models.Post) models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := post
	stored.LikedBy = append([]string(nil), post.LikedBy...)
	r.posts = append([]*models.Post{&stored}, r.posts...)
	r.postsByID[stored.ID] = &stored
	return clonePost(&stored)
}

// GetPost returns the post with the given id
func (r *FeedRepository) GetPost(id string) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.postsByID[id]
	if !ok {
		return models.Post{}, apperrors.ErrPostNotFound
	}
	return clonePost(post), nil
}

// ListPosts returns the feed, optionally filtered to one post type.
func (r *FeedRepository) ListPosts(postType *models.PostType) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		if postType != nil && post.Type != *postType {
			continue
		}
		out = append(out, clonePost(post))
	}
	return out
}

// ToggleLike flips userID's membership in the post's like set. The counter
// moves with the set in the same operation: +1 on add, -1 on remove,
// floored at zero.
func (r *FeedRepository) ToggleLike(postID, userID string) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.postsByID[postID]
	if !ok {
		return models.Post{}, apperrors.ErrPostNotFound
	}

	removed := false
	for i, id := range post.LikedBy {
		if id == userID {
			post.LikedBy = append(post.LikedBy[:i], post.LikedBy[i+1:]...)
			removed = true
			break
		}
	}

	if removed {
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}
	return clonePost(post), nil
}

// InsertComment appends a comment and bumps the parent post's comment
// count in the same operation. The parent must exist.
func (r *FeedRepository) InsertComment(comment models.Comment) (models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.postsByID[comment.PostID]
	if !ok {
		return models.Comment{}, apperrors.ErrPostNotFound
	}

	stored := comment
	r.comments = append(r.comments, &stored)
	r.commentsByID[stored.ID] = &stored
	post.Comments++
	return stored, nil
}

// GetComment returns the comment with the given id
func (r *FeedRepository) GetComment(id string) (models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.commentsByID[id]
	if !ok {
		return models.Comment{}, apperrors.ErrCommentNotFound
	}
	return *comment, nil
}

// DeleteComment removes a comment and decrements the parent post's count,
// floored at zero.
func (r *FeedRepository) DeleteComment(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.commentsByID[id]
	if !ok {
		return apperrors.ErrCommentNotFound
	}

	delete(r.commentsByID, id)
	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			break
		}
	}

	if post, ok := r.postsByID[comment.PostID]; ok && post.Comments > 0 {
		post.Comments--
	}
	return nil
}

// CommentsForPost returns a post's comments in timestamp-ascending order.
func (r *FeedRepository) CommentsForPost(postID string) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			out = append(out, *comment)
		}
	}
	return out
}

func clonePost(p *models.Post) models.Post {
	out := *p
	out.LikedBy = append([]string(nil), p.LikedBy...)
	out.Image = cloneStringPtr(p.Image)
	return out
}
