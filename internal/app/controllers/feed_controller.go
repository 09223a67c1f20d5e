package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/services"
	"github.com/lightoncampus/backend/internal/middleware"
)

// FeedController handles community feed endpoints
type FeedController struct {
	feedService services.FeedService
	logger      zerolog.Logger
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService, logger zerolog.Logger) *FeedController {
	return &FeedController{
		feedService: feedService,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary List feed posts
// @Description Returns the feed, most recent first, filtered by tab
// @Tags feed
// @Produce json
// @Param tab query string false "Feed tab" Enums(all, announcements, preachings) default(all)
// @Success 200 {object} dto.APIResponse{data=dto.PostListResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /feed/posts [get]
func (c *FeedController) ListPosts(ctx *gin.Context) {
	tab := ctx.DefaultQuery("tab", services.TabAll)

	posts, err := c.feedService.ListPosts(tab)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PostListResponse{Posts: posts, Tab: tab}))
}

// CreatePost godoc
// @Summary Publish a new post
// @Description Publishes a post to the top of the feed. Pastors publish preachings, everyone else general posts.
// @Tags feed
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Post}
// @Failure 400 {object} dto.ErrorResponse
// @Router /feed/posts [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	post, err := c.feedService.CreatePost(user.ID, req.Content, req.Image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// ToggleLike godoc
// @Summary Toggle a like on a post
// @Description Adds the caller's like to the post, or removes it if already present
// @Tags feed
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=models.Post}
// @Failure 404 {object} dto.ErrorResponse
// @Router /feed/posts/{postId}/like [post]
func (c *FeedController) ToggleLike(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	post, err := c.feedService.ToggleLike(ctx.Param("postId"), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// ListComments godoc
// @Summary List comments on a post
// @Description Returns a post's comments, oldest first
// @Tags feed
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /feed/posts/{postId}/comments [get]
func (c *FeedController) ListComments(ctx *gin.Context) {
	comments, err := c.feedService.CommentsForPost(ctx.Param("postId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentListResponse{Comments: comments}))
}

// AddComment godoc
// @Summary Comment on a post
// @Description Appends a comment to the post and bumps its comment count
// @Tags feed
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body dto.AddCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /feed/posts/{postId}/comments [post]
func (c *FeedController) AddComment(ctx *gin.Context) {
	var req dto.AddCommentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	comment, err := c.feedService.AddComment(ctx.Param("postId"), user.ID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment))
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Removes a comment. Only the comment author may delete it.
// @Tags feed
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /feed/comments/{commentId} [delete]
func (c *FeedController) DeleteComment(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	if err := c.feedService.DeleteComment(ctx.Param("commentId"), user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted"))
}

// DraftPost godoc
// @Summary Draft a post with AI assistance
// @Description Returns an AI-drafted post on the given topic. Feed state is untouched until the draft is submitted.
// @Tags feed
// @Accept json
// @Produce json
// @Param request body dto.DraftPostRequest true "Draft topic"
// @Success 200 {object} dto.APIResponse{data=dto.DraftPostResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /feed/drafts [post]
func (c *FeedController) DraftPost(ctx *gin.Context) {
	var req dto.DraftPostRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	draft, err := c.feedService.DraftPost(ctx.Request.Context(), user.ID, req.Topic)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DraftPostResponse{Draft: draft}))
}

// ShareLinks godoc
// @Summary Get share links for a post
// @Description Returns the social-share intent URLs for a post
// @Tags feed
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.ShareLinksResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /feed/posts/{postId}/share [get]
func (c *FeedController) ShareLinks(ctx *gin.Context) {
	links, err := c.feedService.ShareLinks(ctx.Param("postId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(links))
}
