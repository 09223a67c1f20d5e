package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/services"
	"github.com/lightoncampus/backend/internal/middleware"
)

// ChatController handles messaging endpoints
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// ListSessions godoc
// @Summary List chat sessions
// @Description Returns the session list, optionally filtered by a case-insensitive search over participant name and last message
// @Tags chat
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=dto.SessionListResponse}
// @Router /chat/sessions [get]
func (c *ChatController) ListSessions(ctx *gin.Context) {
	sessions := c.chatService.ListSessions(ctx.Query("q"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SessionListResponse{Sessions: sessions}))
}

// OpenSession godoc
// @Summary Open a chat session
// @Description Marks the session read and returns it with its full message history
// @Tags chat
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{sessionId} [get]
func (c *ChatController) OpenSession(ctx *gin.Context) {
	detail, err := c.chatService.OpenSession(ctx.Param("sessionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// SendMessage godoc
// @Summary Send a message
// @Description Appends the caller's message to the session. In counselor sessions the AI reply is included once it settles.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.APIResponse{data=dto.SendMessageResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chat/sessions/{sessionId}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	response, err := c.chatService.SendMessage(ctx.Request.Context(), ctx.Param("sessionId"), user.ID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// Typing godoc
// @Summary Get the typing indicator
// @Description Reports whether a counselor reply is pending in the session
// @Tags chat
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.TypingResponse}
// @Router /chat/sessions/{sessionId}/typing [get]
func (c *ChatController) Typing(ctx *gin.Context) {
	typing := c.chatService.Typing(ctx.Param("sessionId"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TypingResponse{Typing: typing}))
}
