package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lightoncampus/backend/internal/app/controllers"
	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	feedController *controllers.FeedController,
	courseController *controllers.CourseController,
	chatController *controllers.ChatController,
	profileController *controllers.ProfileController,
	donationController *controllers.DonationController,
	identityMiddleware *middleware.IdentityMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (no identity required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Every functional route acts on behalf of a user resolved from the
	// identity header.
	identified := v1.Group("")
	identified.Use(identityMiddleware.ResolveUser())

	feed := identified.Group("/feed")
	{
		feed.GET("/posts", feedController.ListPosts)
		feed.POST("/posts", feedController.CreatePost)
		feed.POST("/posts/:postId/like", feedController.ToggleLike)
		feed.GET("/posts/:postId/comments", feedController.ListComments)
		feed.POST("/posts/:postId/comments", feedController.AddComment)
		feed.GET("/posts/:postId/share", feedController.ShareLinks)
		feed.DELETE("/comments/:commentId", feedController.DeleteComment)
		feed.POST("/drafts", feedController.DraftPost)
	}

	courses := identified.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.PublishCourse)
		courses.POST("/outlines", courseController.GenerateOutline)
		courses.GET("/:courseId", courseController.GetCourse)
		courses.POST("/:courseId/enroll", courseController.Enroll)
		courses.POST("/:courseId/lessons", courseController.ToggleLesson)
	}

	chat := identified.Group("/chat")
	{
		chat.GET("/sessions", chatController.ListSessions)
		chat.GET("/sessions/:sessionId", chatController.OpenSession)
		chat.POST("/sessions/:sessionId/messages", chatController.SendMessage)
		chat.GET("/sessions/:sessionId/typing", chatController.Typing)
	}

	profile := identified.Group("/profile")
	{
		profile.GET("", profileController.GetProfile)
		profile.PUT("", profileController.UpdateProfile)
	}

	donations := identified.Group("/donations")
	{
		donations.POST("", donationController.Donate)
		donations.GET("", donationController.ListDonations)
	}
}
