package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/services"
	"github.com/lightoncampus/backend/internal/middleware"
)

// CourseController handles learning platform endpoints
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns the course catalog, optionally filtered by category
// @Tags courses
// @Produce json
// @Param category query string false "Course category display name, or All" default(All)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", services.CategoryAll)

	courses, err := c.courseService.ListCourses(category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseListResponse{Courses: courses, Category: category}))
}

// GetCourse godoc
// @Summary Get a course
// @Description Returns a course together with the caller's enrollment, if any
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	detail, err := c.courseService.GetCourse(ctx.Param("courseId"), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Creates an enrollment for the caller, or returns the existing one unchanged
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	enrollment, err := c.courseService.Enroll(ctx.Param("courseId"), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// ToggleLesson godoc
// @Summary Toggle lesson completion
// @Description Flips completion of one lesson in the caller's enrollment and recomputes progress
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.ToggleLessonRequest true "Zero-based lesson index"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{courseId}/lessons [post]
func (c *CourseController) ToggleLesson(ctx *gin.Context) {
	var req dto.ToggleLessonRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	enrollment, err := c.courseService.ToggleLesson(ctx.Param("courseId"), user.ID, *req.LessonIndex)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// GenerateOutline godoc
// @Summary Generate a course outline
// @Description Returns an AI-generated week-by-week outline for a topic. Course state is untouched until the outline is published.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.GenerateOutlineRequest true "Topic and category"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateOutlineResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses/outlines [post]
func (c *CourseController) GenerateOutline(ctx *gin.Context) {
	var req dto.GenerateOutlineRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	outline, err := c.courseService.GenerateOutline(ctx.Request.Context(), req.Topic, req.Category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GenerateOutlineResponse{Outline: outline}))
}

// PublishCourse godoc
// @Summary Publish a course from an outline
// @Description Creates a course from an accepted outline with the caller as instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.PublishCourseRequest true "Topic, category and accepted outline"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) PublishCourse(ctx *gin.Context) {
	var req dto.PublishCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	course, err := c.courseService.PublishCourse(req.Topic, req.Category, req.Outline, user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}
