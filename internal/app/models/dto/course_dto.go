package dto

import "github.com/lightoncampus/backend/internal/app/models"

// GenerateOutlineRequest asks the AI assist for a course outline
type GenerateOutlineRequest struct {
	Topic    string                `json:"topic" binding:"required"`
	Category models.CourseCategory `json:"category" binding:"required"`
}

// GenerateOutlineResponse carries the advisory outline text
type GenerateOutlineResponse struct {
	Outline string `json:"outline"`
}

// PublishCourseRequest creates a course from an accepted outline
type PublishCourseRequest struct {
	Topic    string                `json:"topic" binding:"required"`
	Category models.CourseCategory `json:"category" binding:"required"`
	Outline  string                `json:"outline" binding:"required"`
}

// ToggleLessonRequest flips completion of one lesson index
type ToggleLessonRequest struct {
	LessonIndex *int `json:"lessonIndex" binding:"required"`
}

// CourseListResponse wraps a category-filtered sequence of courses
type CourseListResponse struct {
	Courses  []models.Course `json:"courses"`
	Category string          `json:"category" example:"All"`
}

// CourseDetailResponse pairs a course with the caller's enrollment, if any
type CourseDetailResponse struct {
	Course     models.Course      `json:"course"`
	Enrollment *models.Enrollment `json:"enrollment,omitempty"`
}

// EnrollmentStatsResponse summarizes a user's learning activity
type EnrollmentStatsResponse struct {
	Enrolled   int `json:"enrolled" example:"3"`
	Completed  int `json:"completed" example:"1"`
	InProgress int `json:"inProgress" example:"1"`
}
