package services

import (
	"context"
	"fmt"
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

// AI-published courses use a fixed shape; the outline itself carries the
// week-by-week breakdown.
const (
	publishedCourseLessons  = 4
	publishedCourseDuration = "4 weeks"
	descriptionPreviewRunes = 100
)

// CategoryAll is the pseudo-category matching every course.
const CategoryAll = "All"

// CourseService defines the interface for learning platform operations
type CourseService interface {
	ListCourses(category string) ([]models.Course, error)
	GetCourse(courseID, userID string) (dto.CourseDetailResponse, error)
	Enroll(courseID, userID string) (models.Enrollment, error)
	ToggleLesson(courseID, userID string, lessonIndex int) (models.Enrollment, error)
	GenerateOutline(ctx context.Context, topic string, category models.CourseCategory) (string, error)
	PublishCourse(topic string, category models.CourseCategory, outline, instructorID string) (models.Course, error)
	EnrollmentStats(userID string) dto.EnrollmentStatsResponse
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	userRepo   *repositories.UserRepository
	assist     *assist.Client
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	assistClient *assist.Client,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		assist:     assistClient,
		logger:     logger,
	}
}

// ListCourses returns the catalog filtered by category ("All" or empty
// returns everything).
func (s *courseServiceImpl) ListCourses(category string) ([]models.Course, error) {
	if category == "" || category == CategoryAll {
		return s.courseRepo.ListCourses(nil), nil
	}
	c := models.CourseCategory(category)
	if !c.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}
	return s.courseRepo.ListCourses(&c), nil
}

// GetCourse returns a course together with the caller's enrollment, if any.
func (s *courseServiceImpl) GetCourse(courseID, userID string) (dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetCourse(courseID)
	if err != nil {
		return dto.CourseDetailResponse{}, err
	}

	detail := dto.CourseDetailResponse{Course: course}
	if enrollment, ok := s.courseRepo.GetEnrollment(courseID, userID); ok {
		detail.Enrollment = &enrollment
	}
	return detail, nil
}

// Enroll creates an enrollment for the pair, or returns the existing one
// unchanged. The confirmation step is a UI policy; the engine is plainly
// idempotent.
func (s *courseServiceImpl) Enroll(courseID, userID string) (models.Enrollment, error) {
	if _, err := s.courseRepo.GetCourse(courseID); err != nil {
		return models.Enrollment{}, err
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return models.Enrollment{}, err
	}

	now := time.Now()
	enrollment, created := s.courseRepo.CreateEnrollment(models.Enrollment{
		ID:               uuid.New().String(),
		CourseID:         courseID,
		UserID:           userID,
		Progress:         0,
		CompletedLessons: []int{},
		EnrolledAt:       now,
		LastAccessedAt:   now,
	})
	if created {
		s.logger.Debug().Str("courseID", courseID).Str("userID", userID).Msg("User enrolled")
	}
	return enrollment, nil
}

// ToggleLesson flips completion of one lesson and recomputes progress.
func (s *courseServiceImpl) ToggleLesson(courseID, userID string, lessonIndex int) (models.Enrollment, error) {
	course, err := s.courseRepo.GetCourse(courseID)
	if err != nil {
		return models.Enrollment{}, err
	}
	if lessonIndex < 0 || lessonIndex >= course.Lessons {
		return models.Enrollment{}, apperrors.ErrLessonOutOfRange
	}
	return s.courseRepo.ToggleLesson(courseID, userID, lessonIndex, course.Lessons)
}

// GenerateOutline asks the AI assist for a course outline. Advisory only:
// course state is untouched until the outline is published.
func (s *courseServiceImpl) GenerateOutline(ctx context.Context, topic string, category models.CourseCategory) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", apperrors.ErrEmptyContent
	}
	if !category.Valid() {
		return "", apperrors.ErrInvalidCategory
	}
	outline := s.assist.Generate(ctx, assist.PromptCourseOutline, assist.Params{
		Topic:    topic,
		Category: string(category),
	})
	return outline, nil
}

// PublishCourse creates a course from an accepted outline. Role gating
// lives in the client; the engine applies no role check.
func (s *courseServiceImpl) PublishCourse(topic string, category models.CourseCategory, outline, instructorID string) (models.Course, error) {
	if strings.TrimSpace(outline) == "" {
		return models.Course{}, apperrors.ErrEmptyContent
	}
	if !category.Valid() {
		return models.Course{}, apperrors.ErrInvalidCategory
	}

	instructor, err := s.userRepo.GetByID(instructorID)
	if err != nil {
		return models.Course{}, err
	}

	id := uuid.New().String()
	content := outline
	course := models.Course{
		ID:          id,
		Title:       topic,
		Instructor:  instructor.Name,
		Category:    category,
		Description: truncateRunes(outline, descriptionPreviewRunes) + "...",
		Lessons:     publishedCourseLessons,
		Duration:    publishedCourseDuration,
		Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%s/400/250", id),
		Content:     &content,
	}

	created := s.courseRepo.InsertCourse(course)
	s.logger.Info().Str("courseID", created.ID).Str("category", string(category)).Msg("Course published")
	return created, nil
}

// EnrollmentStats summarizes a user's learning activity.
func (s *courseServiceImpl) EnrollmentStats(userID string) dto.EnrollmentStatsResponse {
	stats := dto.EnrollmentStatsResponse{}
	for _, enrollment := range s.courseRepo.ListEnrollmentsByUser(userID) {
		stats.Enrolled++
		switch {
		case enrollment.Progress == 100:
			stats.Completed++
		case enrollment.Progress > 0:
			stats.InProgress++
		}
	}
	return stats
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
