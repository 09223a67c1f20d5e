package repositories

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

// CourseRepository owns courses and enrollments. Enrollments are keyed by
// the (courseId, userId) pair so at most one can ever exist per pair.
type CourseRepository struct {
	mu          sync.RWMutex
	courses     []*models.Course // insertion order
	coursesByID map[string]*models.Course
	enrollments map[string]*models.Enrollment // key: courseID + "|" + userID
}

// NewCourseRepository creates an empty course repository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		coursesByID: make(map[string]*models.Course),
		enrollments: make(map[string]*models.Enrollment),
	}
}

func enrollmentKey(courseID, userID string) string {
	return courseID + "|" + userID
}

// InsertCourse appends a course to the catalog.
func (r *CourseRepository) InsertCourse(course models.Course) models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := course
	r.courses = append(r.courses, &stored)
	r.coursesByID[stored.ID] = &stored
	return cloneCourse(&stored)
}

// GetCourse returns the course with the given id
func (r *CourseRepository) GetCourse(id string) (models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.coursesByID[id]
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return cloneCourse(course), nil
}

// ListCourses returns the catalog, optionally filtered to one category.
func (r *CourseRepository) ListCourses(category *models.CourseCategory) []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Course, 0, len(r.courses))
	for _, course := range r.courses {
		if category != nil && course.Category != *category {
			continue
		}
		out = append(out, cloneCourse(course))
	}
	return out
}

// GetEnrollment returns the enrollment for the pair, if one exists.
func (r *CourseRepository) GetEnrollment(courseID, userID string) (models.Enrollment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enrollment, ok := r.enrollments[enrollmentKey(courseID, userID)]
	if !ok {
		return models.Enrollment{}, false
	}
	return cloneEnrollment(enrollment), true
}

// CreateEnrollment stores a new enrollment unless one already exists for
// the pair; the second return reports whether a record was created. The
// existing record is returned unchanged on a duplicate, making enroll
// idempotent.
func (r *CourseRepository) CreateEnrollment(enrollment models.Enrollment) (models.Enrollment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrollmentKey(enrollment.CourseID, enrollment.UserID)
	if existing, ok := r.enrollments[key]; ok {
		return cloneEnrollment(existing), false
	}

	stored := enrollment
	stored.CompletedLessons = append([]int(nil), enrollment.CompletedLessons...)
	r.enrollments[key] = &stored
	return cloneEnrollment(&stored), true
}

// ToggleLesson flips lessonIndex in the completed set and recomputes
// progress as round(100 * completed / totalLessons) in the same operation.
func (r *CourseRepository) ToggleLesson(courseID, userID string, lessonIndex, totalLessons int) (models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enrollment, ok := r.enrollments[enrollmentKey(courseID, userID)]
	if !ok {
		return models.Enrollment{}, apperrors.ErrNotEnrolled
	}

	removed := false
	for i, idx := range enrollment.CompletedLessons {
		if idx == lessonIndex {
			enrollment.CompletedLessons = append(enrollment.CompletedLessons[:i], enrollment.CompletedLessons[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		enrollment.CompletedLessons = append(enrollment.CompletedLessons, lessonIndex)
		sort.Ints(enrollment.CompletedLessons)
	}

	if totalLessons > 0 {
		enrollment.Progress = int(math.Round(100 * float64(len(enrollment.CompletedLessons)) / float64(totalLessons)))
	} else {
		enrollment.Progress = 0
	}
	enrollment.LastAccessedAt = time.Now()

	return cloneEnrollment(enrollment), nil
}

// ListEnrollmentsByUser returns all of a user's enrollments, ordered by
// enrollment time.
func (r *CourseRepository) ListEnrollmentsByUser(userID string) []models.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Enrollment
	for _, enrollment := range r.enrollments {
		if enrollment.UserID == userID {
			out = append(out, cloneEnrollment(enrollment))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledAt.Before(out[j].EnrolledAt) })
	return out
}

func cloneCourse(c *models.Course) models.Course {
	out := *c
	out.Content = cloneStringPtr(c.Content)
	return out
}

func cloneEnrollment(e *models.Enrollment) models.Enrollment {
	out := *e
	out.CompletedLessons = append([]int(nil), e.CompletedLessons...)
	return out
}
