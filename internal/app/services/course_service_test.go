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

func newCourseFixture(gen *stubGenerator, key string) (CourseService, *repositories.Repositories) {
	repos := newSeededRepos()
	svc := NewCourseService(
		repos.CourseRepository,
		repos.UserRepository,
		newStubAssist(key, gen),
		zerolog.Nop(),
	)
	return svc, repos
}

func TestListCoursesCategoryFilter(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	all, err := svc.ListCourses(CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	blank, err := svc.ListCourses("")
	require.NoError(t, err)
	assert.Len(t, blank, 3)

	bible, err := svc.ListCourses(string(models.CategoryBibleStudy))
	require.NoError(t, err)
	require.Len(t, bible, 1)
	assert.Equal(t, "c1", bible[0].ID)

	_, err = svc.ListCourses("Astrology")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)
}

func TestEnrollIsIdempotent(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	first, err := svc.Enroll("c1", "u1")
	require.NoError(t, err)
	assert.Zero(t, first.Progress)
	assert.Empty(t, first.CompletedLessons)

	second, err := svc.Enroll("c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.EnrolledAt, second.EnrolledAt)

	stats := svc.EnrollmentStats("u1")
	assert.Equal(t, 1, stats.Enrolled)
}

func TestEnrollUnknownCourseOrUser(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	_, err := svc.Enroll("missing", "u1")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.Enroll("c1", "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestToggleLessonProgress(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	_, err := svc.Enroll("c3", "u1")
	require.NoError(t, err)

	// c3 has 6 lessons; one completed rounds to 17%
	enrollment, err := svc.ToggleLesson("c3", "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, enrollment.CompletedLessons)
	assert.Equal(t, 17, enrollment.Progress)

	enrollment, err = svc.ToggleLesson("c3", "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, enrollment.CompletedLessons)
	assert.Zero(t, enrollment.Progress)
}

func TestToggleLessonBounds(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	_, err := svc.Enroll("c3", "u1")
	require.NoError(t, err)

	_, err = svc.ToggleLesson("c3", "u1", 6)
	assert.ErrorIs(t, err, apperrors.ErrLessonOutOfRange)

	_, err = svc.ToggleLesson("c3", "u1", -1)
	assert.ErrorIs(t, err, apperrors.ErrLessonOutOfRange)

	_, err = svc.ToggleLesson("c1", "u1", 0)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestGenerateOutlineValidation(t *testing.T) {
	gen := &stubGenerator{text: "## Week 1"}
	svc, _ := newCourseFixture(gen, "test-key")

	_, err := svc.GenerateOutline(context.Background(), "  ", models.CategoryBibleStudy)
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)

	_, err = svc.GenerateOutline(context.Background(), "Prayer", models.CourseCategory("Astrology"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCategory)

	assert.Zero(t, gen.calls)

	outline, err := svc.GenerateOutline(context.Background(), "Prayer", models.CategoryBibleStudy)
	require.NoError(t, err)
	assert.Equal(t, "## Week 1", outline)
	assert.Equal(t, 1, gen.calls)
}

func TestPublishCourseShape(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	outline := strings.Repeat("a", 150)
	course, err := svc.PublishCourse("Walking in Faith", models.CategoryBibleStudy, outline, "pastor1")
	require.NoError(t, err)

	assert.Equal(t, "Walking in Faith", course.Title)
	assert.Equal(t, "Pastor Michael", course.Instructor)
	assert.Equal(t, strings.Repeat("a", 100)+"...", course.Description)
	assert.Equal(t, 4, course.Lessons)
	assert.Equal(t, "4 weeks", course.Duration)
	require.NotNil(t, course.Content)
	assert.Equal(t, outline, *course.Content)
	assert.Contains(t, course.Thumbnail, course.ID)

	listed, err := svc.ListCourses(CategoryAll)
	require.NoError(t, err)
	assert.Len(t, listed, 4)
}

func TestPublishCourseRejectsBlankOutline(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	_, err := svc.PublishCourse("Topic", models.CategoryBibleStudy, "  ", "pastor1")
	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}

func TestEnrollmentStats(t *testing.T) {
	svc, _ := newCourseFixture(&stubGenerator{}, "")

	_, err := svc.Enroll("c1", "u1")
	require.NoError(t, err)
	_, err = svc.Enroll("c3", "u1")
	require.NoError(t, err)

	// Complete every lesson of c3
	for i := 0; i < 6; i++ {
		_, err = svc.ToggleLesson("c3", "u1", i)
		require.NoError(t, err)
	}

	stats := svc.EnrollmentStats("u1")
	assert.Equal(t, 2, stats.Enrolled)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 0, stats.InProgress)

	// A partial course counts as in progress
	_, err = svc.ToggleLesson("c1", "u1", 2)
	require.NoError(t, err)
	stats = svc.EnrollmentStats("u1")
	assert.Equal(t, 1, stats.InProgress)
}
