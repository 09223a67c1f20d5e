package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

func newProfileFixture() (ProfileService, CourseService) {
	repos := newSeededRepos()
	courseSvc := NewCourseService(
		repos.CourseRepository,
		repos.UserRepository,
		newStubAssist("", &stubGenerator{}),
		zerolog.Nop(),
	)
	profileSvc := NewProfileService(repos.UserRepository, courseSvc, zerolog.Nop())
	return profileSvc, courseSvc
}

func strPointer(s string) *string { return &s }

func TestGetProfileJoinsEnrollmentStats(t *testing.T) {
	profileSvc, courseSvc := newProfileFixture()

	_, err := courseSvc.Enroll("c1", "u1")
	require.NoError(t, err)

	profile, err := profileSvc.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, "Joshua Aluko", profile.User.Name)
	assert.Equal(t, dto.EnrollmentStatsResponse{Enrolled: 1}, profile.Stats)

	_, err = profileSvc.GetProfile("ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileAppliesProvidedFields(t *testing.T) {
	profileSvc, _ := newProfileFixture()

	updated, err := profileSvc.UpdateProfile("u1", dto.UpdateProfileRequest{
		Name: strPointer("Josh Aluko"),
		Bio:  strPointer("Serving on the media team"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Josh Aluko", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Serving on the media team", *updated.Bio)
	// Untouched fields stay put
	require.NotNil(t, updated.Campus)
	assert.Equal(t, "Main Campus", *updated.Campus)
}

func TestUpdateProfileIgnoresBlankName(t *testing.T) {
	profileSvc, _ := newProfileFixture()

	updated, err := profileSvc.UpdateProfile("u1", dto.UpdateProfileRequest{
		Name: strPointer("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Joshua Aluko", updated.Name)
}
