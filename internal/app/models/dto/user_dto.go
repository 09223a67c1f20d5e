package dto

import "github.com/lightoncampus/backend/internal/app/models"

// UpdateProfileRequest represents an edit to the caller's own profile.
// The avatar arrives as a data URI produced client-side; there is no
// upload endpoint.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Campus *string `json:"campus,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ProfileResponse joins the user with their enrollment statistics
type ProfileResponse struct {
	User  models.User             `json:"user"`
	Stats EnrollmentStatsResponse `json:"stats"`
}
