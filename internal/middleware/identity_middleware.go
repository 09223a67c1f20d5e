package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/repositories"
)

// userContextKey is where the resolved user lives on the gin context.
const userContextKey = "currentUser"

// IdentityHeader names the header carrying the acting user's id. This is
// identity attribution for a single-user client, not authentication: there
// are no credentials anywhere in the system.
const IdentityHeader = "X-User-ID"

// IdentityMiddleware resolves the acting user for each request
type IdentityMiddleware struct {
	userRepo *repositories.UserRepository
}

// NewIdentityMiddleware creates a new IdentityMiddleware
func NewIdentityMiddleware(userRepo *repositories.UserRepository) *IdentityMiddleware {
	return &IdentityMiddleware{userRepo: userRepo}
}

// ResolveUser reads the identity header and loads the matching user onto
// the context. Requests without a resolvable identity are rejected.
func (m *IdentityMiddleware) ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(IdentityHeader)
		if userID == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeIdentityRequired, "Acting user id required")
			errorDetail = errorDetail.WithDetails(IdentityHeader + " header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.userRepo.GetByID(userID)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUserNotFound, "Unknown user id")
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by ResolveUser. The zero User is
// returned on routes that skipped the middleware.
func CurrentUser(c *gin.Context) models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}
	}
	user, ok := value.(models.User)
	if !ok {
		return models.User{}
	}
	return user
}
