package repositories

import (
	"sync"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

// UserRepository owns all user records
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

// Insert adds a user. An existing id is replaced in place (seed reloads).
func (r *UserRepository) Insert(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		r.order = append(r.order, user.ID)
	}
	stored := user
	r.users[user.ID] = &stored
}

// GetByID returns the user with the given id
func (r *UserRepository) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// Update replaces the stored user. The id must already exist; ids are
// immutable once created.
func (r *UserRepository) Update(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	stored := user
	r.users[user.ID] = &stored
	return cloneUser(&stored), nil
}

// List returns all users in insertion order
func (r *UserRepository) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.users[id]))
	}
	return out
}

func cloneUser(u *models.User) models.User {
	out := *u
	out.Campus = cloneStringPtr(u.Campus)
	out.Email = cloneStringPtr(u.Email)
	out.Bio = cloneStringPtr(u.Bio)
	if u.JoinedDate != nil {
		t := *u.JoinedDate
		out.JoinedDate = &t
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
