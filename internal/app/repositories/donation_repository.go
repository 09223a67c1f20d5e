package repositories

import (
	"sync"

	"github.com/lightoncampus/backend/internal/app/models"
)

// DonationRepository owns recorded giving intents
type DonationRepository struct {
	mu        sync.RWMutex
	donations []*models.Donation
}

// NewDonationRepository creates an empty donation repository
func NewDonationRepository() *DonationRepository {
	return &DonationRepository{}
}

// Insert records a donation.
func (r *DonationRepository) Insert(donation models.Donation) models.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := donation
	r.donations = append(r.donations, &stored)
	return stored
}

// ListByUser returns a user's donations in the order they were recorded.
func (r *DonationRepository) ListByUser(userID string) []models.Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Donation
	for _, donation := range r.donations {
		if donation.UserID == userID {
			out = append(out, *donation)
		}
	}
	return out
}
