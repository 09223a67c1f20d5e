package dto

import "github.com/lightoncampus/backend/internal/app/models"

// DonationRequest records a giving intent. Preset buttons submit 1000,
// 2500, 5000 or 10000 cents; custom amounts are free-form but positive.
type DonationRequest struct {
	AmountCents int64               `json:"amountCents" binding:"required,gt=0"`
	Fund        models.DonationFund `json:"fund,omitempty" binding:"omitempty,oneof=general student_fund outreach"`
}

// DonationListResponse wraps the caller's giving history
type DonationListResponse struct {
	Donations []models.Donation `json:"donations"`
}
