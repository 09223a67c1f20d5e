package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/repositories"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

// DonationService defines the interface for giving operations
type DonationService interface {
	Donate(userID string, amountCents int64, fund models.DonationFund) (models.Donation, error)
	ListByUser(userID string) []models.Donation
}

// donationServiceImpl implements DonationService
type donationServiceImpl struct {
	donationRepo *repositories.DonationRepository
	userRepo     *repositories.UserRepository
	logger       zerolog.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(
	donationRepo *repositories.DonationRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Donate records a giving intent and returns it with a receipt reference.
// No payment processing happens here; the record is the receipt stub.
func (s *donationServiceImpl) Donate(userID string, amountCents int64, fund models.DonationFund) (models.Donation, error) {
	if amountCents <= 0 {
		return models.Donation{}, apperrors.ErrInvalidAmount
	}
	if fund == "" {
		fund = models.FundGeneral
	}
	switch fund {
	case models.FundGeneral, models.FundStudentFund, models.FundOutreach:
	default:
		return models.Donation{}, apperrors.NewBadRequestError("unknown donation fund: " + string(fund))
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return models.Donation{}, err
	}

	id := uuid.New().String()
	donation := s.donationRepo.Insert(models.Donation{
		ID:          id,
		UserID:      user.ID,
		AmountCents: amountCents,
		Fund:        fund,
		Reference:   donationReference(id),
		CreatedAt:   time.Now(),
	})

	s.logger.Info().
		Str("userID", userID).
		Int64("amountCents", amountCents).
		Str("fund", string(fund)).
		Msg("Donation recorded")
	return donation, nil
}

// ListByUser returns the user's giving history.
func (s *donationServiceImpl) ListByUser(userID string) []models.Donation {
	return s.donationRepo.ListByUser(userID)
}

func donationReference(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 6 {
		compact = compact[:6]
	}
	return "LOC-" + compact
}
