package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/pkg/apperrors"
)

func newDonationFixture() DonationService {
	repos := newSeededRepos()
	return NewDonationService(repos.DonationRepository, repos.UserRepository, zerolog.Nop())
}

func TestDonateRecordsReceipt(t *testing.T) {
	svc := newDonationFixture()

	donation, err := svc.Donate("u1", 2500, models.FundStudentFund)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), donation.AmountCents)
	assert.Equal(t, models.FundStudentFund, donation.Fund)
	assert.True(t, strings.HasPrefix(donation.Reference, "LOC-"))
	assert.Len(t, donation.Reference, 10)
	assert.False(t, donation.CreatedAt.IsZero())
}

func TestDonateDefaultsToGeneralFund(t *testing.T) {
	svc := newDonationFixture()

	donation, err := svc.Donate("u1", 1000, "")
	require.NoError(t, err)
	assert.Equal(t, models.FundGeneral, donation.Fund)
}

func TestDonateRejectsInvalidInput(t *testing.T) {
	svc := newDonationFixture()

	_, err := svc.Donate("u1", 0, models.FundGeneral)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = svc.Donate("u1", -500, models.FundGeneral)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = svc.Donate("u1", 1000, models.DonationFund("lottery"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Donate("ghost", 1000, models.FundGeneral)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListByUserKeepsOrder(t *testing.T) {
	svc := newDonationFixture()

	first, err := svc.Donate("u1", 1000, models.FundGeneral)
	require.NoError(t, err)
	second, err := svc.Donate("u1", 5000, models.FundOutreach)
	require.NoError(t, err)
	_, err = svc.Donate("u2", 2500, models.FundGeneral)
	require.NoError(t, err)

	donations := svc.ListByUser("u1")
	require.Len(t, donations, 2)
	assert.Equal(t, first.ID, donations[0].ID)
	assert.Equal(t, second.ID, donations[1].ID)
}
