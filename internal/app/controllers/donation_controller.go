package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models/dto"
	"github.com/lightoncampus/backend/internal/app/services"
	"github.com/lightoncampus/backend/internal/middleware"
)

// DonationController handles giving endpoints
type DonationController struct {
	donationService services.DonationService
	logger          zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService, logger zerolog.Logger) *DonationController {
	return &DonationController{
		donationService: donationService,
		logger:          logger,
	}
}

// Donate godoc
// @Summary Record a donation
// @Description Records a giving intent and returns it with a receipt reference. No payment is processed.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.DonationRequest true "Amount in cents and target fund"
// @Success 201 {object} dto.APIResponse{data=models.Donation}
// @Failure 400 {object} dto.ErrorResponse
// @Router /donations [post]
func (c *DonationController) Donate(ctx *gin.Context) {
	var req dto.DonationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user := middleware.CurrentUser(ctx)
	donation, err := c.donationService.Donate(user.ID, req.AmountCents, req.Fund)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(donation))
}

// ListDonations godoc
// @Summary List the caller's donations
// @Description Returns the caller's giving history in the order it was recorded
// @Tags donations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DonationListResponse}
// @Router /donations [get]
func (c *DonationController) ListDonations(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	donations := c.donationService.ListByUser(user.ID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DonationListResponse{Donations: donations}))
}
