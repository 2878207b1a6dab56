package http

import (
	"net/http"

	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DonationHandler struct {
	donationUseCase usecase.DonationUseCase
	logger          *logger.Logger
}

func NewDonationHandler(donationUseCase usecase.DonationUseCase, logger *logger.Logger) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
		logger:          logger,
	}
}

type CreateDonationRequest struct {
	CampaignID uint            `json:"campaign_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
}

// CreateDonation godoc
// @Summary      Donate to a campaign
// @Description  Records a pledge by the caller. The campaign's raised amount is not changed.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateDonationRequest true "Donation"
// @Success      201  {object}  entity.Donation
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	donation, err := h.donationUseCase.CreateDonation(c.Request.Context(), usecase.CreateDonationInput{
		DonorID:    caller.UserID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Status:     req.Status,
		Message:    req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, donation)
}

// GetDonation godoc
// @Summary      Get donation by ID
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Donation ID"
// @Success      200  {object}  entity.Donation
// @Failure      404  {object}  map[string]string
// @Router       /donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donation, err := h.donationUseCase.GetDonation(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

// ListByUser godoc
// @Summary      List donations made by a user
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200  {array}  entity.Donation
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/donations [get]
func (h *DonationHandler) ListByUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donations, err := h.donationUseCase.ListByUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// ListByCampaign godoc
// @Summary      List donations to a campaign
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200  {array}  entity.Donation
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id}/donations [get]
func (h *DonationHandler) ListByCampaign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donations, err := h.donationUseCase.ListByCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// UpdateStatus godoc
// @Summary      Set donation status
// @Description  Admin only. Any status may follow any other.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Donation ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Donation
// @Router       /donations/{id}/status [put]
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	donation, err := h.donationUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

// CancelDonation godoc
// @Summary      Cancel a donation
// @Description  Donor or admin
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Donation ID"
// @Success      200  {object}  entity.Donation
// @Failure      403  {object}  map[string]string
// @Router       /donations/{id}/cancel [post]
func (h *DonationHandler) CancelDonation(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	donation, err := h.donationUseCase.CancelDonation(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}
