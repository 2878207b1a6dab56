package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CampaignHandler struct {
	campaignUseCase usecase.CampaignUseCase
	logger          *logger.Logger
}

func NewCampaignHandler(campaignUseCase usecase.CampaignUseCase, logger *logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
		logger:          logger,
	}
}

type CreateCampaignRequest struct {
	Title            string          `json:"title" binding:"required"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description"`
	Category         string          `json:"category" binding:"required"`
	Status           string          `json:"status"`
	GoalAmount       decimal.Decimal `json:"goal_amount"`
	ImageURL         string          `json:"image_url"`
	StartDate        *time.Time      `json:"start_date"`
	EndDate          *time.Time      `json:"end_date"`
}

type UpdateCampaignRequest struct {
	Title            *string          `json:"title"`
	ShortDescription *string          `json:"short_description"`
	LongDescription  *string          `json:"long_description"`
	Category         *string          `json:"category"`
	GoalAmount       *decimal.Decimal `json:"goal_amount"`
	RaisedAmount     *decimal.Decimal `json:"raised_amount"`
	ImageURL         *string          `json:"image_url"`
	EndDate          *time.Time       `json:"end_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PostUpdateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateCampaign godoc
// @Summary      Create a campaign
// @Description  Creators and admins open a campaign owned by the caller. Status defaults to pending; only admins may set another one.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCampaignRequest true "Campaign data"
// @Success      201  {object}  entity.Campaign
// @Failure      400  {object}  map[string]string
// @Router       /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if status := strings.TrimSpace(req.Status); status != "" && !strings.EqualFold(status, string(entity.CampaignPending)) && !caller.IsAdmin() {
		respondError(c, h.logger, fmt.Errorf("%w: only admins can open a campaign as %s", entity.ErrForbidden, status))
		return
	}

	campaign, err := h.campaignUseCase.CreateCampaign(c.Request.Context(), usecase.CreateCampaignInput{
		CreatorID:        caller.UserID,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         req.Category,
		Status:           req.Status,
		GoalAmount:       req.GoalAmount,
		ImageURL:         req.ImageURL,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign godoc
// @Summary      Get campaign by ID
// @Tags         campaigns
// @Produce      json
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  entity.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	campaign, err := h.campaignUseCase.GetCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// ListCampaigns godoc
// @Summary      List campaigns
// @Description  Paginated, optionally filtered by category and status
// @Tags         campaigns
// @Produce      json
// @Param        page query int false "Page, starting at 1"
// @Param        per_page query int false "Page size (max 100)"
// @Param        category query string false "Category"
// @Param        status query string false "Status"
// @Success      200  {object}  entity.CampaignPage
// @Router       /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	page, err := h.campaignUseCase.Paginate(
		c.Request.Context(),
		queryInt(c, "page", 1),
		queryInt(c, "per_page", 0),
		c.Query("category"),
		c.Query("status"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListAll godoc
// @Summary      List every campaign
// @Tags         campaigns
// @Produce      json
// @Success      200  {array}  entity.Campaign
// @Router       /campaigns/all [get]
func (h *CampaignHandler) ListAll(c *gin.Context) {
	campaigns, err := h.campaignUseCase.ListCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// SearchCampaigns godoc
// @Summary      Search campaigns by title
// @Tags         campaigns
// @Produce      json
// @Param        title query string true "Title fragment, case-insensitive"
// @Success      200  {array}  entity.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/search [get]
func (h *CampaignHandler) SearchCampaigns(c *gin.Context) {
	campaigns, err := h.campaignUseCase.SearchByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// ListByCategory godoc
// @Summary      List campaigns in a category
// @Tags         campaigns
// @Produce      json
// @Param        category path string true "Category"
// @Success      200  {array}  entity.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/category/{category} [get]
func (h *CampaignHandler) ListByCategory(c *gin.Context) {
	campaigns, err := h.campaignUseCase.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// ListByStatus godoc
// @Summary      List campaigns with a status
// @Tags         campaigns
// @Produce      json
// @Param        status path string true "Status"
// @Success      200  {array}  entity.Campaign
// @Router       /campaigns/status/{status} [get]
func (h *CampaignHandler) ListByStatus(c *gin.Context) {
	campaigns, err := h.campaignUseCase.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// ListByCreator godoc
// @Summary      List campaigns of a creator
// @Tags         campaigns
// @Produce      json
// @Param        id path int true "Creator user ID"
// @Success      200  {array}  entity.Campaign
// @Router       /users/{id}/campaigns [get]
func (h *CampaignHandler) ListByCreator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	campaigns, err := h.campaignUseCase.ListByCreator(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// UpdateCampaign godoc
// @Summary      Update campaign fields
// @Description  Owner or admin. Records one campaign update listing every changed field.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        request body UpdateCampaignRequest true "Fields to change"
// @Success      200  {object}  usecase.CampaignChange
// @Failure      403  {object}  map[string]string
// @Router       /campaigns/{id} [patch]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	change, err := h.campaignUseCase.UpdateCampaign(c.Request.Context(), caller, id, usecase.CampaignPatch{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Category:         req.Category,
		GoalAmount:       req.GoalAmount,
		RaisedAmount:     req.RaisedAmount,
		ImageURL:         req.ImageURL,
		EndDate:          req.EndDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// UpdateStatus godoc
// @Summary      Change campaign status
// @Description  Only admins approve or reject. The owner or an admin completes. Setting the current status is a no-op.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  usecase.CampaignChange
// @Failure      409  {object}  map[string]string
// @Router       /campaigns/{id}/status [put]
func (h *CampaignHandler) UpdateStatus(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	change, err := h.campaignUseCase.UpdateStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// ApproveCampaign godoc
// @Summary      Approve a campaign
// @Description  Admin only
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  usecase.CampaignChange
// @Router       /campaigns/{id}/approve [post]
func (h *CampaignHandler) ApproveCampaign(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	change, err := h.campaignUseCase.Approve(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// UploadImage godoc
// @Summary      Upload a campaign image
// @Tags         campaigns
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        image formData file true "Image file"
// @Success      200  {object}  entity.Campaign
// @Router       /campaigns/{id}/image [post]
func (h *CampaignHandler) UploadImage(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "Image file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		badRequest(c, "Failed to read image")
		return
	}
	defer file.Close()

	campaign, err := h.campaignUseCase.UploadImage(c.Request.Context(), caller, id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign godoc
// @Summary      Delete a campaign
// @Tags         campaigns
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.campaignUseCase.DeleteCampaign(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PostUpdate godoc
// @Summary      Post a campaign update
// @Tags         campaign-updates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        request body PostUpdateRequest true "Update"
// @Success      201  {object}  entity.CampaignUpdate
// @Router       /campaigns/{id}/updates [post]
func (h *CampaignHandler) PostUpdate(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	update, err := h.campaignUseCase.PostUpdate(c.Request.Context(), caller, id, req.Title, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

// ListUpdates godoc
// @Summary      List campaign updates
// @Tags         campaign-updates
// @Produce      json
// @Param        id path int true "Campaign ID"
// @Success      200  {array}  entity.CampaignUpdate
// @Router       /campaigns/{id}/updates [get]
func (h *CampaignHandler) ListUpdates(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	updates, err := h.campaignUseCase.ListUpdates(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

// GetUpdate godoc
// @Summary      Get a campaign update
// @Tags         campaign-updates
// @Produce      json
// @Param        id path int true "Update ID"
// @Success      200  {object}  entity.CampaignUpdate
// @Router       /campaign-updates/{id} [get]
func (h *CampaignHandler) GetUpdate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	update, err := h.campaignUseCase.GetUpdate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, update)
}
