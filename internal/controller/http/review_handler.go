package http

import (
	"net/http"

	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		logger:        logger,
	}
}

type CreateReviewRequest struct {
	CampaignID uint   `json:"campaign_id" binding:"required"`
	Decision   string `json:"decision"`
	Comments   string `json:"comments"`
}

type UpdateReviewRequest struct {
	Decision *string `json:"decision"`
	Comments *string `json:"comments"`
}

// CreateReview godoc
// @Summary      Review a campaign
// @Description  Admin only. The review is recorded; the campaign status is left unchanged.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateReviewRequest true "Review"
// @Success      201  {object}  entity.AdminReview
// @Failure      400  {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	review, err := h.reviewUseCase.CreateReview(c.Request.Context(), caller.UserID, req.CampaignID, req.Decision, req.Comments)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GetReview godoc
// @Summary      Get review by ID
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200  {object}  entity.AdminReview
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.reviewUseCase.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListReviews godoc
// @Summary      List reviews
// @Description  Filter by admin_id, campaign_id or decision (exactly one)
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        admin_id query int false "Admin user ID"
// @Param        campaign_id query int false "Campaign ID"
// @Param        decision query string false "approved or rejected"
// @Success      200  {array}  entity.AdminReview
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()
	switch {
	case c.Query("admin_id") != "":
		id := queryInt(c, "admin_id", 0)
		if id <= 0 {
			badRequest(c, "Invalid admin_id")
			return
		}
		reviews, err := h.reviewUseCase.ListByAdmin(ctx, uint(id))
		h.respondList(c, reviews, err)
	case c.Query("campaign_id") != "":
		id := queryInt(c, "campaign_id", 0)
		if id <= 0 {
			badRequest(c, "Invalid campaign_id")
			return
		}
		reviews, err := h.reviewUseCase.ListByCampaign(ctx, uint(id))
		h.respondList(c, reviews, err)
	case c.Query("decision") != "":
		reviews, err := h.reviewUseCase.ListByDecision(ctx, c.Query("decision"))
		h.respondList(c, reviews, err)
	default:
		badRequest(c, "One of admin_id, campaign_id or decision is required")
	}
}

func (h *ReviewHandler) respondList(c *gin.Context, reviews interface{}, err error) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// UpdateReview godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Param        request body UpdateReviewRequest true "Fields to change"
// @Success      200  {object}  entity.AdminReview
// @Router       /reviews/{id} [patch]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request.Context(), id, usecase.ReviewPatch{
		Decision: req.Decision,
		Comments: req.Comments,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      204
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reviewUseCase.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
