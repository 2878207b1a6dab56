package http

import (
	"net/http"

	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on a campaign
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), caller.UserID, campaignID, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      Get comment by ID
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.commentUseCase.GetComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// ListByCampaign godoc
// @Summary      List comments on a campaign
// @Tags         comments
// @Produce      json
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /campaigns/{id}/comments [get]
func (h *CommentHandler) ListByCampaign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	comments, err := h.commentUseCase.ListByCampaign(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	count, err := h.commentUseCase.CountByCampaign(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": count})
}

// ListByUser godoc
// @Summary      List comments written by a user
// @Tags         comments
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/comments [get]
func (h *CommentHandler) ListByUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	comments, err := h.commentUseCase.ListByUser(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	count, err := h.commentUseCase.CountByUser(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": count})
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Author or admin
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Param        request body CommentRequest true "New content"
// @Success      200  {object}  entity.Comment
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), caller, id, req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Author or admin
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), caller, id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike godoc
// @Summary      Like or unlike a comment
// @Description  Likes the comment if the caller has not liked it yet, otherwise removes the like
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  entity.LikeResult
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.commentUseCase.ToggleLike(c.Request.Context(), id, caller.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Comment unliked"
	if result.Liked {
		message = "Comment liked"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"liked":   result.Liked,
		"likes":   result.Comment.Likes,
		"comment": result.Comment,
	})
}

// GetLikes godoc
// @Summary      Like count of a comment
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200  {object}  map[string]int64
// @Router       /comments/{id}/likes [get]
func (h *CommentHandler) GetLikes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	likes, err := h.commentUseCase.GetLikes(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ReconcileLikes godoc
// @Summary      Recount stored like totals
// @Description  Admin only. Rewrites every comment whose like total drifted from its likes.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /comments/reconcile-likes [post]
func (h *CommentHandler) ReconcileLikes(c *gin.Context) {
	fixed, err := h.commentUseCase.ReconcileLikes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixed": fixed})
}

// Stats godoc
// @Summary      Comment analytics
// @Description  Totals, average likes and the top commenters and campaigns
// @Tags         comments
// @Produce      json
// @Param        limit query int false "Size of the top lists (default 5)"
// @Success      200  {object}  usecase.CommentStats
// @Router       /comments/stats [get]
func (h *CommentHandler) Stats(c *gin.Context) {
	stats, err := h.commentUseCase.Stats(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TopCommenters godoc
// @Summary      Users with the most comments
// @Tags         comments
// @Produce      json
// @Param        limit query int false "Limit (default 5)"
// @Success      200  {array}  entity.CommenterStat
// @Router       /comments/top-commenters [get]
func (h *CommentHandler) TopCommenters(c *gin.Context) {
	stats, err := h.commentUseCase.TopCommenters(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TopCommentedCampaigns godoc
// @Summary      Campaigns with the most comments
// @Tags         comments
// @Produce      json
// @Param        limit query int false "Limit (default 5)"
// @Success      200  {array}  entity.CampaignCommentStat
// @Router       /comments/top-campaigns [get]
func (h *CommentHandler) TopCommentedCampaigns(c *gin.Context) {
	stats, err := h.commentUseCase.TopCommentedCampaigns(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
