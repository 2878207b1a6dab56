package http

import (
	"net/http"

	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followUseCase usecase.FollowUseCase
	logger        *logger.Logger
}

func NewFollowHandler(followUseCase usecase.FollowUseCase, logger *logger.Logger) *FollowHandler {
	return &FollowHandler{
		followUseCase: followUseCase,
		logger:        logger,
	}
}

// Follow godoc
// @Summary      Follow a campaign
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      201  {object}  entity.Follow
// @Failure      409  {object}  map[string]string
// @Router       /campaigns/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	follow, err := h.followUseCase.Follow(c.Request.Context(), caller.UserID, campaignID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, follow)
}

// Unfollow godoc
// @Summary      Unfollow a campaign
// @Tags         follows
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.followUseCase.Unfollow(c.Request.Context(), caller.UserID, campaignID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FollowStatus godoc
// @Summary      Whether the caller follows a campaign
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /campaigns/{id}/follow [get]
func (h *FollowHandler) FollowStatus(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	campaignID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	following, err := h.followUseCase.IsFollowing(ctx, caller.UserID, campaignID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	followers, err := h.followUseCase.CountFollowers(ctx, campaignID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following, "followers": followers})
}

// ListFollowers godoc
// @Summary      Followers of a campaign
// @Tags         follows
// @Produce      json
// @Param        id path int true "Campaign ID"
// @Success      200  {array}  entity.Follow
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id}/followers [get]
func (h *FollowHandler) ListFollowers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	follows, err := h.followUseCase.ListByCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}

// ListFollowed godoc
// @Summary      Campaigns followed by a user
// @Tags         follows
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/follows [get]
func (h *FollowHandler) ListFollowed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	follows, err := h.followUseCase.ListByUser(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	count, err := h.followUseCase.CountFollowed(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"follows": follows, "count": count})
}

// ListFollows godoc
// @Summary      Every follow record
// @Description  Admin only
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Follow
// @Router       /follows [get]
func (h *FollowHandler) ListFollows(c *gin.Context) {
	follows, err := h.followUseCase.ListFollows(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}

// GetFollow godoc
// @Summary      Get follow by ID
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Follow ID"
// @Success      200  {object}  entity.Follow
// @Router       /follows/{id} [get]
func (h *FollowHandler) GetFollow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	follow, err := h.followUseCase.GetFollow(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, follow)
}

// DeleteFollow godoc
// @Summary      Delete a follow record
// @Description  Admin only
// @Tags         follows
// @Security     BearerAuth
// @Param        id path int true "Follow ID"
// @Success      204
// @Router       /follows/{id} [delete]
func (h *FollowHandler) DeleteFollow(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.followUseCase.DeleteFollow(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
