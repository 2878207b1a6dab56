package http

import (
	"crowdfund/pkg/jwt"
	"crowdfund/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Users     *UserHandler
	Campaigns *CampaignHandler
	Donations *DonationHandler
	Payments  *PaymentHandler
	Reviews   *ReviewHandler
	Comments  *CommentHandler
	Follows   *FollowHandler
}

// RegisterRoutes mounts the public routes on api and everything else behind
// bearer authentication. extra runs after authentication (rate limiting).
func RegisterRoutes(api *gin.RouterGroup, h Handlers, jwtService *jwt.Service, extra ...gin.HandlerFunc) {
	api.POST("/auth/register", h.Users.Register)
	api.POST("/auth/login", h.Users.Login)

	// Public reads
	api.GET("/campaigns", h.Campaigns.ListCampaigns)
	api.GET("/campaigns/all", h.Campaigns.ListAll)
	api.GET("/campaigns/search", h.Campaigns.SearchCampaigns)
	api.GET("/campaigns/category/:category", h.Campaigns.ListByCategory)
	api.GET("/campaigns/status/:status", h.Campaigns.ListByStatus)
	api.GET("/campaigns/:id", h.Campaigns.GetCampaign)
	api.GET("/campaigns/:id/updates", h.Campaigns.ListUpdates)
	api.GET("/campaigns/:id/comments", h.Comments.ListByCampaign)
	api.GET("/campaigns/:id/followers", h.Follows.ListFollowers)
	api.GET("/campaign-updates/:id", h.Campaigns.GetUpdate)
	api.GET("/comments/stats", h.Comments.Stats)
	api.GET("/comments/top-commenters", h.Comments.TopCommenters)
	api.GET("/comments/top-campaigns", h.Comments.TopCommentedCampaigns)
	api.GET("/comments/:id", h.Comments.GetComment)
	api.GET("/comments/:id/likes", h.Comments.GetLikes)
	api.GET("/users/:id/campaigns", h.Campaigns.ListByCreator)
	api.GET("/users/:id/comments", h.Comments.ListByUser)
	api.GET("/users/:id/follows", h.Follows.ListFollowed)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(extra...)
	{
		protected.GET("/users/me", h.Users.Me)
		protected.GET("/users/by-username/:username", h.Users.GetByUsername)
		protected.GET("/users/:id", h.Users.GetUser)
		protected.PATCH("/users/:id", h.Users.UpdateUser)
		protected.PUT("/users/:id/password", h.Users.ChangePassword)
		protected.POST("/users/:id/profile-image", h.Users.UploadProfileImage)
		protected.DELETE("/users/:id", h.Users.DeleteUser)
		protected.GET("/users/:id/donations", h.Donations.ListByUser)

		protected.POST("/campaigns", middleware.CreatorOnly(), h.Campaigns.CreateCampaign)
		protected.PATCH("/campaigns/:id", h.Campaigns.UpdateCampaign)
		protected.PUT("/campaigns/:id/status", h.Campaigns.UpdateStatus)
		protected.POST("/campaigns/:id/image", h.Campaigns.UploadImage)
		protected.DELETE("/campaigns/:id", h.Campaigns.DeleteCampaign)
		protected.POST("/campaigns/:id/updates", h.Campaigns.PostUpdate)
		protected.GET("/campaigns/:id/donations", h.Donations.ListByCampaign)
		protected.POST("/campaigns/:id/comments", h.Comments.CreateComment)
		protected.GET("/campaigns/:id/follow", h.Follows.FollowStatus)
		protected.POST("/campaigns/:id/follow", h.Follows.Follow)
		protected.DELETE("/campaigns/:id/follow", h.Follows.Unfollow)

		protected.POST("/donations", h.Donations.CreateDonation)
		protected.GET("/donations/:id", h.Donations.GetDonation)
		protected.POST("/donations/:id/cancel", h.Donations.CancelDonation)

		protected.PATCH("/comments/:id", h.Comments.UpdateComment)
		protected.DELETE("/comments/:id", h.Comments.DeleteComment)
		protected.POST("/comments/:id/like", h.Comments.ToggleLike)
	}

	admin := protected.Group("")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/users", h.Users.ListUsers)
		admin.GET("/users/by-email/:email", h.Users.GetByEmail)
		admin.POST("/campaigns/:id/approve", h.Campaigns.ApproveCampaign)
		admin.PUT("/donations/:id/status", h.Donations.UpdateStatus)
		admin.GET("/donations/:id/payments", h.Payments.ListByDonation)
		admin.POST("/comments/reconcile-likes", h.Comments.ReconcileLikes)

		admin.POST("/payments", h.Payments.CreatePayment)
		admin.GET("/payments", h.Payments.ListPayments)
		admin.GET("/payments/stats", h.Payments.Stats)
		admin.GET("/payments/:id", h.Payments.GetPayment)
		admin.PUT("/payments/:id/status", h.Payments.UpdateStatus)
		admin.PUT("/payments/:id/method", h.Payments.UpdateMethod)
		admin.DELETE("/payments/:id", h.Payments.DeletePayment)

		admin.POST("/reviews", h.Reviews.CreateReview)
		admin.GET("/reviews", h.Reviews.ListReviews)
		admin.GET("/reviews/:id", h.Reviews.GetReview)
		admin.PATCH("/reviews/:id", h.Reviews.UpdateReview)
		admin.DELETE("/reviews/:id", h.Reviews.DeleteReview)

		admin.GET("/follows", h.Follows.ListFollows)
		admin.GET("/follows/:id", h.Follows.GetFollow)
		admin.DELETE("/follows/:id", h.Follows.DeleteFollow)
	}
}
