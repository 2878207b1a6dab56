package http

import (
	"net/http"
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username     string `json:"username" binding:"required,max=50"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role"`
	ProfileImage string `json:"profile_image"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type UpdateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Role         *string `json:"role"`
	ProfileImage *string `json:"profile_image"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account. Role defaults to donor.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, token, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username or email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, token, err := h.userUseCase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	user, err := h.userUseCase.GetUser(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userUseCase.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByUsername godoc
// @Summary      Get user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/by-username/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userUseCase.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByEmail godoc
// @Summary      Get user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Email"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/by-email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userUseCase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List users
// @Description  Admin only
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search username or email"
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var (
		users []*entity.User
		err   error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		users, err = h.userUseCase.SearchUsers(c.Request.Context(), q)
	} else {
		users, err = h.userUseCase.ListUsers(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Users may update themselves; only admins may change roles or other accounts.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200  {object}  entity.User
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.selfOrAdmin(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if caller, _ := actor(c); req.Role != nil && !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change roles"})
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), id, usecase.UserPatch{
		Username:     req.Username,
		Email:        req.Email,
		Role:         req.Role,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if id != caller.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only change your own password"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.userUseCase.ChangePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// UploadProfileImage godoc
// @Summary      Upload a profile image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        image formData file true "Image file"
// @Success      200  {object}  entity.User
// @Router       /users/{id}/profile-image [post]
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	id, ok := h.selfOrAdmin(c)
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

	user, err := h.userUseCase.UploadProfileImage(c.Request.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.selfOrAdmin(c)
	if !ok {
		return
	}
	if err := h.userUseCase.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) selfOrAdmin(c *gin.Context) (uint, bool) {
	caller, ok := actor(c)
	if !ok {
		return 0, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return 0, false
	}
	if id != caller.UserID && !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own account"})
		return 0, false
	}
	return id, true
}
