package handler

import (
	"net/http"
	"strconv"

	"pokehub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserInput defines the structure for profile updates.
type UpdateUserInput struct {
	Firstname string `json:"firstname" binding:"required" example:"Lajos"`
	Lastname  string `json:"lastname" binding:"required" example:"Kovacs"`
	Email     string `json:"email" binding:"required,email" example:"lajos.kovacs@example.com"`
}

// DeviceTokenInput defines the structure for device token registration.
type DeviceTokenInput struct {
	Token string `json:"token" binding:"required" example:"f4b2c0..."`
}

// UserHandler exposes the user directory and the current-user profile.
type UserHandler struct {
	users   *service.UserService
	devices *service.DeviceService
}

func NewUserHandler(users *service.UserService, devices *service.DeviceService) *UserHandler {
	return &UserHandler{users: users, devices: devices}
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.Get(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// UpdateMe godoc
// @Summary      Update the current user
// @Description  Replaces the authenticated user's profile fields.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateUserInput true "Profile fields"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse "Validation unsuccessful"
// @Failure      401  {object}  ErrorResponse
// @Router       /user [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Update(currentUserID(c), input.Firstname, input.Lastname, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

// AddDeviceToken godoc
// @Summary      Add a new device token to the user
// @Description  Registers a push-notification device token. Duplicate registrations are a no-op.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DeviceTokenInput true "Device token"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /user/add_device_token [post]
func (h *UserHandler) AddDeviceToken(c *gin.Context) {
	var input DeviceTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.devices.RegisterToken(currentUserID(c), input.Token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Successfully added token."})
}

// SearchUsers godoc
// @Summary      Search for users by given query
// @Description  Case-insensitive substring search over firstname, lastname and email, with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query query     string  true   "Search query"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[UserResponse]
// @Failure      400   {object}  ErrorResponse "Query required"
// @Failure      401   {object}  ErrorResponse
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	users, err := h.users.Search(query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}

	c.JSON(http.StatusOK, paginateSlice(responses, page, limit))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the profile for a specific user by their ID.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	user, err := h.users.Get(uint(targetUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}
