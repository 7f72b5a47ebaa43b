package handler

import (
	"errors"
	"net/http"
	"time"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/service"
	"pokehub/backend/pkg/gravatar"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic confirmation response.
type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}

// UserResponse defines the structure for a user profile.
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Firstname string    `json:"firstname" example:"Lajos"`
	Lastname  string    `json:"lastname" example:"Kovacs"`
	Email     string    `json:"email" example:"lajos.kovacs@example.com"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		AvatarURL: gravatar.ImageURL(user.Email),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// respondError translates service errors to HTTP statuses. The 418 for
// a token-less poke target is part of the mobile client contract.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotFriends):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrReciprocalPending):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoDeviceToken):
		c.JSON(http.StatusTeapot, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}
