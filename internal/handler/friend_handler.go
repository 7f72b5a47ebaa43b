package handler

import (
	"net/http"
	"strconv"
	"time"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendRequestResponse is a pending incoming request joined with the
// requesting user.
type FriendRequestResponse struct {
	ID        uint         `json:"id" example:"3"`
	OwnerID   uint         `json:"owner_id" example:"2"`
	TargetID  uint         `json:"target_id" example:"1"`
	CreatedAt time.Time    `json:"created_at"`
	Owner     UserResponse `json:"owner"`
}

// FriendResponse is one direction of a friendship joined with the
// counterpart user.
type FriendResponse struct {
	ID        uint         `json:"id" example:"3"`
	UserID    uint         `json:"user_id" example:"1"`
	FriendID  uint         `json:"friend_id" example:"2"`
	CreatedAt time.Time    `json:"created_at"`
	Friend    UserResponse `json:"friend"`
}

func newFriendRequestResponse(request models.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:        request.ID,
		OwnerID:   request.OwnerID,
		TargetID:  request.TargetID,
		CreatedAt: request.CreatedAt,
		Owner:     newUserResponse(request.Owner),
	}
}

func newFriendResponse(friend models.Friend) FriendResponse {
	return FriendResponse{
		ID:        friend.ID,
		UserID:    friend.UserID,
		FriendID:  friend.FriendID,
		CreatedAt: friend.CreatedAt,
		Friend:    newUserResponse(friend.Counterpart),
	}
}

// FriendHandler exposes the friend-request lifecycle and friendship
// listings.
type FriendHandler struct {
	friendships *service.FriendshipService
}

func NewFriendHandler(friendships *service.FriendshipService) *FriendHandler {
	return &FriendHandler{friendships: friendships}
}

// ListFriendRequests godoc
// @Summary      List friend requests of the authenticated user
// @Description  Returns pending incoming requests with the requesting user attached.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /user/friend_requests [get]
func (h *FriendHandler) ListFriendRequests(c *gin.Context) {
	requests, err := h.friendships.ListIncoming(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]FriendRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, newFriendRequestResponse(request))
	}
	c.JSON(http.StatusOK, responses)
}

// ListFriends godoc
// @Summary      List friends of the authenticated user
// @Description  Returns the user's friendships with the counterpart user attached.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /user/friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.friendships.ListFriends(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]FriendResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, newFriendResponse(friend))
	}
	c.JSON(http.StatusOK, responses)
}

// SendRequest godoc
// @Summary      Send a friend request
// @Description  Sends a friend request to another user and notifies them.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse "Duplicate or reciprocal pending request"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Router       /users/{id}/send_request [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid target user ID"})
		return
	}

	if err := h.friendships.SendRequest(currentUserID(c), uint(targetUserID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "The request sent to the user!"})
}

// AcceptRequest godoc
// @Summary      Accept a friend request
// @Description  Accepts a pending request targeting the authenticated user. Creates the friendship in both directions and deletes the request.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend Request ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the request's target"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /user/friend_requests/{id}/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request ID"})
		return
	}

	if err := h.friendships.AcceptRequest(uint(requestID), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Successfully accepted request."})
}

// DeclineRequest godoc
// @Summary      Decline a friend request
// @Description  Deletes a pending request targeting the authenticated user without creating a friendship.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend Request ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the request's target"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Router       /user/friend_requests/{id}/decline [post]
func (h *FriendHandler) DeclineRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request ID"})
		return
	}

	if err := h.friendships.DeclineRequest(uint(requestID), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Successfully declined request."})
}

// Unfriend godoc
// @Summary      Remove a friend
// @Description  Deletes the friendship in both directions.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend User ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Router       /users/{id}/unfriend [post]
func (h *FriendHandler) Unfriend(c *gin.Context) {
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid friend user ID"})
		return
	}

	if err := h.friendships.Unfriend(currentUserID(c), uint(friendID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Friend removed."})
}
