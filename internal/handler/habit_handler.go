package handler

import (
	"net/http"
	"strconv"
	"time"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HabitInput defines the structure for creating a habit.
type HabitInput struct {
	Type        string `json:"type" binding:"required" example:"warning"`
	Name        string `json:"name" binding:"required" example:"Smoke"`
	Description string `json:"description" binding:"required" example:"Don't smoke! It's unhealthy."`
	Day         string `json:"day" binding:"required,len=7" example:"0101010"`
	Hour        string `json:"hour" binding:"required" example:"04:23:10"`
}

// HabitResponse is the wire form of a habit.
type HabitResponse struct {
	ID          uint      `json:"id" example:"1"`
	Type        string    `json:"type" example:"warning"`
	Name        string    `json:"name" example:"Smoke"`
	Description string    `json:"description" example:"Don't smoke! It's unhealthy."`
	Day         string    `json:"day" example:"0101010"`
	Hour        string    `json:"hour" example:"04:23:10"`
	Rejected    int       `json:"rejected" example:"0"`
	OwnerID     uint      `json:"owner_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newHabitResponse(habit models.Habit) HabitResponse {
	return HabitResponse{
		ID:          habit.ID,
		Type:        habit.Type,
		Name:        habit.Name,
		Description: habit.Description,
		Day:         habit.Day,
		Hour:        habit.Hour,
		Rejected:    habit.Rejected,
		OwnerID:     habit.OwnerID,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}

// HabitHandler exposes habit CRUD and the reject/done transitions.
type HabitHandler struct {
	habits *service.HabitService
}

func NewHabitHandler(habits *service.HabitService) *HabitHandler {
	return &HabitHandler{habits: habits}
}

// ListHabits godoc
// @Summary      Get all habits for the current user
// @Tags         habits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   HabitResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /habits [get]
func (h *HabitHandler) ListHabits(c *gin.Context) {
	habits, err := h.habits.List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]HabitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, newHabitResponse(habit))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateHabit godoc
// @Summary      Create a new habit
// @Description  Day must be exactly seven characters of 0/1, one flag per weekday.
// @Tags         habits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body HabitInput true "Habit Info"
// @Success      201  {object}  HabitResponse
// @Failure      400  {object}  ErrorResponse "Validation unsuccessful"
// @Failure      401  {object}  ErrorResponse
// @Router       /habits [post]
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	var input HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	habit, err := h.habits.Create(currentUserID(c), input.Type, input.Name, input.Description, input.Day, input.Hour)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newHabitResponse(*habit))
}

// RejectHabit godoc
// @Summary      Reject (snooze) a habit
// @Description  Increments the rejection counter. From the third rejection on, every friend of the owner gets a snooze warning push.
// @Tags         habits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Habit ID"
// @Success      200  {object}  HabitResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /habits/{id}/reject [post]
func (h *HabitHandler) RejectHabit(c *gin.Context) {
	habitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid habit ID"})
		return
	}

	habit, err := h.habits.Reject(uint(habitID), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newHabitResponse(*habit))
}

// CompleteHabit godoc
// @Summary      Mark a habit done
// @Description  Resets the rejection counter.
// @Tags         habits
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Habit ID"
// @Success      200  {object}  HabitResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /habits/{id}/done [post]
func (h *HabitHandler) CompleteHabit(c *gin.Context) {
	habitID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid habit ID"})
		return
	}

	habit, err := h.habits.Done(uint(habitID), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newHabitResponse(*habit))
}
