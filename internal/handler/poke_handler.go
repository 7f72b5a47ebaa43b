package handler

import (
	"net/http"
	"strconv"
	"time"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PrototypeInput defines the structure for creating or updating a poke
// prototype.
type PrototypeInput struct {
	Name    string `json:"name" binding:"required" example:"Lunch"`
	Message string `json:"message" binding:"required" example:"Coming to lunch?"`
}

// SendPokeInput defines the structure for sending a poke.
type SendPokeInput struct {
	TargetID uint `json:"target_id" binding:"required" example:"2"`
}

// PokeResponseInput defines the structure for answering a poke.
type PokeResponseInput struct {
	Response string `json:"response" binding:"required" example:"On my way"`
}

// PrototypeResponse is the wire form of a poke prototype.
type PrototypeResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Lunch"`
	Message   string    `json:"message" example:"Coming to lunch?"`
	OwnerID   uint      `json:"owner_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PokeResponse is the wire form of a sent poke.
type PokeResponse struct {
	ID          uint      `json:"id" example:"1"`
	PrototypeID uint      `json:"prototype_id" example:"2"`
	OwnerID     uint      `json:"owner_id" example:"1"`
	TargetID    uint      `json:"target_id" example:"2"`
	Response    string    `json:"response" example:""`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newPrototypeResponse(prototype models.PokePrototype) PrototypeResponse {
	return PrototypeResponse{
		ID:        prototype.ID,
		Name:      prototype.Name,
		Message:   prototype.Message,
		OwnerID:   prototype.OwnerID,
		CreatedAt: prototype.CreatedAt,
		UpdatedAt: prototype.UpdatedAt,
	}
}

func newPokeResponse(poke models.Poke) PokeResponse {
	return PokeResponse{
		ID:          poke.ID,
		PrototypeID: poke.PrototypeID,
		OwnerID:     poke.OwnerID,
		TargetID:    poke.TargetID,
		Response:    poke.Response,
		CreatedAt:   poke.CreatedAt,
		UpdatedAt:   poke.UpdatedAt,
	}
}

// PokeHandler exposes prototype CRUD and the poke send/respond flow.
type PokeHandler struct {
	pokes *service.PokeService
}

func NewPokeHandler(pokes *service.PokeService) *PokeHandler {
	return &PokeHandler{pokes: pokes}
}

// ListPrototypes godoc
// @Summary      Get all poke prototypes for the current user
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PrototypeResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /pokes/prototypes [get]
func (h *PokeHandler) ListPrototypes(c *gin.Context) {
	prototypes, err := h.pokes.ListPrototypes(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PrototypeResponse, 0, len(prototypes))
	for _, prototype := range prototypes {
		responses = append(responses, newPrototypeResponse(prototype))
	}
	c.JSON(http.StatusOK, responses)
}

// CreatePrototype godoc
// @Summary      Create a new poke prototype
// @Tags         pokes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PrototypeInput true "Prototype Info"
// @Success      201  {object}  PrototypeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /pokes/prototypes [post]
func (h *PokeHandler) CreatePrototype(c *gin.Context) {
	var input PrototypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prototype, err := h.pokes.CreatePrototype(currentUserID(c), input.Name, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPrototypeResponse(*prototype))
}

// GetPrototype godoc
// @Summary      Get a poke prototype by id
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Prototype ID"
// @Success      200  {object}  PrototypeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/prototypes/{id} [get]
func (h *PokeHandler) GetPrototype(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid prototype ID"})
		return
	}

	prototype, err := h.pokes.GetPrototype(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPrototypeResponse(*prototype))
}

// UpdatePrototype godoc
// @Summary      Update a poke prototype
// @Description  Replaces name and message. Only the owner may update.
// @Tags         pokes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Prototype ID"
// @Param        input body PrototypeInput true "New Prototype Info"
// @Success      200  {object}  PrototypeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/prototypes/{id} [put]
func (h *PokeHandler) UpdatePrototype(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid prototype ID"})
		return
	}

	var input PrototypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	prototype, err := h.pokes.UpdatePrototype(uint(id), currentUserID(c), input.Name, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPrototypeResponse(*prototype))
}

// DeletePrototype godoc
// @Summary      Delete a poke prototype
// @Description  Only the owner may delete.
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Prototype ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/prototypes/{id} [delete]
func (h *PokeHandler) DeletePrototype(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid prototype ID"})
		return
	}

	if err := h.pokes.DeletePrototype(uint(id), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendPoke godoc
// @Summary      Send a poke
// @Description  Persists a poke from the prototype and pushes it to every device of the target. Fails with 418 when the target has no registered device.
// @Tags         pokes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Prototype ID"
// @Param        input body SendPokeInput true "Target user"
// @Success      200  {object}  PokeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Prototype or target not found"
// @Failure      418  {object}  ErrorResponse "Target has no device token"
// @Router       /pokes/prototypes/{id}/send [post]
func (h *PokeHandler) SendPoke(c *gin.Context) {
	prototypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid prototype ID"})
		return
	}

	var input SendPokeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	poke, err := h.pokes.SendPoke(uint(prototypeID), currentUserID(c), input.TargetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPokeResponse(*poke))
}

// ListPokes godoc
// @Summary      Get the poke history with a friend
// @Description  Returns pokes in both directions between the current user and a friend, oldest first.
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Param        friendId path  int  true  "Friend User ID"
// @Success      200  {array}   PokeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "The user is not your friend"
// @Router       /pokes/{friendId} [get]
func (h *PokeHandler) ListPokes(c *gin.Context) {
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid friend user ID"})
		return
	}

	pokes, err := h.pokes.ListPokes(currentUserID(c), uint(friendID))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PokeResponse, 0, len(pokes))
	for _, poke := range pokes {
		responses = append(responses, newPokeResponse(poke))
	}
	c.JSON(http.StatusOK, responses)
}

// RespondToPoke godoc
// @Summary      Send a response for a poke
// @Description  Sets the response text and notifies the original sender.
// @Tags         pokes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Poke ID"
// @Param        input body PokeResponseInput true "Response text"
// @Success      200  {object}  PokeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the poke's target"
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/{id}/response [post]
func (h *PokeHandler) RespondToPoke(c *gin.Context) {
	pokeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid poke ID"})
		return
	}

	var input PokeResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	poke, err := h.pokes.Respond(uint(pokeID), currentUserID(c), input.Response)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPokeResponse(*poke))
}

// RespondYes godoc
// @Summary      Send a yes response for a poke
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Poke ID"
// @Success      200  {object}  PokeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the poke's target"
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/{id}/response/yes [post]
func (h *PokeHandler) RespondYes(c *gin.Context) {
	h.respondFixed(c, h.pokes.RespondYes)
}

// RespondNo godoc
// @Summary      Send a no response for a poke
// @Tags         pokes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Poke ID"
// @Success      200  {object}  PokeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the poke's target"
// @Failure      404  {object}  ErrorResponse
// @Router       /pokes/{id}/response/no [post]
func (h *PokeHandler) RespondNo(c *gin.Context) {
	h.respondFixed(c, h.pokes.RespondNo)
}

func (h *PokeHandler) respondFixed(c *gin.Context, respond func(pokeID, actingUserID uint) (*models.Poke, error)) {
	pokeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid poke ID"})
		return
	}

	poke, err := respond(uint(pokeID), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPokeResponse(*poke))
}
