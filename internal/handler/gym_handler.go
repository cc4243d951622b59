package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartgym/backend-go/internal/database/service"
	"github.com/smartgym/backend-go/internal/validation"
)

// GymHandler handles HTTP requests for the gym lifecycle
type GymHandler struct {
	gymService service.GymService
	logger     *slog.Logger
}

// NewGymHandler creates a new gym handler
func NewGymHandler(gymService service.GymService, logger *slog.Logger) *GymHandler {
	return &GymHandler{
		gymService: gymService,
		logger:     logger,
	}
}

// Create handles POST /gyms
func (h *GymHandler) Create(c *gin.Context) {
	var payload validation.GymPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("⚠️ [GymHandler] Invalid create gym request", "error", err)
		c.JSON(http.StatusBadRequest, errorBody("Invalid request: "+err.Error(), CodeInvalidBody))
		return
	}

	input, err := validation.CreateGym(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	gym, err := h.gymService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// FindAll handles GET /gyms
func (h *GymHandler) FindAll(c *gin.Context) {
	gyms, err := h.gymService.FindAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// FindOne handles GET /gyms/:id
func (h *GymHandler) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	gym, err := h.gymService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

// FindByUser handles GET /users/:id/gyms
func (h *GymHandler) FindByUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	gyms, err := h.gymService.FindByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// Update handles PATCH and PUT /gyms/:id. Both merge: omitted fields keep
// their stored value.
func (h *GymHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload validation.GymPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("⚠️ [GymHandler] Invalid update gym request", "gym_id", id, "error", err)
		c.JSON(http.StatusBadRequest, errorBody("Invalid request: "+err.Error(), CodeInvalidBody))
		return
	}

	changes, err := validation.UpdateGym(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	gym, err := h.gymService.Update(c.Request.Context(), id, changes)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

// Remove handles DELETE /gyms/:id
func (h *GymHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	gym, err := h.gymService.Remove(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGymAlreadyExists):
		c.JSON(http.StatusConflict, errorBody("Gym with this name already exists", "GYM_ALREADY_EXISTS"))
	case errors.Is(err, service.ErrGymNotFound):
		c.JSON(http.StatusNotFound, errorBody("Gym not found", "GYM_NOT_FOUND"))
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorBody("User not found", "USER_NOT_FOUND"))
	case errors.Is(err, service.ErrGymNotCreated):
		c.JSON(http.StatusServiceUnavailable, errorBody("Gym could not be created", "GYM_NOT_CREATED"))
	case errors.Is(err, service.ErrGymNotUpdated):
		c.JSON(http.StatusServiceUnavailable, errorBody("Gym could not be updated", "GYM_NOT_UPDATED"))
	case errors.Is(err, service.ErrGymNotDisabled):
		c.JSON(http.StatusServiceUnavailable, errorBody("Gym could not be disabled", "GYM_NOT_DISABLED"))
	default:
		h.logger.Error("❌ [GymHandler] Unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error", CodeInternalError))
	}
}
