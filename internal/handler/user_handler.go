package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartgym/backend-go/internal/database/service"
	"github.com/smartgym/backend-go/internal/validation"
)

// UserHandler handles HTTP requests for gym owners
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var payload validation.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid create user request", "error", err)
		c.JSON(http.StatusBadRequest, errorBody("Invalid request: "+err.Error(), CodeInvalidBody))
		return
	}

	input, err := validation.CreateUser(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// FindAll handles GET /users
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.userService.FindAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// FindOne handles GET /users/:id
func (h *UserHandler) FindOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles PATCH and PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload validation.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid request: "+err.Error(), CodeInvalidBody))
		return
	}

	changes, err := validation.UpdateUser(payload)
	if err != nil {
		respondValidation(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, changes)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Remove handles DELETE /users/:id
func (h *UserHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Remove(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, errorBody("User already exists", "USER_ALREADY_EXISTS"))
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorBody("User not found", "USER_NOT_FOUND"))
	case errors.Is(err, service.ErrUserNotCreated):
		c.JSON(http.StatusServiceUnavailable, errorBody("User could not be created", "USER_NOT_CREATED"))
	case errors.Is(err, service.ErrUserNotUpdated):
		c.JSON(http.StatusServiceUnavailable, errorBody("User could not be updated", "USER_NOT_UPDATED"))
	case errors.Is(err, service.ErrUserNotDisabled):
		c.JSON(http.StatusServiceUnavailable, errorBody("User could not be disabled", "USER_NOT_DISABLED"))
	default:
		h.logger.Error("❌ [UserHandler] Unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error", CodeInternalError))
	}
}
