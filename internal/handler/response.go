package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartgym/backend-go/internal/validation"
)

// Stable error kinds returned in the "code" field of error bodies
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidBody      = "INVALID_BODY"
	CodeInvalidID        = "INVALID_ID"
	CodeInternalError    = "INTERNAL_ERROR"
)

func errorBody(message, code string) gin.H {
	return gin.H{"error": message, "code": code}
}

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Invalid id", CodeInvalidID))
		return uuid.Nil, false
	}
	return id, true
}

// respondValidation writes a 400 for a rejected payload, listing every
// rejected field when err carries them.
func respondValidation(c *gin.Context, err error) {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), CodeValidationFailed))
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Validation failed",
		"code":   CodeValidationFailed,
		"fields": fields,
	})
}
