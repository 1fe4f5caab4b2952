package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Validation reports field-shape failures as a field -> messages map,
// distinct from conflict and domain-state errors.
func Validation(c *gin.Context, details map[string][]string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_error",
		Message: "Invalid request payload.",
		Details: details,
	})
}
