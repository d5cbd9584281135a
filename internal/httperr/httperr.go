package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"message"`
	Fields  any    `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

// BadRequestFields reports a rejected submission together with the
// weekday/field map, so the form can highlight the offending inputs.
func BadRequestFields(c *gin.Context, message string, fields any) {
	c.JSON(http.StatusBadRequest, HTTPError{Message: message, Fields: fields})
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
