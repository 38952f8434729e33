package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

// Envelope is the success contract every data endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorBody is the uniform error shape.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 envelope with a human-readable message.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Raw sends a payload without the envelope. Used by the db-status
// diagnostic, which predates the envelope contract.
func Raw(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error converts any error into the uniform {detail} shape using the
// status carried by the typed error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, ErrorBody{Detail: appErr.Message})
}
