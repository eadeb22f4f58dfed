package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-facing messages rendered in the "error" field.
const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidTaskID      = "Invalid task id"
	msgTaskNotFound       = "Task not found"
	msgTaskUpdated        = "Task updated successfully"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}
