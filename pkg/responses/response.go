package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse documents a successful envelope for swagger.
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorResponse documents a failed envelope for swagger.
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SendSuccess writes {success:true, data, message}. A nil data slice must be
// converted by the caller; data is always present in the body.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// SendMessage writes a success envelope without a payload.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: true, Message: message})
}

// SendError writes {success:false, error} and aborts the chain.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success: false,
		Error:   message,
	})
}

// SendValidationError writes a 400 carrying per-field messages.
func SendValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   "Validation failed",
		Errors:  fields,
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, resourceName+" not found")
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, message)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message)
}

// ServiceUnavailable is used when the document store cannot be reached.
func ServiceUnavailable(c *gin.Context, message string) {
	if message == "" {
		message = "Storage is temporarily unavailable"
	}
	SendError(c, http.StatusServiceUnavailable, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message)
}
