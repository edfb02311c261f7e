package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// MessageResponse is the body of endpoints that only report an outcome.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}

// Success writes payload's keys next to "success": true.
func Success(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	if id := requestID(c); id != "" {
		body["request_id"] = id
	}
	c.JSON(code, body)
}

// Message writes a success body carrying only a message.
func Message(c *gin.Context, code int, message string) {
	Success(c, code, gin.H{"message": message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details []string) {
	c.JSON(code, ErrorResponse{
		Success:   false,
		Error:     message,
		Details:   details,
		RequestID: requestID(c),
	})
}
