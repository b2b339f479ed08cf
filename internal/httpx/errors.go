package httpx

import "github.com/gin-gonic/gin"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: order not found
	Error string `json:"error"`
	// Validation violations, in check order
	Details []string `json:"details,omitempty"`
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

func AbortDetails(c *gin.Context, status int, msg string, details []string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg, Details: details})
}
