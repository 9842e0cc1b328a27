package utils

import "github.com/gin-gonic/gin"

// RespondJSON writes the payload as-is. The API contract uses raw records
// and arrays, not a wrapper envelope.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
